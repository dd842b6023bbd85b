package checkout

import (
	"github.com/furnimart/backend/internal/domain/order"
	"github.com/google/uuid"
)

// CheckoutRequest represents a request to convert a cart into an order
type CheckoutRequest struct {
	CartID            uuid.UUID `json:"cart_id" binding:"required"`
	ShippingAddressID uuid.UUID `json:"shipping_address_id" binding:"required"`
	PaymentMethod     string    `json:"payment_method" binding:"required,oneof=cod esewa khalti stripe"`
	DeliveryType      string    `json:"delivery_type" binding:"omitempty,oneof=standard express installation"`
}

// Method returns the payment method as its domain type
func (r CheckoutRequest) Method() order.PaymentMethod {
	return order.PaymentMethod(r.PaymentMethod)
}

// Delivery returns the delivery type as its domain type, defaulting to
// standard delivery when the request leaves it unset.
func (r CheckoutRequest) Delivery() order.DeliveryType {
	if r.DeliveryType == "" {
		return order.DeliveryStandard
	}
	return order.DeliveryType(r.DeliveryType)
}
