package order

import (
	"time"

	"github.com/furnimart/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordPaymentResultRequest represents a gateway callback result for an order's payment
type RecordPaymentResultRequest struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id" binding:"omitempty,max=100"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Status       *order.Status       `form:"status"`
	DeliveryType *order.DeliveryType `form:"delivery_type"`
	Page         int                 `form:"page" binding:"omitempty,min=1"`
	PageSize     int                 `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string              `form:"order_by"`
	OrderDir     string              `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	ProductName    string          `json:"product_name"`
	VariantDetails string          `json:"variant_details"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// PaymentResponse represents an order's payment in API responses
type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	UserID            uuid.UUID           `json:"user_id"`
	Status            string              `json:"status"`
	DeliveryType      string              `json:"delivery_type"`
	TotalAmount       decimal.Decimal     `json:"total_amount"`
	RecipientName     string              `json:"recipient_name"`
	RecipientPhone    string              `json:"recipient_phone"`
	AddressLine       string              `json:"address_line"`
	Items             []OrderItemResponse `json:"items"`
	Payment           *PaymentResponse    `json:"payment,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Version           int                 `json:"version"`
	ShippingAddressID uuid.UUID           `json:"shipping_address_id"`
}

// ToOrderItemResponse converts a domain order item to a response DTO
func ToOrderItemResponse(i *order.Item) OrderItemResponse {
	return OrderItemResponse{
		ID:             i.ID,
		ProductName:    i.ProductName,
		VariantDetails: i.VariantDetails,
		Price:          i.Price,
		Quantity:       i.Quantity,
		TotalPrice:     i.TotalPrice,
	}
}

// ToPaymentResponse converts a domain payment to a response DTO
func ToPaymentResponse(p *order.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            p.ID,
		Method:        string(p.Method),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToOrderItemResponse(&o.Items[i])
	}

	return OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Status:            string(o.Status),
		DeliveryType:      string(o.DeliveryType),
		TotalAmount:       o.TotalAmount,
		RecipientName:     o.RecipientName,
		RecipientPhone:    o.RecipientPhone,
		AddressLine:       o.AddressLine,
		Items:             items,
		Payment:           ToPaymentResponse(o.Payment),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
		ShippingAddressID: o.ShippingAddressID,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
