package cart

import (
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeCart = "Cart"

// Event type constants
const (
	EventTypeCartClosed = "CartClosed"
)

// CartClosedEvent is published when a cart is closed by checkout
type CartClosedEvent struct {
	shared.BaseDomainEvent
	CartID uuid.UUID `json:"cart_id"`
	UserID uuid.UUID `json:"user_id"`
}

// NewCartClosedEvent creates a new CartClosedEvent
func NewCartClosedEvent(c *Cart) *CartClosedEvent {
	return &CartClosedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartClosed, AggregateTypeCart, c.ID),
		CartID:          c.ID,
		UserID:          c.UserID,
	}
}
