package cart

import (
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Cart domain errors
var (
	ErrInvalidCart  = shared.NewDomainError("INVALID_CART", "Cart is missing or already closed")
	ErrEmptyCart    = shared.NewDomainError("EMPTY_CART", "Cart has no items")
	ErrItemNotFound = shared.NewDomainError("CART_ITEM_NOT_FOUND", "Cart item not found")
)

// Cart is a user's current basket. A user has at most one active cart;
// closing it is terminal and happens only inside the checkout transaction.
type Cart struct {
	shared.BaseAggregateRoot
	UserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive bool      `gorm:"not null;default:true;index"`
	Items    []Item    `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new active cart for a user
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		IsActive:          true,
	}
}

// Close marks the cart inactive. A closed cart is never reopened; its items
// are deleted by the same transaction that created the order.
func (c *Cart) Close() error {
	if !c.IsActive {
		return ErrInvalidCart
	}

	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCartClosedEvent(c))

	return nil
}

// IsEmpty returns true when the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItem returns the line item for a variant, or nil when absent
func (c *Cart) FindItem(variantID uuid.UUID) *Item {
	for i := range c.Items {
		if c.Items[i].VariantID == variantID {
			return &c.Items[i]
		}
	}
	return nil
}
