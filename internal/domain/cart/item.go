package cart

import (
	"time"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a cart line. Price is snapshotted from the product's discounted
// price when the variant is first added and never recomputed afterwards:
// quantity increments and later catalog price changes leave it untouched.
type Item struct {
	shared.BaseEntity
	CartID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_variant,priority:1"`
	VariantID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_variant,priority:2"`
	Variant   *catalog.Variant `gorm:"foreignKey:VariantID"`
	Quantity  int              `gorm:"not null"`
	Price     decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "cart_items"
}

// NewItem creates a cart line, snapshotting the price passed by the caller
func NewItem(cartID, variantID uuid.UUID, quantity int, price valueobject.Money) (*Item, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Item{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		VariantID:  variantID,
		Quantity:   quantity,
		Price:      price.Amount(),
	}, nil
}

// IncrementQuantity adds to the existing quantity. The snapshotted price
// stays as it was at first add.
func (i *Item) IncrementQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity += quantity
	i.UpdatedAt = time.Now()
	return nil
}

// SetQuantity replaces the quantity
func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.UpdatedAt = time.Now()
	return nil
}

// TotalPrice returns quantity times the snapshotted unit price
func (i *Item) TotalPrice() valueobject.Money {
	return valueobject.NewMoneyNPR(i.Price).MultiplyByInt(int64(i.Quantity))
}
