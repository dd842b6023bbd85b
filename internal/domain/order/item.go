package order

import (
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is an immutable snapshot of a cart line at checkout time. Product
// name and variant details are copied as plain text so later catalog edits
// cannot alter historical orders.
type Item struct {
	shared.BaseEntity
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName    string          `gorm:"type:varchar(200);not null"`
	VariantDetails string          `gorm:"type:varchar(120);not null"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity       int             `gorm:"not null"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "order_items"
}

// NewItem creates an order line snapshot
func NewItem(orderID uuid.UUID, productName, variantDetails string, price valueobject.Money, quantity int) (*Item, error) {
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Item{
		BaseEntity:     shared.NewBaseEntity(),
		OrderID:        orderID,
		ProductName:    productName,
		VariantDetails: variantDetails,
		Price:          price.Amount(),
		Quantity:       quantity,
		TotalPrice:     price.MultiplyByInt(int64(quantity)).Amount(),
	}, nil
}
