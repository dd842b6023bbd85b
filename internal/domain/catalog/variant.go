package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockKind distinguishes how a variant's inventory is managed
type StockKind string

const (
	// StockKindTracked variants hold a finite stock count; reservations
	// decrement it and fail when it runs out.
	StockKindTracked StockKind = "tracked"
	// StockKindMadeToOrder variants are produced on demand; reservations
	// always succeed and Stock is ignored.
	StockKindMadeToOrder StockKind = "made_to_order"
)

// IsValid checks if the stock kind is a known value
func (k StockKind) IsValid() bool {
	return k == StockKindTracked || k == StockKindMadeToOrder
}

// Variant is a sellable configuration of a product (material + color).
// Stock is the only cross-request mutable state in the ordering path and is
// mutated exclusively under a row lock inside the checkout transaction.
type Variant struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_variant_product_config,priority:1"`
	Product   *Product  `gorm:"foreignKey:ProductID"`
	SKU       string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Material  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_config,priority:2"`
	Color     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_variant_product_config,priority:3"`
	StockKind StockKind `gorm:"type:varchar(20);not null;default:'tracked'"`
	Stock     int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Variant) TableName() string {
	return "variants"
}

// NewVariant creates a new tracked-stock variant
func NewVariant(productID uuid.UUID, sku, material, color string, stock int) (*Variant, error) {
	if err := validateVariantAttrs(sku, material, color); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Variant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		SKU:               strings.ToUpper(sku),
		Material:          material,
		Color:             color,
		StockKind:         StockKindTracked,
		Stock:             stock,
	}, nil
}

// NewMadeToOrderVariant creates a variant with no physical stock constraint
func NewMadeToOrderVariant(productID uuid.UUID, sku, material, color string) (*Variant, error) {
	if err := validateVariantAttrs(sku, material, color); err != nil {
		return nil, err
	}

	return &Variant{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		SKU:               strings.ToUpper(sku),
		Material:          material,
		Color:             color,
		StockKind:         StockKindMadeToOrder,
	}, nil
}

// Details renders the variant description used in order snapshots
func (v *Variant) Details() string {
	return fmt.Sprintf("%s / %s", v.Material, v.Color)
}

// Reserve claims quantity units of stock. Callers must hold an exclusive
// row lock on the variant for the duration of the enclosing transaction.
// Made-to-order variants always succeed without touching Stock.
func (v *Variant) Reserve(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	switch v.StockKind {
	case StockKindMadeToOrder:
		return nil
	case StockKindTracked:
		if v.Stock < quantity {
			return NewInsufficientStockError(v.productName())
		}
		v.Stock -= quantity
		v.UpdatedAt = time.Now()
		return nil
	default:
		return shared.NewDomainError("INVALID_STOCK_KIND",
			fmt.Sprintf("Unknown stock kind %q", v.StockKind))
	}
}

// Restock adds quantity units back to a tracked variant
func (v *Variant) Restock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if v.StockKind != StockKindTracked {
		return shared.NewDomainError("INVALID_STOCK_KIND", "Made-to-order variants carry no stock")
	}

	v.Stock += quantity
	v.UpdatedAt = time.Now()
	return nil
}

// SetStock replaces the stock count of a tracked variant
func (v *Variant) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if v.StockKind != StockKindTracked {
		return shared.NewDomainError("INVALID_STOCK_KIND", "Made-to-order variants carry no stock")
	}

	v.Stock = stock
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

func (v *Variant) productName() string {
	if v.Product != nil {
		return v.Product.Name
	}
	return v.SKU
}

func validateVariantAttrs(sku, material, color string) error {
	if strings.TrimSpace(sku) == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if strings.TrimSpace(material) == "" {
		return shared.NewDomainError("INVALID_MATERIAL", "Material cannot be empty")
	}
	if strings.TrimSpace(color) == "" {
		return shared.NewDomainError("INVALID_COLOR", "Color cannot be empty")
	}
	return nil
}
