package catalog

import (
	"fmt"

	"github.com/furnimart/backend/internal/domain/shared"
)

// Catalog domain errors
var (
	ErrProductNotFound  = shared.NewDomainError("PRODUCT_NOT_FOUND", "Product not found")
	ErrVariantNotFound  = shared.NewDomainError("VARIANT_NOT_FOUND", "Variant not found")
	ErrCategoryNotFound = shared.NewDomainError("CATEGORY_NOT_FOUND", "Category not found")
	ErrBrandNotFound    = shared.NewDomainError("BRAND_NOT_FOUND", "Brand not found")
	ErrDuplicateReview  = shared.NewDomainError("DUPLICATE_REVIEW", "Product already reviewed by this user")
)

// ErrCodeInsufficientStock identifies stock reservation failures
const ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"

// NewInsufficientStockError reports a failed reservation, naming the product
func NewInsufficientStockError(productName string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInsufficientStock,
		fmt.Sprintf("Insufficient stock for %s", productName))
}
