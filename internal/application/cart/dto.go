package cart

import (
	"time"

	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest represents a request to add a variant to the cart
type AddItemRequest struct {
	VariantID uuid.UUID `json:"variant_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to change a cart line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartListFilter represents filter options for the admin cart list
type CartListFilter struct {
	UserID   *uuid.UUID `form:"user_id"`
	IsActive *bool      `form:"is_active"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CartItemResponse represents a cart line in API responses
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	VariantID   uuid.UUID       `json:"variant_id"`
	ProductName string          `json:"product_name,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Details     string          `json:"details,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// CartResponse represents a cart in API responses
type CartResponse struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	IsActive  bool               `json:"is_active"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToCartItemResponse converts a domain cart line to a response DTO
func ToCartItemResponse(i *cart.Item) CartItemResponse {
	response := CartItemResponse{
		ID:         i.ID,
		VariantID:  i.VariantID,
		Quantity:   i.Quantity,
		Price:      i.Price,
		TotalPrice: i.TotalPrice().Amount(),
	}

	if i.Variant != nil {
		response.SKU = i.Variant.SKU
		response.Details = i.Variant.Details()
		if i.Variant.Product != nil {
			response.ProductName = i.Variant.Product.Name
		}
	}

	return response
}

// ToCartResponse converts a domain cart to a response DTO
func ToCartResponse(c *cart.Cart) CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	total := decimal.Zero
	for i := range c.Items {
		items[i] = ToCartItemResponse(&c.Items[i])
		total = total.Add(items[i].TotalPrice)
	}

	return CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		Items:     items,
		Total:     total,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCartResponses converts a slice of domain carts to response DTOs
func ToCartResponses(carts []cart.Cart) []CartResponse {
	responses := make([]CartResponse, len(carts))
	for i := range carts {
		responses[i] = ToCartResponse(&carts[i])
	}
	return responses
}
