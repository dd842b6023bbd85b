package catalog

import (
	"time"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Product DTOs ====================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Slug        string          `json:"slug" binding:"required,min=1,max=220"`
	Description string          `json:"description"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	BrandID     *uuid.UUID      `json:"brand_id"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Images      []string        `json:"images"`
}

// UpdateProductRequest represents a request to update a product's basic fields
type UpdateProductRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Description string     `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	BrandID     *uuid.UUID `json:"brand_id"`
}

// SetProductPriceRequest represents a request to change a product's pricing
type SetProductPriceRequest struct {
	Price           decimal.Decimal  `json:"price" binding:"required"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
}

// SetProductImagesRequest represents a request to replace a product's images
type SetProductImagesRequest struct {
	Images []string `json:"images" binding:"required"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search     string           `form:"search"`
	CategoryID *uuid.UUID       `form:"category_id"`
	BrandID    *uuid.UUID       `form:"brand_id"`
	Status     *string          `form:"status" binding:"omitempty,oneof=active inactive discontinued"`
	MinPrice   *decimal.Decimal `form:"min_price"`
	MaxPrice   *decimal.Decimal `form:"max_price"`
	Page       int              `form:"page" binding:"omitempty,min=1"`
	PageSize   int              `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string           `form:"order_by"`
	OrderDir   string           `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	CategoryID      *uuid.UUID      `json:"category_id,omitempty"`
	BrandID         *uuid.UUID      `json:"brand_id,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Status          string          `json:"status"`
	Images          []string        `json:"images"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		BrandID:         p.BrandID,
		Price:           p.Price,
		DiscountPercent: p.DiscountPercent,
		DiscountedPrice: p.DiscountedPrice().Amount(),
		Status:          string(p.Status),
		Images:          p.Images,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		Version:         p.Version,
	}
}

// ToProductResponses converts a slice of domain products to response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ==================== Variant DTOs ====================

// CreateVariantRequest represents a request to add a variant to a product
type CreateVariantRequest struct {
	SKU       string `json:"sku" binding:"required,min=1,max=50"`
	Material  string `json:"material" binding:"required,min=1,max=50"`
	Color     string `json:"color" binding:"required,min=1,max=50"`
	StockKind string `json:"stock_kind" binding:"omitempty,oneof=tracked made_to_order"`
	Stock     int    `json:"stock" binding:"omitempty,min=0"`
}

// SetVariantStockRequest represents a request to set a variant's stock level
type SetVariantStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// VariantResponse represents a variant in API responses
type VariantResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	SKU       string    `json:"sku"`
	Material  string    `json:"material"`
	Color     string    `json:"color"`
	StockKind string    `json:"stock_kind"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToVariantResponse converts a domain variant to a response DTO
func ToVariantResponse(v *catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Material:  v.Material,
		Color:     v.Color,
		StockKind: string(v.StockKind),
		Stock:     v.Stock,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToVariantResponses converts a slice of domain variants to response DTOs
func ToVariantResponses(variants []catalog.Variant) []VariantResponse {
	responses := make([]VariantResponse, len(variants))
	for i := range variants {
		responses[i] = ToVariantResponse(&variants[i])
	}
	return responses
}

// ==================== Category DTOs ====================

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	Slug     string     `json:"slug" binding:"required,min=1,max=120"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name     string     `json:"name" binding:"required,min=1,max=100"`
	Slug     string     `json:"slug" binding:"required,min=1,max=120"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// CategoryListFilter represents filter options for category lists
type CategoryListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories to response DTOs
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ==================== Brand DTOs ====================

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"required,min=1,max=120"`
}

// UpdateBrandRequest represents a request to update a brand
type UpdateBrandRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"required,min=1,max=120"`
}

// BrandResponse represents a brand in API responses
type BrandResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBrandResponse converts a domain brand to a response DTO
func ToBrandResponse(b *catalog.Brand) BrandResponse {
	return BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Slug:      b.Slug,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBrandResponses converts a slice of domain brands to response DTOs
func ToBrandResponses(brands []catalog.Brand) []BrandResponse {
	responses := make([]BrandResponse, len(brands))
	for i := range brands {
		responses[i] = ToBrandResponse(&brands[i])
	}
	return responses
}

// ==================== Review DTOs ====================

// CreateReviewRequest represents a request to review a product
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// UpdateReviewRequest represents a request to change an existing review
type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// ReviewListFilter represents filter options for review lists
type ReviewListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToReviewResponse converts a domain review to a response DTO
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToReviewResponses converts a slice of domain reviews to response DTOs
func ToReviewResponses(reviews []catalog.Review) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses
}
