package catalog

import (
	"context"
	"errors"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles product and variant catalog operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	variantRepo    catalog.VariantRepository
	categoryRepo   catalog.CategoryRepository
	brandRepo      catalog.BrandRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	variantRepo catalog.VariantRepository,
	categoryRepo catalog.CategoryRepository,
	brandRepo catalog.BrandRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.productRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_SLUG", "A product with this slug already exists")
	} else if !errors.Is(err, catalog.ErrProductNotFound) {
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Slug, valueobject.NewMoneyNPR(req.Price))
	if err != nil {
		return nil, err
	}

	product.Description = req.Description

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}
	if req.BrandID != nil {
		if _, err := s.brandRepo.FindByID(ctx, *req.BrandID); err != nil {
			return nil, err
		}
		product.SetBrand(req.BrandID)
	}
	if len(req.Images) > 0 {
		product.SetImages(req.Images)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetBySlug retrieves a product by slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products regardless of status. Admin use only.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	domainFilter := s.buildDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// ListActive retrieves sellable products for the storefront
func (s *ProductService) ListActive(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	filter.Status = nil
	domainFilter := s.buildDomainFilter(filter)

	products, err := s.productRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	domainFilter.Filters["status"] = string(catalog.ProductStatusActive)
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product's basic information
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}
	product.SetCategory(req.CategoryID)

	if req.BrandID != nil {
		if _, err := s.brandRepo.FindByID(ctx, *req.BrandID); err != nil {
			return nil, err
		}
	}
	product.SetBrand(req.BrandID)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SetPrice changes a product's list price and optionally its discount.
// Prices already snapshotted into carts and orders are unaffected.
func (s *ProductService) SetPrice(ctx context.Context, productID uuid.UUID, req SetProductPriceRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetPrice(valueobject.NewMoneyNPR(req.Price)); err != nil {
		return nil, err
	}
	if req.DiscountPercent != nil {
		if err := product.SetDiscount(*req.DiscountPercent); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// SetImages replaces a product's image URLs
func (s *ProductService) SetImages(ctx context.Context, productID uuid.UUID, req SetProductImagesRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.SetImages(req.Images)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Activate makes a product sellable again
func (s *ProductService) Activate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, (*catalog.Product).Activate)
}

// Deactivate hides a product from the storefront
func (s *ProductService) Deactivate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, (*catalog.Product).Deactivate)
}

// Discontinue permanently retires a product
func (s *ProductService) Discontinue(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	return s.changeStatus(ctx, productID, (*catalog.Product).Discontinue)
}

// Delete removes a product and its variants
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

// AddVariant adds a sellable configuration to a product
func (s *ProductService) AddVariant(ctx context.Context, productID uuid.UUID, req CreateVariantRequest) (*VariantResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	if _, err := s.variantRepo.FindBySKU(ctx, req.SKU); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_SKU", "A variant with this SKU already exists")
	} else if !errors.Is(err, catalog.ErrVariantNotFound) {
		return nil, err
	}

	var (
		variant *catalog.Variant
		err     error
	)
	if catalog.StockKind(req.StockKind) == catalog.StockKindMadeToOrder {
		variant, err = catalog.NewMadeToOrderVariant(productID, req.SKU, req.Material, req.Color)
	} else {
		variant, err = catalog.NewVariant(productID, req.SKU, req.Material, req.Color, req.Stock)
	}
	if err != nil {
		return nil, err
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// ListVariants retrieves all variants of a product
func (s *ProductService) ListVariants(ctx context.Context, productID uuid.UUID) ([]VariantResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	variants, err := s.variantRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return ToVariantResponses(variants), nil
}

// SetVariantStock replaces a tracked variant's stock level. This races with
// checkout reservations only at the database level; the row update is a
// single statement.
func (s *ProductService) SetVariantStock(ctx context.Context, variantID uuid.UUID, req SetVariantStockRequest) (*VariantResponse, error) {
	variant, err := s.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	if err := variant.SetStock(req.Stock); err != nil {
		return nil, err
	}

	if err := s.variantRepo.Save(ctx, variant); err != nil {
		return nil, err
	}

	response := ToVariantResponse(variant)
	return &response, nil
}

// DeleteVariant removes a variant
func (s *ProductService) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	return s.variantRepo.Delete(ctx, variantID)
}

func (s *ProductService) changeStatus(ctx context.Context, productID uuid.UUID, fn func(*catalog.Product) error) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := fn(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	product.ClearDomainEvents()
}

func (s *ProductService) buildDomainFilter(filter ProductListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.BrandID != nil {
		domainFilter.Filters["brand_id"] = *filter.BrandID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	if filter.MinPrice != nil {
		domainFilter.Filters["min_price"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		domainFilter.Filters["max_price"] = *filter.MaxPrice
	}

	return domainFilter
}
