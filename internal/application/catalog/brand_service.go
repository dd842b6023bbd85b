package catalog

import (
	"context"
	"errors"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BrandService handles brand operations
type BrandService struct {
	brandRepo catalog.BrandRepository
}

// NewBrandService creates a new BrandService
func NewBrandService(brandRepo catalog.BrandRepository) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
	}
}

// Create creates a new brand
func (s *BrandService) Create(ctx context.Context, req CreateBrandRequest) (*BrandResponse, error) {
	if _, err := s.brandRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_SLUG", "A brand with this slug already exists")
	} else if !errors.Is(err, catalog.ErrBrandNotFound) {
		return nil, err
	}

	brand, err := catalog.NewBrand(req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := ToBrandResponse(brand)
	return &response, nil
}

// GetByID retrieves a brand by ID
func (s *BrandService) GetByID(ctx context.Context, brandID uuid.UUID) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	response := ToBrandResponse(brand)
	return &response, nil
}

// GetBySlug retrieves a brand by slug
func (s *BrandService) GetBySlug(ctx context.Context, slug string) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := ToBrandResponse(brand)
	return &response, nil
}

// List retrieves all brands
func (s *BrandService) List(ctx context.Context) ([]BrandResponse, error) {
	brands, err := s.brandRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: 100,
		OrderBy:  "name",
		OrderDir: "asc",
	})
	if err != nil {
		return nil, err
	}
	return ToBrandResponses(brands), nil
}

// Update updates a brand's name and slug
func (s *BrandService) Update(ctx context.Context, brandID uuid.UUID, req UpdateBrandRequest) (*BrandResponse, error) {
	brand, err := s.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return nil, err
	}

	if req.Slug != brand.Slug {
		if _, err := s.brandRepo.FindBySlug(ctx, req.Slug); err == nil {
			return nil, shared.NewDomainError("DUPLICATE_SLUG", "A brand with this slug already exists")
		} else if !errors.Is(err, catalog.ErrBrandNotFound) {
			return nil, err
		}
	}

	if err := brand.Update(req.Name, req.Slug); err != nil {
		return nil, err
	}

	if err := s.brandRepo.Save(ctx, brand); err != nil {
		return nil, err
	}

	response := ToBrandResponse(brand)
	return &response, nil
}

// Delete removes a brand
func (s *BrandService) Delete(ctx context.Context, brandID uuid.UUID) error {
	return s.brandRepo.Delete(ctx, brandID)
}
