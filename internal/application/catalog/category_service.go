package catalog

import (
	"context"
	"errors"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles category operations. Categories form at most a
// two-level tree: a category with children cannot itself become a child.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if _, err := s.categoryRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_SLUG", "A category with this slug already exists")
	} else if !errors.Is(err, catalog.ErrCategoryNotFound) {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.validateParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
		if err := category.SetParent(req.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// GetBySlug retrieves a category by slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves categories with filtering and pagination
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, err
	}

	return ToCategoryResponses(categories), nil
}

// ListChildren retrieves the direct children of a category
func (s *CategoryService) ListChildren(ctx context.Context, categoryID uuid.UUID) ([]CategoryResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	children, err := s.categoryRepo.FindChildren(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(children), nil
}

// Update updates a category's name, slug and parent
func (s *CategoryService) Update(ctx context.Context, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Slug != category.Slug {
		if _, err := s.categoryRepo.FindBySlug(ctx, req.Slug); err == nil {
			return nil, shared.NewDomainError("DUPLICATE_SLUG", "A category with this slug already exists")
		} else if !errors.Is(err, catalog.ErrCategoryNotFound) {
			return nil, err
		}
	}

	if err := category.Update(req.Name, req.Slug); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		if err := s.validateParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
		hasChildren, err := s.categoryRepo.HasChildren(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		if hasChildren {
			return nil, shared.NewDomainError("INVALID_PARENT", "A category with children cannot become a child")
		}
	}
	if err := category.SetParent(req.ParentID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category. Categories with children cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	hasChildren, err := s.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		return err
	}
	if hasChildren {
		return shared.NewDomainError("CATEGORY_NOT_EMPTY", "Delete or move child categories first")
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

// validateParent checks that the parent exists and is itself a top-level category
func (s *CategoryService) validateParent(ctx context.Context, parentID uuid.UUID) error {
	parent, err := s.categoryRepo.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent.ParentID != nil {
		return shared.NewDomainError("INVALID_PARENT", "Parent must be a top-level category")
	}
	return nil
}
