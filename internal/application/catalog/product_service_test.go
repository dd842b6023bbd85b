package catalog

import (
	"context"
	"testing"

	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockVariantRepository is a mock implementation of catalog.VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

func (m *MockVariantRepository) FindByIDWithProduct(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

func (m *MockVariantRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]catalog.Variant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Variant), args.Error(1)
}

func (m *MockVariantRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Variant, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

func (m *MockVariantRepository) Save(ctx context.Context, variant *catalog.Variant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]catalog.Category, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of catalog.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Brand, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Brand), args.Error(1)
}

func (m *MockBrandRepository) Save(ctx context.Context, brand *catalog.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newProductService() (*ProductService, *MockProductRepository, *MockVariantRepository, *MockCategoryRepository, *MockBrandRepository) {
	productRepo := new(MockProductRepository)
	variantRepo := new(MockVariantRepository)
	categoryRepo := new(MockCategoryRepository)
	brandRepo := new(MockBrandRepository)
	service := NewProductService(productRepo, variantRepo, categoryRepo, brandRepo)
	return service, productRepo, variantRepo, categoryRepo, brandRepo
}

func TestProductService_Create(t *testing.T) {
	t.Run("creates product with category", func(t *testing.T) {
		service, productRepo, _, categoryRepo, _ := newProductService()
		ctx := context.Background()

		category, err := catalog.NewCategory("Sofas", "sofas")
		require.NoError(t, err)

		productRepo.On("FindBySlug", ctx, "sheesham-sofa").Return(nil, catalog.ErrProductNotFound)
		categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		result, err := service.Create(ctx, CreateProductRequest{
			Name:       "Sheesham Sofa",
			Slug:       "sheesham-sofa",
			CategoryID: &category.ID,
			Price:      decimal.NewFromInt(45000),
			Images:     []string{"https://cdn.furnimart.com/sofa-1.jpg"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Sheesham Sofa", result.Name)
		assert.Equal(t, "active", result.Status)
		assert.Equal(t, &category.ID, result.CategoryID)
		assert.True(t, decimal.NewFromInt(45000).Equal(result.Price))
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		service, productRepo, _, _, _ := newProductService()
		ctx := context.Background()

		existing, err := catalog.NewProduct("Old Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(1000)))
		require.NoError(t, err)
		productRepo.On("FindBySlug", ctx, "sheesham-sofa").Return(existing, nil)

		result, err := service.Create(ctx, CreateProductRequest{
			Name:  "Sheesham Sofa",
			Slug:  "sheesham-sofa",
			Price: decimal.NewFromInt(45000),
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_SLUG", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		service, productRepo, _, categoryRepo, _ := newProductService()
		ctx := context.Background()

		categoryID := uuid.New()
		productRepo.On("FindBySlug", ctx, "sheesham-sofa").Return(nil, catalog.ErrProductNotFound)
		categoryRepo.On("FindByID", ctx, categoryID).Return(nil, catalog.ErrCategoryNotFound)

		result, err := service.Create(ctx, CreateProductRequest{
			Name:       "Sheesham Sofa",
			Slug:       "sheesham-sofa",
			CategoryID: &categoryID,
			Price:      decimal.NewFromInt(45000),
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, catalog.ErrCategoryNotFound)
	})
}

func TestProductService_SetPrice(t *testing.T) {
	t.Run("updates price and discount", func(t *testing.T) {
		service, productRepo, _, _, _ := newProductService()
		ctx := context.Background()

		product, err := catalog.NewProduct("Sheesham Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(45000)))
		require.NoError(t, err)
		product.ClearDomainEvents()

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		discount := decimal.NewFromInt(15)
		result, err := service.SetPrice(ctx, product.ID, SetProductPriceRequest{
			Price:           decimal.NewFromInt(50000),
			DiscountPercent: &discount,
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50000).Equal(result.Price))
		assert.True(t, decimal.NewFromInt(42500).Equal(result.DiscountedPrice))
		productRepo.AssertExpectations(t)
	})
}

func TestProductService_StatusChanges(t *testing.T) {
	t.Run("discontinued product cannot be reactivated", func(t *testing.T) {
		service, productRepo, _, _, _ := newProductService()
		ctx := context.Background()

		product, err := catalog.NewProduct("Sheesham Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(45000)))
		require.NoError(t, err)
		require.NoError(t, product.Discontinue())

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		result, err := service.Activate(ctx, product.ID)

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CANNOT_ACTIVATE", domainErr.Code)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_AddVariant(t *testing.T) {
	t.Run("adds tracked variant", func(t *testing.T) {
		service, productRepo, variantRepo, _, _ := newProductService()
		ctx := context.Background()

		product, err := catalog.NewProduct("Sheesham Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(45000)))
		require.NoError(t, err)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		variantRepo.On("FindBySKU", ctx, "SOFA-SHM-WAL").Return(nil, catalog.ErrVariantNotFound)
		variantRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Variant")).Return(nil)

		result, err := service.AddVariant(ctx, product.ID, CreateVariantRequest{
			SKU:      "SOFA-SHM-WAL",
			Material: "Sheesham",
			Color:    "Walnut",
			Stock:    8,
		})

		require.NoError(t, err)
		assert.Equal(t, "tracked", result.StockKind)
		assert.Equal(t, 8, result.Stock)
		variantRepo.AssertExpectations(t)
	})

	t.Run("adds made to order variant ignoring stock", func(t *testing.T) {
		service, productRepo, variantRepo, _, _ := newProductService()
		ctx := context.Background()

		product, err := catalog.NewProduct("Custom Wardrobe", "custom-wardrobe", valueobject.NewMoneyNPR(decimal.NewFromInt(80000)))
		require.NoError(t, err)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		variantRepo.On("FindBySKU", ctx, "WRD-CST-NAT").Return(nil, catalog.ErrVariantNotFound)
		variantRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Variant")).Return(nil)

		result, err := service.AddVariant(ctx, product.ID, CreateVariantRequest{
			SKU:       "WRD-CST-NAT",
			Material:  "Walnut",
			Color:     "Natural",
			StockKind: "made_to_order",
			Stock:     99,
		})

		require.NoError(t, err)
		assert.Equal(t, "made_to_order", result.StockKind)
		assert.Equal(t, 0, result.Stock)
	})

	t.Run("rejects duplicate sku", func(t *testing.T) {
		service, productRepo, variantRepo, _, _ := newProductService()
		ctx := context.Background()

		product, err := catalog.NewProduct("Sheesham Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(45000)))
		require.NoError(t, err)
		existing, err := catalog.NewVariant(product.ID, "SOFA-SHM-WAL", "Sheesham", "Walnut", 3)
		require.NoError(t, err)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		variantRepo.On("FindBySKU", ctx, "SOFA-SHM-WAL").Return(existing, nil)

		result, err := service.AddVariant(ctx, product.ID, CreateVariantRequest{
			SKU:      "SOFA-SHM-WAL",
			Material: "Sheesham",
			Color:    "Walnut",
		})

		assert.Nil(t, result)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_SKU", domainErr.Code)
		variantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_SetVariantStock(t *testing.T) {
	t.Run("sets tracked stock", func(t *testing.T) {
		service, _, variantRepo, _, _ := newProductService()
		ctx := context.Background()

		variant, err := catalog.NewVariant(uuid.New(), "SOFA-SHM-WAL", "Sheesham", "Walnut", 2)
		require.NoError(t, err)

		variantRepo.On("FindByID", ctx, variant.ID).Return(variant, nil)
		variantRepo.On("Save", ctx, variant).Return(nil)

		result, err := service.SetVariantStock(ctx, variant.ID, SetVariantStockRequest{Stock: 12})

		require.NoError(t, err)
		assert.Equal(t, 12, result.Stock)
		variantRepo.AssertExpectations(t)
	})

	t.Run("rejects stock on made to order variant", func(t *testing.T) {
		service, _, variantRepo, _, _ := newProductService()
		ctx := context.Background()

		variant, err := catalog.NewMadeToOrderVariant(uuid.New(), "WRD-CST-NAT", "Walnut", "Natural")
		require.NoError(t, err)

		variantRepo.On("FindByID", ctx, variant.ID).Return(variant, nil)

		result, err := service.SetVariantStock(ctx, variant.ID, SetVariantStockRequest{Stock: 5})

		assert.Nil(t, result)
		assert.Error(t, err)
		variantRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
