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

// MockReviewRepository is a mock implementation of catalog.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newReviewFixture(t *testing.T) (*ReviewService, *MockReviewRepository, *MockProductRepository, *catalog.Product) {
	t.Helper()

	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	service := NewReviewService(reviewRepo, productRepo)

	product, err := catalog.NewProduct("Sheesham Sofa", "sheesham-sofa", valueobject.NewMoneyNPR(decimal.NewFromInt(45000)))
	require.NoError(t, err)

	return service, reviewRepo, productRepo, product
}

func TestReviewService_Create(t *testing.T) {
	t.Run("creates review", func(t *testing.T) {
		service, reviewRepo, productRepo, product := newReviewFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("FindByUserAndProduct", ctx, userID, product.ID).Return(nil, shared.ErrNotFound)
		reviewRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Review")).Return(nil)

		result, err := service.Create(ctx, userID, product.ID, CreateReviewRequest{
			Rating:  5,
			Comment: "Solid wood, great finish.",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, result.Rating)
		assert.Equal(t, userID, result.UserID)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("rejects second review of same product", func(t *testing.T) {
		service, reviewRepo, productRepo, product := newReviewFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		existing, err := catalog.NewReview(product.ID, userID, 4, "")
		require.NoError(t, err)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("FindByUserAndProduct", ctx, userID, product.ID).Return(existing, nil)

		result, err := service.Create(ctx, userID, product.ID, CreateReviewRequest{Rating: 3})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, catalog.ErrDuplicateReview)
		reviewRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects review of unknown product", func(t *testing.T) {
		service, reviewRepo, productRepo, _ := newReviewFixture(t)
		ctx := context.Background()
		productID := uuid.New()

		productRepo.On("FindByID", ctx, productID).Return(nil, catalog.ErrProductNotFound)

		result, err := service.Create(ctx, uuid.New(), productID, CreateReviewRequest{Rating: 4})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
		reviewRepo.AssertNotCalled(t, "FindByUserAndProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewService_Update(t *testing.T) {
	t.Run("owner updates review", func(t *testing.T) {
		service, reviewRepo, _, product := newReviewFixture(t)
		ctx := context.Background()
		userID := uuid.New()

		review, err := catalog.NewReview(product.ID, userID, 3, "Decent")
		require.NoError(t, err)

		reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
		reviewRepo.On("Save", ctx, review).Return(nil)

		result, err := service.Update(ctx, userID, review.ID, UpdateReviewRequest{Rating: 5, Comment: "Grew on me"})

		require.NoError(t, err)
		assert.Equal(t, 5, result.Rating)
		assert.Equal(t, "Grew on me", result.Comment)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		service, reviewRepo, _, product := newReviewFixture(t)
		ctx := context.Background()

		review, err := catalog.NewReview(product.ID, uuid.New(), 3, "")
		require.NoError(t, err)

		reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

		result, err := service.Update(ctx, uuid.New(), review.ID, UpdateReviewRequest{Rating: 1})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("admin deletes any review", func(t *testing.T) {
		service, reviewRepo, _, product := newReviewFixture(t)
		ctx := context.Background()

		review, err := catalog.NewReview(product.ID, uuid.New(), 2, "")
		require.NoError(t, err)

		reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)
		reviewRepo.On("Delete", ctx, review.ID).Return(nil)

		err = service.Delete(ctx, uuid.New(), review.ID, true)

		assert.NoError(t, err)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		service, reviewRepo, _, product := newReviewFixture(t)
		ctx := context.Background()

		review, err := catalog.NewReview(product.ID, uuid.New(), 2, "")
		require.NoError(t, err)

		reviewRepo.On("FindByID", ctx, review.ID).Return(review, nil)

		err = service.Delete(ctx, uuid.New(), review.ID, false)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		reviewRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
