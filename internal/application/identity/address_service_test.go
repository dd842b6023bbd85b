package identity

import (
	"context"
	"testing"

	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAddressRepository is a mock implementation of identity.AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.ShippingAddress, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.ShippingAddress), args.Error(1)
}

func (m *MockAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]identity.ShippingAddress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.ShippingAddress), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, address *identity.ShippingAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAddressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestAddress(t *testing.T, userID uuid.UUID) *identity.ShippingAddress {
	t.Helper()
	address, err := identity.NewShippingAddress(userID, "Sita Shrestha", "+9779841000000", "Bagmati", "Kathmandu", "Maitighar Marg")
	require.NoError(t, err)
	return address
}

func TestAddressService_Create(t *testing.T) {
	t.Run("creates address", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		userID := uuid.New()

		repo.On("Save", ctx, mock.AnythingOfType("*identity.ShippingAddress")).Return(nil)

		result, err := service.Create(ctx, userID, CreateAddressRequest{
			RecipientName:  "Sita Shrestha",
			RecipientPhone: "+9779841000000",
			Province:       "Bagmati",
			City:           "Kathmandu",
			Street:         "Maitighar Marg",
			Landmark:       "Near the mandala",
		})

		require.NoError(t, err)
		assert.Equal(t, "Near the mandala, Maitighar Marg, Kathmandu, Bagmati", result.Line)
		assert.False(t, result.IsDefault)
		repo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})

	t.Run("default address clears previous default", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		userID := uuid.New()

		repo.On("ClearDefault", ctx, userID).Return(nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.ShippingAddress")).Return(nil)

		result, err := service.Create(ctx, userID, CreateAddressRequest{
			RecipientName:  "Sita Shrestha",
			RecipientPhone: "+9779841000000",
			Province:       "Bagmati",
			City:           "Kathmandu",
			Street:         "Maitighar Marg",
			IsDefault:      true,
		})

		require.NoError(t, err)
		assert.True(t, result.IsDefault)
		repo.AssertExpectations(t)
	})
}

func TestAddressService_SetDefault(t *testing.T) {
	t.Run("promotes the address", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		userID := uuid.New()
		address := newTestAddress(t, userID)

		repo.On("FindByID", ctx, address.ID).Return(address, nil)
		repo.On("ClearDefault", ctx, userID).Return(nil)
		repo.On("Save", ctx, address).Return(nil)

		result, err := service.SetDefault(ctx, userID, address.ID)

		require.NoError(t, err)
		assert.True(t, result.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("hides another user's address", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		address := newTestAddress(t, uuid.New())

		repo.On("FindByID", ctx, address.ID).Return(address, nil)

		result, err := service.SetDefault(ctx, uuid.New(), address.ID)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, identity.ErrAddressNotFound)
		repo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})
}

func TestAddressService_Delete(t *testing.T) {
	t.Run("deletes own address", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		userID := uuid.New()
		address := newTestAddress(t, userID)

		repo.On("FindByID", ctx, address.ID).Return(address, nil)
		repo.On("Delete", ctx, address.ID).Return(nil)

		err := service.Delete(ctx, userID, address.ID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("cannot delete another user's address", func(t *testing.T) {
		repo := new(MockAddressRepository)
		service := NewAddressService(repo)
		ctx := context.Background()
		address := newTestAddress(t, uuid.New())

		repo.On("FindByID", ctx, address.ID).Return(address, nil)

		err := service.Delete(ctx, uuid.New(), address.ID)

		assert.ErrorIs(t, err, identity.ErrAddressNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
