package catalog

import (
	"testing"

	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Oak Dining Table", "Oak-Dining-Table", valueobject.NewMoneyNPRFromFloat(45000))
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Oak Dining Table", product.Name)
		assert.Equal(t, "oak-dining-table", product.Slug)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(45000)))
		assert.True(t, product.DiscountPercent.IsZero())
		assert.Equal(t, ProductStatusActive, product.Status)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("publishes ProductCreated event", func(t *testing.T) {
		product, err := NewProduct("Teak Bookshelf", "teak-bookshelf", valueobject.NewMoneyNPRFromFloat(12000))
		require.NoError(t, err)

		events := product.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeProductCreated, events[0].EventType())

		event, ok := events[0].(*ProductCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, product.ID, event.ProductID)
		assert.Equal(t, product.Name, event.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "oak-table", valueobject.NewMoneyNPRFromFloat(100))
		require.Error(t, err)
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Oak Table", "oak-table", valueobject.NewMoneyNPR(decimal.NewFromInt(-1)))
		require.Error(t, err)
	})

	t.Run("fails with invalid slug", func(t *testing.T) {
		_, err := NewProduct("Oak Table", "oak table!", valueobject.NewMoneyNPRFromFloat(100))
		require.Error(t, err)
	})
}

func TestProductDiscountedPrice(t *testing.T) {
	product, err := NewProduct("Walnut Wardrobe", "walnut-wardrobe", valueobject.NewMoneyNPRFromFloat(1000))
	require.NoError(t, err)

	t.Run("without discount equals list price", func(t *testing.T) {
		assert.Equal(t, "1000.00", product.DiscountedPrice().StringFixed(2))
	})

	t.Run("applies discount percent", func(t *testing.T) {
		require.NoError(t, product.SetDiscount(decimal.NewFromInt(25)))
		assert.Equal(t, "750.00", product.DiscountedPrice().StringFixed(2))
	})

	t.Run("rejects discount above 100", func(t *testing.T) {
		err := product.SetDiscount(decimal.NewFromInt(101))
		require.Error(t, err)
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		err := product.SetDiscount(decimal.NewFromInt(-5))
		require.Error(t, err)
	})
}

func TestProductSetPrice(t *testing.T) {
	product, err := NewProduct("Rattan Chair", "rattan-chair", valueobject.NewMoneyNPRFromFloat(500))
	require.NoError(t, err)
	product.ClearDomainEvents()

	require.NoError(t, product.SetPrice(valueobject.NewMoneyNPRFromFloat(600)))
	assert.True(t, product.Price.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, 2, product.GetVersion())

	events := product.GetDomainEvents()
	require.Len(t, events, 1)
	event, ok := events[0].(*ProductPriceChangedEvent)
	require.True(t, ok)
	assert.True(t, event.OldPrice.Equal(decimal.NewFromInt(500)))
	assert.True(t, event.NewPrice.Equal(decimal.NewFromInt(600)))

	err = product.SetPrice(valueobject.NewMoneyNPR(decimal.NewFromInt(-10)))
	require.Error(t, err)
}

func TestProductStatusTransitions(t *testing.T) {
	product, err := NewProduct("Pine Bed", "pine-bed", valueobject.NewMoneyNPRFromFloat(30000))
	require.NoError(t, err)

	assert.True(t, product.IsActive())
	require.Error(t, product.Activate())

	require.NoError(t, product.Deactivate())
	assert.False(t, product.IsActive())

	require.NoError(t, product.Activate())
	assert.True(t, product.IsActive())

	require.NoError(t, product.Discontinue())
	require.Error(t, product.Activate())
	require.Error(t, product.Discontinue())
}
