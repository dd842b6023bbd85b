package persistence

import (
	"context"
	"testing"

	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAddressTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&identity.ShippingAddress{}))
	return db
}

func newTestAddress(t *testing.T, userID uuid.UUID) *identity.ShippingAddress {
	t.Helper()
	addr, err := identity.NewShippingAddress(userID,
		"Sita Shrestha", "+9779841000000", "Bagmati", "Kathmandu", "Maitighar Marg")
	require.NoError(t, err)
	return addr
}

func TestGormAddressRepository_SaveAndFind(t *testing.T) {
	db := setupAddressTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	addr := newTestAddress(t, userID)
	require.NoError(t, repo.Save(ctx, addr))

	found, err := repo.FindByID(ctx, addr.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sita Shrestha", found.RecipientName)
	assert.Equal(t, "Kathmandu", found.City)
	assert.Equal(t, userID, found.UserID)
}

func TestGormAddressRepository_FindByID_NotFound(t *testing.T) {
	db := setupAddressTestDB(t)
	repo := NewGormAddressRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, identity.ErrAddressNotFound)
}

func TestGormAddressRepository_FindByUser_DefaultFirst(t *testing.T) {
	db := setupAddressTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	first := newTestAddress(t, userID)
	require.NoError(t, repo.Save(ctx, first))

	second := newTestAddress(t, userID)
	second.Street = "Lakeside Road, Pokhara"
	second.IsDefault = true
	require.NoError(t, repo.Save(ctx, second))

	// Another user's address must not leak into the result
	require.NoError(t, repo.Save(ctx, newTestAddress(t, uuid.New())))

	addresses, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.True(t, addresses[0].IsDefault)
	assert.Equal(t, second.ID, addresses[0].ID)
}

func TestGormAddressRepository_ClearDefault(t *testing.T) {
	db := setupAddressTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	addr := newTestAddress(t, userID)
	addr.IsDefault = true
	require.NoError(t, repo.Save(ctx, addr))

	require.NoError(t, repo.ClearDefault(ctx, userID))

	found, err := repo.FindByID(ctx, addr.ID)
	require.NoError(t, err)
	assert.False(t, found.IsDefault)
}

func TestGormAddressRepository_Delete(t *testing.T) {
	db := setupAddressTestDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()

	addr := newTestAddress(t, uuid.New())
	require.NoError(t, repo.Save(ctx, addr))

	require.NoError(t, repo.Delete(ctx, addr.ID))
	assert.ErrorIs(t, repo.Delete(ctx, addr.ID), identity.ErrAddressNotFound)
}
