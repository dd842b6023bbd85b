package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	appcheckout "github.com/furnimart/backend/internal/application/checkout"
	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/catalog"
)

func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormVariantTxRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the variant row", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		variantID := uuid.New()
		productID := uuid.New()

		variantRows := sqlmock.NewRows([]string{"id", "product_id", "sku", "material", "color", "stock_kind", "stock"}).
			AddRow(variantID, productID, "SOFA-SHEESHAM-BRN", "Sheesham", "Walnut Brown", "tracked", 5)
		mock.ExpectQuery(`SELECT \* FROM "variants" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(variantID, 1).
			WillReturnRows(variantRows)

		productRows := sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(productID, "Sheesham Sofa", "sheesham-sofa")
		mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
			WithArgs(productID).
			WillReturnRows(productRows)

		repo := &gormVariantTxRepository{tx: gormDB}
		variant, err := repo.FindByIDForUpdate(context.Background(), variantID)

		require.NoError(t, err)
		assert.Equal(t, variantID, variant.ID)
		assert.Equal(t, 5, variant.Stock)
		require.NotNil(t, variant.Product)
		assert.Equal(t, "Sheesham Sofa", variant.Product.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing variant to domain error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		variantID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "variants" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(variantID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		repo := &gormVariantTxRepository{tx: gormDB}
		variant, err := repo.FindByIDForUpdate(context.Background(), variantID)

		assert.Nil(t, variant)
		assert.ErrorIs(t, err, catalog.ErrVariantNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormVariantTxRepository_UpdateStock(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()

	variant, err := catalog.NewVariant(uuid.New(), "SOFA-OAK-GRY", "Oak", "Grey", 3)
	require.NoError(t, err)
	require.NoError(t, variant.Reserve(2))

	mock.ExpectExec(`UPDATE "variants" SET .* WHERE id = \$`).
		WithArgs(1, sqlmock.AnyArg(), variant.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &gormVariantTxRepository{tx: gormDB}
	require.NoError(t, repo.UpdateStock(context.Background(), variant))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCartTxRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the cart row", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		cartID := uuid.New()
		userID := uuid.New()

		cartRows := sqlmock.NewRows([]string{"id", "user_id", "is_active"}).
			AddRow(cartID, userID, true)
		mock.ExpectQuery(`SELECT \* FROM "carts" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(cartID, 1).
			WillReturnRows(cartRows)

		mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE "cart_items"\."cart_id" = \$1`).
			WithArgs(cartID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "cart_id", "variant_id", "quantity", "price"}))

		repo := &gormCartTxRepository{tx: gormDB}
		c, err := repo.FindByIDForUpdate(context.Background(), cartID)

		require.NoError(t, err)
		assert.Equal(t, cartID, c.ID)
		assert.True(t, c.IsActive)
		assert.True(t, c.IsEmpty())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing cart to invalid cart error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		cartID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "carts" WHERE id = \$1 .* FOR UPDATE`).
			WithArgs(cartID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		repo := &gormCartTxRepository{tx: gormDB}
		c, err := repo.FindByIDForUpdate(context.Background(), cartID)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, cart.ErrInvalidCart)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCheckoutScope_Execute(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		scope := NewGormCheckoutScope(gormDB)
		err := scope.Execute(context.Background(), func(repos appcheckout.TransactionalRepositories) error {
			assert.NotNil(t, repos.Carts())
			assert.NotNil(t, repos.Variants())
			assert.NotNil(t, repos.Orders())
			assert.NotNil(t, repos.Addresses())
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		scope := NewGormCheckoutScope(gormDB)
		err := scope.Execute(context.Background(), func(appcheckout.TransactionalRepositories) error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
