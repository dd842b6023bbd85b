package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appcheckout "github.com/furnimart/backend/internal/application/checkout"
	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/furnimart/backend/internal/domain/order"
)

// GormCheckoutScope implements the checkout TransactionScope using GORM
// transactions. Every repository handed to fn is bound to the same
// transaction, so a returned error rolls back all writes including the
// per-item stock decrements.
type GormCheckoutScope struct {
	db *gorm.DB
}

// NewGormCheckoutScope creates a new GormCheckoutScope.
func NewGormCheckoutScope(db *gorm.DB) *GormCheckoutScope {
	return &GormCheckoutScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormCheckoutScope) Execute(ctx context.Context, fn func(repos appcheckout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCheckoutRepositories{tx: tx})
	})
}

// gormCheckoutRepositories provides transaction-bound repositories.
type gormCheckoutRepositories struct {
	tx *gorm.DB
}

// Carts returns the locking cart repository scoped to the current transaction.
func (r *gormCheckoutRepositories) Carts() appcheckout.CartTxRepository {
	return &gormCartTxRepository{tx: r.tx}
}

// Variants returns the locking variant repository scoped to the current transaction.
func (r *gormCheckoutRepositories) Variants() appcheckout.VariantTxRepository {
	return &gormVariantTxRepository{tx: r.tx}
}

// Orders returns the order repository scoped to the current transaction.
func (r *gormCheckoutRepositories) Orders() order.Repository {
	return NewGormOrderRepository(r.tx)
}

// Addresses returns the address repository scoped to the current transaction.
func (r *gormCheckoutRepositories) Addresses() identity.AddressRepository {
	return NewGormAddressRepository(r.tx)
}

// gormCartTxRepository reads carts under SELECT ... FOR UPDATE.
type gormCartTxRepository struct {
	tx *gorm.DB
}

// FindByIDForUpdate locks the cart row and loads its lines. The lock
// covers the carts row only; variants are locked individually by the
// checkout service in its stable reservation order.
func (r *gormCartTxRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	if err := r.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		Preload("Items.Variant").
		Preload("Items.Variant.Product").
		First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrInvalidCart
		}
		return nil, err
	}
	return &c, nil
}

// Save persists the cart row
func (r *gormCartTxRepository) Save(ctx context.Context, c *cart.Cart) error {
	return r.tx.WithContext(ctx).Omit("Items").Save(c).Error
}

// DeleteItems removes all lines belonging to a cart
func (r *gormCartTxRepository) DeleteItems(ctx context.Context, cartID uuid.UUID) error {
	return r.tx.WithContext(ctx).Delete(&cart.Item{}, "cart_id = ?", cartID).Error
}

// gormVariantTxRepository reads variants under SELECT ... FOR UPDATE.
type gormVariantTxRepository struct {
	tx *gorm.DB
}

// FindByIDForUpdate locks the variant row and loads its product.
func (r *gormVariantTxRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Variant, error) {
	var variant catalog.Variant
	if err := r.tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Product").
		First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrVariantNotFound
		}
		return nil, err
	}
	return &variant, nil
}

// UpdateStock persists the variant's stock level immediately so the
// decrement is visible to competing transactions when the row unlocks.
func (r *gormVariantTxRepository) UpdateStock(ctx context.Context, v *catalog.Variant) error {
	return r.tx.WithContext(ctx).
		Model(&catalog.Variant{}).
		Where("id = ?", v.ID).
		Update("stock", v.Stock).Error
}

var _ appcheckout.TransactionScope = (*GormCheckoutScope)(nil)
var _ appcheckout.TransactionalRepositories = (*gormCheckoutRepositories)(nil)
var _ appcheckout.CartTxRepository = (*gormCartTxRepository)(nil)
var _ appcheckout.VariantTxRepository = (*gormVariantTxRepository)(nil)
