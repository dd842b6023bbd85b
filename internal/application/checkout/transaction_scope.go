package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/furnimart/backend/internal/domain/order"
)

// TransactionScope provides atomic execution of checkout operations.
// All repository access inside Execute shares a single database
// transaction; an error from fn rolls everything back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories that
// participate in a checkout transaction.
type TransactionalRepositories interface {
	Carts() CartTxRepository
	Variants() VariantTxRepository
	Orders() order.Repository
	Addresses() identity.AddressRepository
}

// CartTxRepository is the cart access available inside a checkout transaction.
type CartTxRepository interface {
	// FindByIDForUpdate loads a cart with its items, variants and products
	// while holding a row lock on the cart.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*cart.Cart, error)

	// Save persists the cart row
	Save(ctx context.Context, c *cart.Cart) error

	// DeleteItems removes all lines belonging to a cart
	DeleteItems(ctx context.Context, cartID uuid.UUID) error
}

// VariantTxRepository is the variant access available inside a checkout transaction.
type VariantTxRepository interface {
	// FindByIDForUpdate loads a variant with its product while holding
	// a row lock on the variant.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Variant, error)

	// UpdateStock persists the variant's stock level
	UpdateStock(ctx context.Context, v *catalog.Variant) error
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for tests where the repositories are in-memory fakes.
type NoOpTransactionScope struct {
	carts     CartTxRepository
	variants  VariantTxRepository
	orders    order.Repository
	addresses identity.AddressRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	carts CartTxRepository,
	variants VariantTxRepository,
	orders order.Repository,
	addresses identity.AddressRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		carts:     carts,
		variants:  variants,
		orders:    orders,
		addresses: addresses,
	}
}

// Execute runs the function without transactional guarantees.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Carts returns the cart repository.
func (s *NoOpTransactionScope) Carts() CartTxRepository { return s.carts }

// Variants returns the variant repository.
func (s *NoOpTransactionScope) Variants() VariantTxRepository { return s.variants }

// Orders returns the order repository.
func (s *NoOpTransactionScope) Orders() order.Repository { return s.orders }

// Addresses returns the shipping address repository.
func (s *NoOpTransactionScope) Addresses() identity.AddressRepository { return s.addresses }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
