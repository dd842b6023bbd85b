package identity

import (
	"context"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AddressRepository defines the interface for shipping address persistence
type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShippingAddress, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]ShippingAddress, error)
	Save(ctx context.Context, address *ShippingAddress) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ClearDefault unsets the default flag on all of a user's addresses
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}
