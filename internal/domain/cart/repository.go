package cart

import (
	"context"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for cart persistence
type Repository interface {
	// FindByID finds a cart by its ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)

	// FindActiveByUser finds the user's active cart, items included
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// FindAll finds all carts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Cart, error)

	// Save creates or updates a cart
	Save(ctx context.Context, c *Cart) error

	// SaveItem creates or updates a cart line
	SaveItem(ctx context.Context, item *Item) error

	// DeleteItem removes a cart line
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// Count counts carts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
