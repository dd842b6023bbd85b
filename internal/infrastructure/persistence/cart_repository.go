package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/shared"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID finds a cart by its ID with items and their variants preloaded
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	if err := r.db.WithContext(ctx).
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

// FindActiveByUser finds the user's active cart with items preloaded.
// Returns shared.ErrNotFound when the user has no active cart.
func (r *GormCartRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	var c cart.Cart
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Variant").
		Preload("Items.Variant.Product").
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAll finds all carts matching the filter
func (r *GormCartRepository) FindAll(ctx context.Context, filter shared.Filter) ([]cart.Cart, error) {
	var carts []cart.Cart
	query := r.db.WithContext(ctx).Model(&cart.Cart{}).Preload("Items")

	for key, value := range filter.Filters {
		switch key {
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CartSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// Save creates or updates the cart row. Items are persisted separately
// through SaveItem and DeleteItem.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	return r.db.WithContext(ctx).Omit("Items").Save(c).Error
}

// SaveItem creates or updates a cart line
func (r *GormCartRepository) SaveItem(ctx context.Context, item *cart.Item) error {
	return r.db.WithContext(ctx).Omit("Variant").Save(item).Error
}

// DeleteItem removes a cart line
func (r *GormCartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&cart.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}

// Count counts carts matching the filter
func (r *GormCartRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&cart.Cart{})

	for key, value := range filter.Filters {
		switch key {
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ cart.Repository = (*GormCartRepository)(nil)
