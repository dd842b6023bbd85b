package cart

import (
	"context"
	"errors"

	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrProductNotAvailable is returned when a variant's product is not sellable
var ErrProductNotAvailable = shared.NewDomainError("PRODUCT_NOT_AVAILABLE", "Product is not available for purchase")

// CartService manages the user's active cart. Carts are created lazily on
// first access and closed only by checkout.
type CartService struct {
	cartRepo    cart.Repository
	variantRepo catalog.VariantRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, variantRepo catalog.VariantRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		variantRepo: variantRepo,
	}
}

// GetActiveCart returns the user's active cart, creating one when absent
func (s *CartService) GetActiveCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.activeCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem puts a variant in the user's active cart. Adding a variant that
// is already in the cart increments its quantity; the unit price stays as
// snapshotted at first add. New lines snapshot the product's current
// discounted price.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	variant, err := s.variantRepo.FindByIDWithProduct(ctx, req.VariantID)
	if err != nil {
		return nil, err
	}
	if variant.Product == nil || !variant.Product.IsActive() {
		return nil, ErrProductNotAvailable
	}

	c, err := s.activeCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing := c.FindItem(variant.ID); existing != nil {
		if err := existing.IncrementQuantity(req.Quantity); err != nil {
			return nil, err
		}
		if err := s.cartRepo.SaveItem(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		item, err := cart.NewItem(c.ID, variant.ID, req.Quantity, variant.Product.DiscountedPrice())
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.SaveItem(ctx, item); err != nil {
			return nil, err
		}
		item.Variant = variant
		c.Items = append(c.Items, *item)
	}

	response := ToCartResponse(c)
	return &response, nil
}

// UpdateItemQuantity replaces the quantity of a cart line
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, req UpdateItemRequest) (*CartResponse, error) {
	c, item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem removes a line from the user's active cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	c, item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(ctx, item.ID); err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}

	response := ToCartResponse(c)
	return &response, nil
}

// List retrieves carts across all users. Admin use only.
func (s *CartService) List(ctx context.Context, filter CartListFilter) ([]CartResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
	if filter.UserID != nil {
		domainFilter.Filters["user_id"] = *filter.UserID
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}

	carts, err := s.cartRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.cartRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCartResponses(carts), total, nil
}

// activeCart loads the user's active cart, creating it on first use
func (s *CartService) activeCart(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindActiveByUser(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	c = cart.NewCart(userID)
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ownedItem finds a line in the user's active cart by item ID
func (s *CartService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*cart.Cart, *cart.Item, error) {
	c, err := s.cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, cart.ErrItemNotFound
		}
		return nil, nil, err
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return c, &c.Items[i], nil
		}
	}
	return nil, nil, cart.ErrItemNotFound
}
