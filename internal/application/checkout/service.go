package checkout

import (
	"bytes"
	"context"
	"sort"

	orderapp "github.com/furnimart/backend/internal/application/order"
	"github.com/furnimart/backend/internal/domain/cart"
	"github.com/furnimart/backend/internal/domain/catalog"
	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/furnimart/backend/internal/domain/order"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// CheckoutService converts an active cart into a pending order. The whole
// conversion runs inside one database transaction: stock reservation, order
// creation and cart closing either all commit or all roll back.
type CheckoutService struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(scope TransactionScope) *CheckoutService {
	return &CheckoutService{
		scope: scope,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout places an order from the user's cart.
//
// Inside the transaction the cart row is locked first, then each variant row
// in ascending variant ID order. Locking variants in a stable global order
// keeps two concurrent checkouts that share variants from deadlocking. Each
// reservation is written back before the next variant is locked; a failed
// reservation rolls back the ones before it.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orderapp.OrderResponse, error) {
	var (
		placed *order.Order
		events []shared.DomainEvent
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		c, err := repos.Carts().FindByIDForUpdate(ctx, req.CartID)
		if err != nil {
			return err
		}
		if c.UserID != userID || !c.IsActive {
			return cart.ErrInvalidCart
		}

		address, err := repos.Addresses().FindByID(ctx, req.ShippingAddressID)
		if err != nil {
			return err
		}
		if !address.BelongsTo(userID) {
			return identity.ErrAddressNotFound
		}

		if c.IsEmpty() {
			return cart.ErrEmptyCart
		}

		items := make([]cart.Item, len(c.Items))
		copy(items, c.Items)
		sort.Slice(items, func(i, j int) bool {
			return bytes.Compare(items[i].VariantID[:], items[j].VariantID[:]) < 0
		})

		total := valueobject.ZeroNPR()
		type line struct {
			productName    string
			variantDetails string
			price          valueobject.Money
			quantity       int
		}
		lines := make([]line, 0, len(items))

		for _, item := range items {
			variant, err := repos.Variants().FindByIDForUpdate(ctx, item.VariantID)
			if err != nil {
				return err
			}

			if err := variant.Reserve(item.Quantity); err != nil {
				return err
			}
			if variant.StockKind == catalog.StockKindTracked {
				if err := repos.Variants().UpdateStock(ctx, variant); err != nil {
					return err
				}
			}

			lines = append(lines, line{
				productName:    variant.Product.Name,
				variantDetails: variant.Details(),
				price:          valueobject.NewMoneyNPR(item.Price),
				quantity:       item.Quantity,
			})
			total = total.MustAdd(item.TotalPrice())
		}

		o, err := order.NewOrder(userID, order.AddressSnapshot{
			AddressID:      address.ID,
			RecipientName:  address.RecipientName,
			RecipientPhone: address.RecipientPhone,
			AddressLine:    address.Line(),
		}, req.Delivery(), total)
		if err != nil {
			return err
		}

		for _, l := range lines {
			orderItem, err := order.NewItem(o.ID, l.productName, l.variantDetails, l.price, l.quantity)
			if err != nil {
				return err
			}
			o.Items = append(o.Items, *orderItem)
		}

		payment, err := order.NewPayment(o.ID, req.Method())
		if err != nil {
			return err
		}
		o.Payment = payment

		if err := repos.Orders().Save(ctx, o); err != nil {
			return err
		}

		if err := c.Close(); err != nil {
			return err
		}
		if err := repos.Carts().Save(ctx, c); err != nil {
			return err
		}
		if err := repos.Carts().DeleteItems(ctx, c.ID); err != nil {
			return err
		}

		events = append(events, o.GetDomainEvents()...)
		events = append(events, c.GetDomainEvents()...)
		o.ClearDomainEvents()
		c.ClearDomainEvents()

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events go out only after the transaction has committed. Failures are
	// not propagated; the order already exists.
	if s.eventPublisher != nil && len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}

	response := orderapp.ToOrderResponse(placed)
	return &response, nil
}
