package order

import (
	"context"

	"github.com/furnimart/backend/internal/domain/order"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order lifecycle operations. Orders are created only
// by checkout; this service reads them and moves them through their states.
type OrderService struct {
	orderRepo      order.Repository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetByID retrieves an order by ID without ownership checks. Admin use only.
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// GetForUser retrieves an order owned by the given user. Orders belonging
// to other users are reported as not found rather than forbidden.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves orders across all users with filtering and pagination
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := buildDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// ListForUser retrieves a user's own orders with filtering and pagination
func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := buildDomainFilter(filter)

	orders, err := s.orderRepo.FindByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.CountByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToOrderResponses(orders), total, nil
}

// MarkShipped marks an order as shipped
func (s *OrderService) MarkShipped(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, (*order.Order).MarkShipped)
}

// MarkDelivered marks an order as delivered
func (s *OrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, (*order.Order).MarkDelivered)
}

// Cancel cancels an order without ownership checks. Admin use only.
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, (*order.Order).Cancel)
}

// CancelForUser cancels an order owned by the given user. The domain
// rejects cancellation once the order has shipped.
func (s *OrderService) CancelForUser(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrNotFound
	}

	if err := o.Cancel(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// RecordPaymentResult records a gateway callback for an order's payment.
// A successful payment also moves the order from pending to paid; a failed
// one leaves the order pending so the customer can retry.
func (s *OrderService) RecordPaymentResult(ctx context.Context, orderID uuid.UUID, req RecordPaymentResultRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Payment == nil {
		return nil, shared.NewDomainError("PAYMENT_NOT_FOUND", "Order has no payment record")
	}

	if req.Success {
		if req.TransactionID == "" {
			return nil, shared.NewDomainError("INVALID_TRANSACTION_ID", "Transaction ID is required for successful payments")
		}
		if err := o.Payment.MarkSuccess(req.TransactionID); err != nil {
			return nil, err
		}
		if err := o.MarkPaid(); err != nil {
			return nil, err
		}
	} else {
		if err := o.Payment.MarkFailed(); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// RefundPayment marks an order's successful payment as refunded. The order
// must already be cancelled; refunding does not cancel it implicitly.
func (s *OrderService) RefundPayment(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Payment == nil {
		return nil, shared.NewDomainError("PAYMENT_NOT_FOUND", "Order has no payment record")
	}
	if o.Status != order.StatusCancelled {
		return nil, shared.NewDomainError("INVALID_STATE", "Only cancelled orders can be refunded")
	}

	if err := o.Payment.Refund(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	response := ToOrderResponse(o)
	return &response, nil
}

func (s *OrderService) transition(ctx context.Context, orderID uuid.UUID, fn func(*order.Order) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := fn(o); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o)

	response := ToOrderResponse(o)
	return &response, nil
}

// publishEvents publishes pending domain events. Failures are not
// propagated; event handling must not fail the completed operation.
func (s *OrderService) publishEvents(ctx context.Context, o *order.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := o.GetDomainEvents()
	if len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
	}
	o.ClearDomainEvents()
}

func buildDomainFilter(filter OrderListFilter) shared.Filter {
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

	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.DeliveryType != nil {
		domainFilter.Filters["delivery_type"] = string(*filter.DeliveryType)
	}

	return domainFilter
}
