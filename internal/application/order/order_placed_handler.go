package order

import (
	"context"
	"fmt"

	"github.com/furnimart/backend/internal/domain/order"
	"github.com/furnimart/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderPlacedHandler handles OrderPlacedEvent and feeds the fulfillment
// log. Couriers and the warehouse team consume this feed; the handler
// stays out of the checkout transaction so a slow consumer can never
// fail an order.
type OrderPlacedHandler struct {
	logger *zap.Logger
}

// NewOrderPlacedHandler creates a new handler for order placed events.
func NewOrderPlacedHandler(logger *zap.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{order.EventTypeOrderPlaced}
}

// Handle processes an OrderPlacedEvent.
func (h *OrderPlacedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	placedEvent, ok := event.(*order.OrderPlacedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", order.EventTypeOrderPlaced),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			order.EventTypeOrderPlaced, event.EventType())
	}

	h.logger.Info("order placed",
		zap.String("order_id", placedEvent.OrderID.String()),
		zap.String("user_id", placedEvent.UserID.String()),
		zap.String("total_amount", placedEvent.TotalAmount.String()),
	)
	return nil
}

// Ensure OrderPlacedHandler implements shared.EventHandler
var _ shared.EventHandler = (*OrderPlacedHandler)(nil)
