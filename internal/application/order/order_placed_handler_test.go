package order

import (
	"context"
	"testing"

	"github.com/furnimart/backend/internal/domain/order"
	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderPlacedHandler_Handle(t *testing.T) {
	handler := NewOrderPlacedHandler(zap.NewNop())

	assert.Equal(t, []string{order.EventTypeOrderPlaced}, handler.EventTypes())

	o, err := order.NewOrder(uuid.New(), order.AddressSnapshot{
		AddressID:      uuid.New(),
		RecipientName:  "Sita Shrestha",
		RecipientPhone: "+9779841000000",
		AddressLine:    "Maitighar Marg, Kathmandu, Bagmati",
	}, order.DeliveryStandard, valueobject.NewMoneyNPRFromFloat(45000))
	require.NoError(t, err)

	err = handler.Handle(context.Background(), order.NewOrderPlacedEvent(o))
	assert.NoError(t, err)
}

func TestOrderPlacedHandler_Handle_WrongEventType(t *testing.T) {
	handler := NewOrderPlacedHandler(zap.NewNop())

	event := shared.NewBaseDomainEvent("SomethingElse", "Order", uuid.New())
	err := handler.Handle(context.Background(), &event)
	assert.Error(t, err)
}
