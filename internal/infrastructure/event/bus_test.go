package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/furnimart/backend/internal/domain/shared"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("boom")
	}
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string { return h.types }

func newTestEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "order", uuid.New())
	return &e
}

func newStartedBus(t *testing.T) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	return bus
}

func TestInMemoryEventBus_PublishToSubscribedHandler(t *testing.T) {
	bus := newStartedBus(t)
	handler := &recordingHandler{types: []string{"order.placed"}}
	bus.Subscribe(handler)

	event := newTestEvent("order.placed")
	require.NoError(t, bus.Publish(context.Background(), event))

	require.Len(t, handler.received, 1)
	assert.Equal(t, "order.placed", handler.received[0].EventType())
}

func TestInMemoryEventBus_TypeFiltering(t *testing.T) {
	bus := newStartedBus(t)
	orderHandler := &recordingHandler{types: []string{"order.placed"}}
	cartHandler := &recordingHandler{types: []string{"cart.closed"}}
	bus.Subscribe(orderHandler)
	bus.Subscribe(cartHandler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.placed")))

	assert.Len(t, orderHandler.received, 1)
	assert.Empty(t, cartHandler.received)
}

func TestInMemoryEventBus_WildcardHandler(t *testing.T) {
	bus := newStartedBus(t)
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(),
		newTestEvent("order.placed"),
		newTestEvent("cart.closed"),
	))

	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopDispatch(t *testing.T) {
	bus := newStartedBus(t)
	failing := &recordingHandler{types: []string{"order.placed"}, err: errors.New("handler error")}
	healthy := &recordingHandler{types: []string{"order.placed"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.placed")))

	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := newStartedBus(t)
	panicking := &recordingHandler{types: []string{"order.placed"}, panics: true}
	healthy := &recordingHandler{types: []string{"order.placed"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	assert.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), newTestEvent("order.placed"))
	})
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := newStartedBus(t)
	handler := &recordingHandler{types: []string{"order.placed"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.placed")))

	assert.Empty(t, handler.received)
}

func TestInMemoryEventBus_DropsEventsWhenNotRunning(t *testing.T) {
	ctx := context.Background()
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.placed"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(ctx, newTestEvent("order.placed")))
	assert.Empty(t, handler.received, "events before Start must not be delivered")

	require.NoError(t, bus.Start(ctx))
	require.NoError(t, bus.Publish(ctx, newTestEvent("order.placed")))
	assert.Len(t, handler.received, 1)

	require.NoError(t, bus.Stop(ctx))
	require.NoError(t, bus.Publish(ctx, newTestEvent("order.placed")))
	assert.Len(t, handler.received, 1, "events after Stop must not be delivered")
}
