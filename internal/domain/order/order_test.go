package order

import (
	"testing"

	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() AddressSnapshot {
	return AddressSnapshot{
		AddressID:      uuid.New(),
		RecipientName:  "Sita Sharma",
		RecipientPhone: "9841000000",
		AddressLine:    "Baneshwor, Kathmandu",
	}
}

func TestNewOrder(t *testing.T) {
	userID := uuid.New()

	o, err := NewOrder(userID, validAddress(), DeliveryStandard, valueobject.NewMoneyNPRFromFloat(250))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, userID, o.UserID)
	assert.Equal(t, "250.00", o.TotalAmount.StringFixed(2))

	events := o.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeOrderPlaced, events[0].EventType())
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder(uuid.New(), validAddress(), DeliveryType("pigeon"), valueobject.NewMoneyNPRFromFloat(1))
	require.Error(t, err)
}

func TestOrderStatusLifecycle(t *testing.T) {
	t.Run("happy path pending to delivered", func(t *testing.T) {
		o, err := NewOrder(uuid.New(), validAddress(), DeliveryExpress, valueobject.NewMoneyNPRFromFloat(100))
		require.NoError(t, err)

		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkShipped())
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, StatusDelivered, o.Status)
	})

	t.Run("cancel from pending", func(t *testing.T) {
		o, _ := NewOrder(uuid.New(), validAddress(), DeliveryStandard, valueobject.NewMoneyNPRFromFloat(100))
		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status)
	})

	t.Run("cancel from paid", func(t *testing.T) {
		o, _ := NewOrder(uuid.New(), validAddress(), DeliveryStandard, valueobject.NewMoneyNPRFromFloat(100))
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Cancel())
	})

	t.Run("illegal transitions rejected", func(t *testing.T) {
		o, _ := NewOrder(uuid.New(), validAddress(), DeliveryStandard, valueobject.NewMoneyNPRFromFloat(100))

		require.Error(t, o.MarkShipped())  // pending -> shipped
		require.Error(t, o.MarkDelivered()) // pending -> delivered

		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.MarkShipped())
		require.Error(t, o.Cancel()) // shipped orders cannot be cancelled

		require.NoError(t, o.MarkDelivered())
		require.Error(t, o.MarkPaid()) // delivered is terminal
	})
}

func TestNewItemSnapshot(t *testing.T) {
	item, err := NewItem(uuid.New(), "Oak Dining Table", "Oak / Grey", valueobject.NewMoneyNPRFromFloat(100), 2)
	require.NoError(t, err)

	assert.Equal(t, "Oak Dining Table", item.ProductName)
	assert.Equal(t, "Oak / Grey", item.VariantDetails)
	assert.Equal(t, "200.00", item.TotalPrice.StringFixed(2))

	_, err = NewItem(uuid.New(), "", "Oak / Grey", valueobject.NewMoneyNPRFromFloat(100), 2)
	require.Error(t, err)
	_, err = NewItem(uuid.New(), "Oak Table", "Oak / Grey", valueobject.NewMoneyNPRFromFloat(100), 0)
	require.Error(t, err)
}

func TestPaymentLifecycle(t *testing.T) {
	t.Run("pending to success to refunded", func(t *testing.T) {
		p, err := NewPayment(uuid.New(), PaymentEsewa)
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, p.Status)
		assert.Nil(t, p.TransactionID)
		assert.Nil(t, p.PaidAt)

		require.NoError(t, p.MarkSuccess("ESW-12345"))
		assert.Equal(t, PaymentStatusSuccess, p.Status)
		require.NotNil(t, p.TransactionID)
		assert.Equal(t, "ESW-12345", *p.TransactionID)
		assert.NotNil(t, p.PaidAt)

		require.NoError(t, p.Refund())
		assert.Equal(t, PaymentStatusRefunded, p.Status)
	})

	t.Run("pending to failed is terminal", func(t *testing.T) {
		p, err := NewPayment(uuid.New(), PaymentCOD)
		require.NoError(t, err)

		require.NoError(t, p.MarkFailed())
		require.Error(t, p.MarkSuccess("X"))
		require.Error(t, p.Refund())
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		_, err := NewPayment(uuid.New(), PaymentMethod("barter"))
		require.Error(t, err)
	})
}
