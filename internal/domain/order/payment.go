package order

import (
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentMethod is how the customer pays
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentEsewa  PaymentMethod = "esewa"
	PaymentKhalti PaymentMethod = "khalti"
	PaymentStripe PaymentMethod = "stripe"
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCOD, PaymentEsewa, PaymentKhalti, PaymentStripe:
		return true
	}
	return false
}

// PaymentStatus is the payment lifecycle state
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// CanTransitionTo checks if a transition to the target status is allowed
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:  {PaymentStatusSuccess, PaymentStatusFailed},
		PaymentStatusSuccess:  {PaymentStatusRefunded},
		PaymentStatusFailed:   {},
		PaymentStatusRefunded: {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Payment is the one-to-one payment record of an order. Checkout creates it
// pending; gateway callbacks move it through its lifecycle.
type Payment struct {
	shared.BaseEntity
	OrderID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	Method        PaymentMethod `gorm:"type:varchar(20);not null"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionID *string       `gorm:"type:varchar(100)"`
	PaidAt        *time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a pending payment record for an order
func NewPayment(orderID uuid.UUID, method PaymentMethod) (*Payment, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Method:     method,
		Status:     PaymentStatusPending,
	}, nil
}

// MarkSuccess records a successful gateway transaction
func (p *Payment) MarkSuccess(transactionID string) error {
	if !p.Status.CanTransitionTo(PaymentStatusSuccess) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot mark payment "+string(p.Status)+" as success")
	}

	now := time.Now()
	p.Status = PaymentStatusSuccess
	p.TransactionID = &transactionID
	p.PaidAt = &now
	p.UpdatedAt = now
	return nil
}

// MarkFailed records a failed gateway transaction
func (p *Payment) MarkFailed() error {
	if !p.Status.CanTransitionTo(PaymentStatusFailed) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot mark payment "+string(p.Status)+" as failed")
	}

	p.Status = PaymentStatusFailed
	p.UpdatedAt = time.Now()
	return nil
}

// Refund marks a successful payment as refunded
func (p *Payment) Refund() error {
	if !p.Status.CanTransitionTo(PaymentStatusRefunded) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Only successful payments can be refunded")
	}

	p.Status = PaymentStatusRefunded
	p.UpdatedAt = time.Now()
	return nil
}
