package order

import (
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/furnimart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the order lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s Status) CanTransitionTo(target Status) bool {
	transitions := map[Status][]Status{
		StatusPending:   {StatusPaid, StatusCancelled},
		StatusPaid:      {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// DeliveryType represents how an order is delivered
type DeliveryType string

const (
	DeliveryStandard     DeliveryType = "standard"
	DeliveryExpress      DeliveryType = "express"
	DeliveryInstallation DeliveryType = "installation"
)

// IsValid checks if the delivery type is a known value
func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliveryInstallation:
		return true
	}
	return false
}

// Order is the immutable record of a completed checkout. Only Status ever
// changes after creation; items, amounts and address fields are snapshots.
type Order struct {
	shared.BaseAggregateRoot
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShippingAddressID uuid.UUID       `gorm:"type:uuid;not null"`
	Status            Status          `gorm:"type:varchar(20);not null;default:'pending';index"`
	DeliveryType      DeliveryType    `gorm:"type:varchar(20);not null;default:'standard'"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	RecipientName     string          `gorm:"type:varchar(100);not null"`
	RecipientPhone    string          `gorm:"type:varchar(20);not null"`
	AddressLine       string          `gorm:"type:varchar(300);not null"`
	Items             []Item          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment           *Payment        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// AddressSnapshot carries the shipping address fields copied onto an order
type AddressSnapshot struct {
	AddressID      uuid.UUID
	RecipientName  string
	RecipientPhone string
	AddressLine    string
}

// NewOrder creates a pending order. Called only by the checkout transaction.
func NewOrder(userID uuid.UUID, address AddressSnapshot, deliveryType DeliveryType, total valueobject.Money) (*Order, error) {
	if !deliveryType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_TYPE", "Unknown delivery type")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Order total cannot be negative")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ShippingAddressID: address.AddressID,
		Status:            StatusPending,
		DeliveryType:      deliveryType,
		TotalAmount:       total.Amount(),
		RecipientName:     address.RecipientName,
		RecipientPhone:    address.RecipientPhone,
		AddressLine:       address.AddressLine,
	}

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// TransitionTo moves the order to the target lifecycle state
func (o *Order) TransitionTo(target Status) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_TRANSITION",
			"Cannot transition order from "+string(o.Status)+" to "+string(target))
	}

	old := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old))

	return nil
}

// MarkPaid marks the order as paid
func (o *Order) MarkPaid() error { return o.TransitionTo(StatusPaid) }

// MarkShipped marks the order as shipped
func (o *Order) MarkShipped() error { return o.TransitionTo(StatusShipped) }

// MarkDelivered marks the order as delivered
func (o *Order) MarkDelivered() error { return o.TransitionTo(StatusDelivered) }

// Cancel cancels the order. Allowed only from pending or paid.
func (o *Order) Cancel() error { return o.TransitionTo(StatusCancelled) }

// Total returns the order total as Money
func (o *Order) Total() valueobject.Money {
	return valueobject.NewMoneyNPR(o.TotalAmount)
}
