package identity

import (
	"strings"
	"time"

	"github.com/furnimart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Identity domain errors
var (
	ErrAddressNotFound = shared.NewDomainError("ADDRESS_NOT_FOUND", "Shipping address missing or not owned by this user")
	ErrUserNotFound    = shared.NewDomainError("USER_NOT_FOUND", "User not found")
)

// ShippingAddress is a delivery destination owned by a user. Orders copy its
// fields as a snapshot at checkout.
type ShippingAddress struct {
	shared.BaseEntity
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName  string    `gorm:"type:varchar(100);not null"`
	RecipientPhone string    `gorm:"type:varchar(20);not null"`
	Province       string    `gorm:"type:varchar(100);not null"`
	City           string    `gorm:"type:varchar(100);not null"`
	Street         string    `gorm:"type:varchar(200);not null"`
	Landmark       string    `gorm:"type:varchar(200)"`
	IsDefault      bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}

// NewShippingAddress creates a new address for a user
func NewShippingAddress(userID uuid.UUID, recipientName, recipientPhone, province, city, street string) (*ShippingAddress, error) {
	if strings.TrimSpace(recipientName) == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Recipient name cannot be empty")
	}
	if !phoneRegex.MatchString(strings.TrimSpace(recipientPhone)) {
		return nil, shared.NewDomainError("INVALID_PHONE", "Recipient phone is not valid")
	}
	if strings.TrimSpace(province) == "" || strings.TrimSpace(city) == "" || strings.TrimSpace(street) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Province, city and street are required")
	}

	return &ShippingAddress{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		RecipientName:  strings.TrimSpace(recipientName),
		RecipientPhone: strings.TrimSpace(recipientPhone),
		Province:       strings.TrimSpace(province),
		City:           strings.TrimSpace(city),
		Street:         strings.TrimSpace(street),
	}, nil
}

// Update replaces the address fields
func (a *ShippingAddress) Update(recipientName, recipientPhone, province, city, street, landmark string) error {
	if strings.TrimSpace(recipientName) == "" {
		return shared.NewDomainError("INVALID_RECIPIENT", "Recipient name cannot be empty")
	}
	if !phoneRegex.MatchString(strings.TrimSpace(recipientPhone)) {
		return shared.NewDomainError("INVALID_PHONE", "Recipient phone is not valid")
	}
	if strings.TrimSpace(province) == "" || strings.TrimSpace(city) == "" || strings.TrimSpace(street) == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Province, city and street are required")
	}

	a.RecipientName = strings.TrimSpace(recipientName)
	a.RecipientPhone = strings.TrimSpace(recipientPhone)
	a.Province = strings.TrimSpace(province)
	a.City = strings.TrimSpace(city)
	a.Street = strings.TrimSpace(street)
	a.Landmark = strings.TrimSpace(landmark)
	a.UpdatedAt = time.Now()
	return nil
}

// SetDefault marks this address as the user's default
func (a *ShippingAddress) SetDefault(isDefault bool) {
	a.IsDefault = isDefault
	a.UpdatedAt = time.Now()
}

// Line renders the address as a single line for order snapshots
func (a *ShippingAddress) Line() string {
	parts := []string{a.Street, a.City, a.Province}
	if a.Landmark != "" {
		parts = append([]string{a.Landmark}, parts...)
	}
	return strings.Join(parts, ", ")
}

// BelongsTo returns true if the address is owned by the given user
func (a *ShippingAddress) BelongsTo(userID uuid.UUID) bool {
	return a.UserID == userID
}
