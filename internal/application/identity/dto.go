package identity

import (
	"time"

	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// ==================== Auth DTOs ====================

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents a logout; the access token comes from the header
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents issued tokens in API responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	TokenType             string    `json:"token_type"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
}

// AuthResponse bundles the authenticated user with their tokens
type AuthResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// ==================== User DTOs ====================

// ChangePasswordRequest represents a password change by the account owner
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	Phone string `json:"phone"`
}

// UserListFilter represents filter options for the admin user list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=customer admin"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users to response DTOs
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}

// ==================== Address DTOs ====================

// CreateAddressRequest represents a request to add a shipping address
type CreateAddressRequest struct {
	RecipientName  string `json:"recipient_name" binding:"required,min=1,max=100"`
	RecipientPhone string `json:"recipient_phone" binding:"required"`
	Province       string `json:"province" binding:"required,min=1,max=100"`
	City           string `json:"city" binding:"required,min=1,max=100"`
	Street         string `json:"street" binding:"required,min=1,max=200"`
	Landmark       string `json:"landmark" binding:"max=200"`
	IsDefault      bool   `json:"is_default"`
}

// UpdateAddressRequest represents a request to change a shipping address
type UpdateAddressRequest struct {
	RecipientName  string `json:"recipient_name" binding:"required,min=1,max=100"`
	RecipientPhone string `json:"recipient_phone" binding:"required"`
	Province       string `json:"province" binding:"required,min=1,max=100"`
	City           string `json:"city" binding:"required,min=1,max=100"`
	Street         string `json:"street" binding:"required,min=1,max=200"`
	Landmark       string `json:"landmark" binding:"max=200"`
}

// AddressResponse represents a shipping address in API responses
type AddressResponse struct {
	ID             uuid.UUID `json:"id"`
	RecipientName  string    `json:"recipient_name"`
	RecipientPhone string    `json:"recipient_phone"`
	Province       string    `json:"province"`
	City           string    `json:"city"`
	Street         string    `json:"street"`
	Landmark       string    `json:"landmark,omitempty"`
	IsDefault      bool      `json:"is_default"`
	Line           string    `json:"line"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToAddressResponse converts a domain shipping address to a response DTO
func ToAddressResponse(a *identity.ShippingAddress) AddressResponse {
	return AddressResponse{
		ID:             a.ID,
		RecipientName:  a.RecipientName,
		RecipientPhone: a.RecipientPhone,
		Province:       a.Province,
		City:           a.City,
		Street:         a.Street,
		Landmark:       a.Landmark,
		IsDefault:      a.IsDefault,
		Line:           a.Line(),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAddressResponses converts a slice of domain addresses to response DTOs
func ToAddressResponses(addresses []identity.ShippingAddress) []AddressResponse {
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses
}
