package identity

import (
	"context"

	"github.com/furnimart/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// AddressService manages a user's shipping addresses
type AddressService struct {
	addressRepo identity.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo identity.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

// Create adds a shipping address to the caller's book
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req CreateAddressRequest) (*AddressResponse, error) {
	address, err := identity.NewShippingAddress(userID, req.RecipientName, req.RecipientPhone, req.Province, req.City, req.Street)
	if err != nil {
		return nil, err
	}
	address.Landmark = req.Landmark

	if req.IsDefault {
		if err := s.addressRepo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
		address.SetDefault(true)
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// List retrieves the caller's addresses, default first
func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(addresses), nil
}

// Get retrieves one of the caller's addresses
func (s *AddressService) Get(ctx context.Context, userID, addressID uuid.UUID) (*AddressResponse, error) {
	address, err := s.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	response := ToAddressResponse(address)
	return &response, nil
}

// Update changes one of the caller's addresses
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.RecipientName, req.RecipientPhone, req.Province, req.City, req.Street, req.Landmark); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// SetDefault marks one of the caller's addresses as the default
func (s *AddressService) SetDefault(ctx context.Context, userID, addressID uuid.UUID) (*AddressResponse, error) {
	address, err := s.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.ClearDefault(ctx, userID); err != nil {
		return nil, err
	}

	address.SetDefault(true)
	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Delete removes one of the caller's addresses. Orders keep their plain-text
// address snapshots regardless.
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address.ID)
}

// ownedAddress loads an address and hides other users' addresses
func (s *AddressService) ownedAddress(ctx context.Context, userID, addressID uuid.UUID) (*identity.ShippingAddress, error) {
	address, err := s.addressRepo.FindByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if !address.BelongsTo(userID) {
		return nil, identity.ErrAddressNotFound
	}
	return address, nil
}
