// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase defines the interface for address-related business operations.
// Every operation receives the already-authenticated acting customer; identity
// resolution belongs to the delivery layer.
type AddressUsecase interface {
	SaveAddress(ctx context.Context, customerID uuid.UUID, input *SaveAddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)
	GetOwnedAddress(ctx context.Context, addressID string, customerID uuid.UUID) (*entity.Address, error)
	DeleteAddress(ctx context.Context, addressID string, customerID uuid.UUID) (*entity.Address, error)
	ListStates(ctx context.Context) ([]*entity.State, error)
}

// --- Input DTOs ---

// SaveAddressInput defines the data required to save a new address.
// The binding-time tags only bound field sizes. Field presence, pincode
// format and state resolution are checked by the service itself, in a fixed
// order (state first, then empty fields, then pincode), so no required or
// format tags may appear here.
type SaveAddressInput struct {
	FlatBuild string `json:"flat_building_name" validate:"omitempty,max=255"`
	Locality  string `json:"locality" validate:"omitempty,max=255"`
	City      string `json:"city" validate:"omitempty,max=255"`
	Pincode   string `json:"pincode" validate:"omitempty,max=64"`
	StateID   string `json:"state_uuid" validate:"omitempty,max=64"`
}
