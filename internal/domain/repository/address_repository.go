package repository

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrCustomerAddressNotFound is returned when no customer-address link
	// exists for an address.
	ErrCustomerAddressNotFound = errors.New("customer address link not found")
)

// AddressRepository defines the interface for address-related database
// operations, including the customer-address link that records ownership.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// Delete removes an address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// LinkCustomer creates the customer-address link that marks the customer
	// as the owner of the address.
	LinkCustomer(ctx context.Context, customerID, addressID uuid.UUID) (*entity.CustomerAddress, error)

	// FindLinkByAddress retrieves the customer-address link for an address.
	// Returns ErrCustomerAddressNotFound when the address is not linked.
	FindLinkByAddress(ctx context.Context, addressID uuid.UUID) (*entity.CustomerAddress, error)

	// FindAddressesByCustomer retrieves all addresses linked to a customer,
	// in link insertion order (oldest first).
	FindAddressesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Address, error)
}
