package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a customer delivery location.
// Addresses are created and deleted, never updated in place; ownership is
// tracked through a separate CustomerAddress link rather than a back-reference.
type Address struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the address.
	FlatBuild string    // Flat or building number, e.g., "12A".
	Locality  string    // The locality or street, e.g., "MG Road".
	City      string    // The city name.
	Pincode   string    // Six-digit postal code.
	State     *State    // The state this address belongs to.
	CreatedAt time.Time // Timestamp of when this address was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
