package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerAddress is the join record linking a customer to an address.
// It is created in the same transaction as the address it points to, and it is
// the single source of truth for address ownership: authorization walks this
// link backward from the address to find the owning customer.
type CustomerAddress struct {
	CustomerID uuid.UUID // The owning customer's GUID.
	AddressID  uuid.UUID // The linked address's GUID.
	CreatedAt  time.Time // Timestamp of when the link was created.
}
