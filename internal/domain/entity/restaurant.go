package entity

import (
	"github.com/google/uuid"
)

// Restaurant represents a restaurant in the catalog, together with the items
// it serves. Items are shared across restaurants and categories.
type Restaurant struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the restaurant.
	Name           string    // The restaurant's display name.
	CustomerRating float64   // Average customer rating, used for the default listing order.
	Items          []*Item   // The items this restaurant serves.
}
