package entity

import (
	"github.com/google/uuid"
)

// Item is a single orderable menu entry. The same item can appear in multiple
// restaurants and categories.
type Item struct {
	ID   uuid.UUID // The Global Unique Identifier (GUID) for the item.
	Name string    // The item's display name.
}
