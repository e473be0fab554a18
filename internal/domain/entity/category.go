package entity

import (
	"github.com/google/uuid"
)

// Category groups items into a menu section, e.g., "Starters" or "Desserts".
type Category struct {
	ID    uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name  string    // The category's display name.
	Items []*Item   // The items belonging to this category.
}
