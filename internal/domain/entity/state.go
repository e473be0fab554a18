// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// State represents a geographic state an address belongs to.
type State struct {
	ID   uuid.UUID // The Global Unique Identifier (GUID) for the state.
	Name string    // The state's display name, e.g., "Karnataka".
}
