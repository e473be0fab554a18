// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStateNotFound is a domain-specific error returned when a state is not found.
var ErrStateNotFound = errors.New("state not found")

// StateRepository defines the standard operations for state persistence.
type StateRepository interface {
	// FindByID retrieves a single state by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.State, error)

	// FindAll retrieves every state. An empty result is not an error.
	FindAll(ctx context.Context) ([]*entity.State, error)
}
