package repository

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog lookups.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")
)

// CatalogRepository defines read-only lookups over the restaurant catalog.
type CatalogRepository interface {
	// RestaurantByID retrieves a restaurant with its item set.
	RestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// CategoryByID retrieves a category with its item set.
	CategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ItemByID retrieves a single item.
	ItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// AllRestaurantsByRating retrieves every restaurant ordered by customer
	// rating, highest first.
	AllRestaurantsByRating(ctx context.Context) ([]*entity.Restaurant, error)
}
