package usecase

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for menu and restaurant lookups.
type CatalogUsecase interface {
	// ItemsByCategoryInRestaurant returns the items present in both the
	// restaurant's and the category's item sets, sorted ascending by name.
	ItemsByCategoryInRestaurant(ctx context.Context, restaurantID, categoryID uuid.UUID) ([]*entity.Item, error)

	// ItemByID resolves a single item by its identifier.
	ItemByID(ctx context.Context, itemID uuid.UUID) (*entity.Item, error)

	// RestaurantByID resolves a single restaurant by its identifier.
	RestaurantByID(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, error)

	// RestaurantsByRating returns all restaurants, highest rated first.
	RestaurantsByRating(ctx context.Context) ([]*entity.Restaurant, error)

	// RestaurantsByName returns restaurants whose name contains the query,
	// case-insensitively, preserving the rating order.
	RestaurantsByName(ctx context.Context, query string) ([]*entity.Restaurant, error)
}
