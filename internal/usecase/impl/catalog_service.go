package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ItemsByCategoryInRestaurant computes the intersection of the restaurant's
// and the category's item sets, keyed by item ID, sorted ascending by name.
func (srv *catalogService) ItemsByCategoryInRestaurant(ctx context.Context, restaurantID, categoryID uuid.UUID) ([]*entity.Item, error) {
	restaurant, err := srv.catalogRepo.RestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	category, err := srv.catalogRepo.CategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	inCategory := make(map[uuid.UUID]struct{}, len(category.Items))
	for _, item := range category.Items {
		inCategory[item.ID] = struct{}{}
	}

	matched := make([]*entity.Item, 0, len(restaurant.Items))
	for _, item := range restaurant.Items {
		if _, ok := inCategory[item.ID]; ok {
			matched = append(matched, item)
		}
	}

	// Deterministic regardless of storage return order. Case-sensitive.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	return matched, nil
}

// ItemByID resolves a single item by its identifier.
func (srv *catalogService) ItemByID(ctx context.Context, itemID uuid.UUID) (*entity.Item, error) {
	item, err := srv.catalogRepo.ItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// RestaurantByID resolves a single restaurant by its identifier.
func (srv *catalogService) RestaurantByID(ctx context.Context, restaurantID uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.catalogRepo.RestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// RestaurantsByRating returns all restaurants in the storage's rating order.
func (srv *catalogService) RestaurantsByRating(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := srv.catalogRepo.AllRestaurantsByRating(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	return restaurants, nil
}

// RestaurantsByName filters the rating-ordered listing by a case-insensitive
// substring match on the restaurant name.
func (srv *catalogService) RestaurantsByName(ctx context.Context, query string) ([]*entity.Restaurant, error) {
	if query == "" {
		return nil, errors.Wrap(domainerrors.ErrRestaurantNameEmpty, "search query is empty")
	}

	restaurants, err := srv.catalogRepo.AllRestaurantsByRating(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	needle := strings.ToLower(query)
	matched := make([]*entity.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name), needle) {
			matched = append(matched, restaurant)
		}
	}

	return matched, nil
}
