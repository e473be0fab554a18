package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain.CatalogRepository interface.
// The catalog is read-only from the application's point of view; menu
// management happens out of band.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// RestaurantByID retrieves a restaurant with its item set.
func (repo *catalogRepository) RestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// CategoryByID retrieves a category with its item set.
func (repo *catalogRepository) CategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// ItemByID retrieves a single item.
func (repo *catalogRepository) ItemByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// AllRestaurantsByRating retrieves every restaurant, highest rating first.
func (repo *catalogRepository) AllRestaurantsByRating(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel

	err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("customer_rating DESC").
		Find(&restaurantModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:             data.ID,
		Name:           data.Name,
		CustomerRating: data.CustomerRating,
		Items:          toItemDomains(data.Items),
	}
}

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:    data.ID,
		Name:  data.Name,
		Items: toItemDomains(data.Items),
	}
}

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	return &entity.Item{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toItemDomains(data []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(data))
	for _, itemM := range data {
		items = append(items, toItemDomain(itemM))
	}

	return items
}
