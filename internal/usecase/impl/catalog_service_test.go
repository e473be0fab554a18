package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalogRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ItemsByCategoryInRestaurant_Intersection(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	categoryID := uuid.New()

	shared1 := &entity.Item{ID: uuid.New(), Name: "samosa"}
	shared2 := &entity.Item{ID: uuid.New(), Name: "chai"}
	restaurantOnly := &entity.Item{ID: uuid.New(), Name: "biryani"}
	categoryOnly := &entity.Item{ID: uuid.New(), Name: "pakora"}

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).Return(&entity.Restaurant{
		ID:    restaurantID,
		Items: []*entity.Item{shared1, restaurantOnly, shared2},
	}, nil)
	fx.catalogRepo.EXPECT().CategoryByID(ctx, categoryID).Return(&entity.Category{
		ID:    categoryID,
		Items: []*entity.Item{categoryOnly, shared2, shared1},
	}, nil)

	items, err := fx.service.ItemsByCategoryInRestaurant(ctx, restaurantID, categoryID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	// Only the shared items survive, ordered by name.
	assert.Equal(t, "chai", items[0].Name)
	assert.Equal(t, "samosa", items[1].Name)
}

func TestCatalogService_ItemsByCategoryInRestaurant_NameSortIsCaseSensitive(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	categoryID := uuid.New()

	upper := &entity.Item{ID: uuid.New(), Name: "Zucchini Fries"}
	lower := &entity.Item{ID: uuid.New(), Name: "aloo tikki"}

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).Return(&entity.Restaurant{
		ID:    restaurantID,
		Items: []*entity.Item{lower, upper},
	}, nil)
	fx.catalogRepo.EXPECT().CategoryByID(ctx, categoryID).Return(&entity.Category{
		ID:    categoryID,
		Items: []*entity.Item{upper, lower},
	}, nil)

	items, err := fx.service.ItemsByCategoryInRestaurant(ctx, restaurantID, categoryID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	// Byte order puts uppercase names before lowercase ones.
	assert.Equal(t, "Zucchini Fries", items[0].Name)
	assert.Equal(t, "aloo tikki", items[1].Name)
}

func TestCatalogService_ItemsByCategoryInRestaurant_EmptyIntersection(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	categoryID := uuid.New()

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).Return(&entity.Restaurant{
		ID:    restaurantID,
		Items: []*entity.Item{{ID: uuid.New(), Name: "dosa"}},
	}, nil)
	fx.catalogRepo.EXPECT().CategoryByID(ctx, categoryID).Return(&entity.Category{
		ID:    categoryID,
		Items: []*entity.Item{{ID: uuid.New(), Name: "idli"}},
	}, nil)

	items, err := fx.service.ItemsByCategoryInRestaurant(ctx, restaurantID, categoryID)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_ItemsByCategoryInRestaurant_RestaurantNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	items, err := fx.service.ItemsByCategoryInRestaurant(ctx, restaurantID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestCatalogService_ItemsByCategoryInRestaurant_CategoryNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	categoryID := uuid.New()

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	fx.catalogRepo.EXPECT().CategoryByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	items, err := fx.service.ItemsByCategoryInRestaurant(ctx, restaurantID, categoryID)

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ItemByID(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()
	item := &entity.Item{ID: itemID, Name: "masala dosa"}

	fx.catalogRepo.EXPECT().ItemByID(ctx, itemID).Return(item, nil)

	got, err := fx.service.ItemByID(ctx, itemID)

	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestCatalogService_ItemByID_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.catalogRepo.EXPECT().ItemByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

	got, err := fx.service.ItemByID(ctx, itemID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestCatalogService_RestaurantByID_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.catalogRepo.EXPECT().RestaurantByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	got, err := fx.service.RestaurantByID(ctx, restaurantID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestCatalogService_RestaurantsByRating(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurants := []*entity.Restaurant{
		{ID: uuid.New(), Name: "Spice Route", CustomerRating: 4.8},
		{ID: uuid.New(), Name: "Chai Point", CustomerRating: 4.1},
		{ID: uuid.New(), Name: "Dosa Corner", CustomerRating: 3.9},
	}

	fx.catalogRepo.EXPECT().AllRestaurantsByRating(ctx).Return(restaurants, nil)

	got, err := fx.service.RestaurantsByRating(ctx)

	require.NoError(t, err)
	assert.Equal(t, restaurants, got)
}

func TestCatalogService_RestaurantsByName(t *testing.T) {
	restaurants := []*entity.Restaurant{
		{ID: uuid.New(), Name: "Corner Cafe", CustomerRating: 4.5},
		{ID: uuid.New(), Name: "Dosa Corner", CustomerRating: 4.2},
		{ID: uuid.New(), Name: "CAFE Mocha", CustomerRating: 3.8},
	}

	tests := []struct {
		name      string
		query     string
		wantNames []string
	}{
		{
			name:      "case-insensitive substring match",
			query:     "cafe",
			wantNames: []string{"Corner Cafe", "CAFE Mocha"},
		},
		{
			name:      "rating order preserved",
			query:     "corner",
			wantNames: []string{"Corner Cafe", "Dosa Corner"},
		},
		{
			name:      "no match",
			query:     "sushi",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)

			ctx := context.Background()
			fx.catalogRepo.EXPECT().AllRestaurantsByRating(ctx).Return(restaurants, nil)

			got, err := fx.service.RestaurantsByName(ctx, tt.query)

			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, restaurant := range got {
				names = append(names, restaurant.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestCatalogService_RestaurantsByName_EmptyQuery(t *testing.T) {
	fx := createTestCatalogService(t)

	got, err := fx.service.RestaurantsByName(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNameEmpty)
}
