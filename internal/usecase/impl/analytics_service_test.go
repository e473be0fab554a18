package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	mockRepo "tiffin/internal/mocks/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service     usecase.AnalyticsUsecase
	orderRepo   *mockRepo.MockOrderRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewAnalyticsService(orderRepo, catalogRepo, newDiscardLogger())

	return analyticsServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
	}
}

func TestAnalyticsService_PopularItems_DescendingIdentifierOrder(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Spice Route"}

	// Fixed IDs with a known lexicographic order.
	lowID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	midID := uuid.MustParse("55555555-5555-5555-5555-555555555555")
	highID := uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

	orderA := uuid.New()
	orderB := uuid.New()

	fx.orderRepo.EXPECT().OrdersByRestaurant(ctx, restaurant.ID).Return([]*entity.Order{
		{ID: orderA, RestaurantID: restaurant.ID},
		{ID: orderB, RestaurantID: restaurant.ID},
	}, nil)

	// lowID appears three times, highID once. The ranking still comes back
	// descending by identifier, so highID leads despite the lower count.
	fx.orderRepo.EXPECT().LineItemsByOrder(ctx, orderA).Return([]*entity.OrderItem{
		{OrderID: orderA, ItemID: lowID, Quantity: 2},
		{OrderID: orderA, ItemID: lowID, Quantity: 1},
		{OrderID: orderA, ItemID: midID, Quantity: 1},
	}, nil)
	fx.orderRepo.EXPECT().LineItemsByOrder(ctx, orderB).Return([]*entity.OrderItem{
		{OrderID: orderB, ItemID: lowID, Quantity: 1},
		{OrderID: orderB, ItemID: highID, Quantity: 1},
	}, nil)

	fx.catalogRepo.EXPECT().ItemByID(ctx, highID).Return(&entity.Item{ID: highID, Name: "samosa"}, nil)
	fx.catalogRepo.EXPECT().ItemByID(ctx, midID).Return(&entity.Item{ID: midID, Name: "chai"}, nil)
	fx.catalogRepo.EXPECT().ItemByID(ctx, lowID).Return(&entity.Item{ID: lowID, Name: "biryani"}, nil)

	items, err := fx.service.PopularItems(ctx, restaurant)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, highID, items[0].ID)
	assert.Equal(t, midID, items[1].ID)
	assert.Equal(t, lowID, items[2].ID)
}

func TestAnalyticsService_PopularItems_DuplicateLineItemsCountOnce(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Chai Point"}

	itemID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().OrdersByRestaurant(ctx, restaurant.ID).Return([]*entity.Order{
		{ID: orderID, RestaurantID: restaurant.ID},
	}, nil)
	fx.orderRepo.EXPECT().LineItemsByOrder(ctx, orderID).Return([]*entity.OrderItem{
		{OrderID: orderID, ItemID: itemID, Quantity: 4},
		{OrderID: orderID, ItemID: itemID, Quantity: 1},
	}, nil)
	fx.catalogRepo.EXPECT().ItemByID(ctx, itemID).Return(&entity.Item{ID: itemID, Name: "chai"}, nil)

	items, err := fx.service.PopularItems(ctx, restaurant)

	require.NoError(t, err)
	// Distinct items, not line-item occurrences.
	require.Len(t, items, 1)
	assert.Equal(t, itemID, items[0].ID)
}

func TestAnalyticsService_PopularItems_NoOrders(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Dosa Corner"}

	fx.orderRepo.EXPECT().OrdersByRestaurant(ctx, restaurant.ID).Return([]*entity.Order{}, nil)

	items, err := fx.service.PopularItems(ctx, restaurant)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnalyticsService_PopularItems_NilRestaurant(t *testing.T) {
	fx := createTestAnalyticsService(t)

	items, err := fx.service.PopularItems(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestAnalyticsService_PopularItems_LineItemLookupFailure(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Spice Route"}
	orderID := uuid.New()

	fx.orderRepo.EXPECT().OrdersByRestaurant(ctx, restaurant.ID).Return([]*entity.Order{
		{ID: orderID, RestaurantID: restaurant.ID},
	}, nil)
	fx.orderRepo.EXPECT().LineItemsByOrder(ctx, orderID).Return(nil, assert.AnError)

	items, err := fx.service.PopularItems(ctx, restaurant)

	require.Error(t, err)
	assert.Nil(t, items)
	assert.ErrorIs(t, err, assert.AnError)
}
