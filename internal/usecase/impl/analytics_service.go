package impl

import (
	"context"
	"log/slog"
	"sort"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// PopularItems collects every line item of every order placed at the
// restaurant and counts occurrences per item ID.
//
// The ranking sorts the distinct item IDs ascending and reverses the
// sequence, so the result is descending by identifier string. The counts are
// collected but never act as a sort key; callers depend on this ordering.
func (srv *analyticsService) PopularItems(ctx context.Context, restaurant *entity.Restaurant) ([]*entity.Item, error) {
	if restaurant == nil {
		return nil, errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant is nil")
	}

	srv.logger.Debug("Ranking popular items", "restaurantID", restaurant.ID)

	orders, err := srv.orderRepo.OrdersByRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by restaurant")
	}

	counts := make(map[uuid.UUID]int)
	for _, order := range orders {
		lineItems, err := srv.orderRepo.LineItemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find line items by order")
		}
		for _, lineItem := range lineItems {
			counts[lineItem.ItemID]++
		}
	}

	ranked := make([]uuid.UUID, 0, len(counts))
	for id := range counts {
		ranked = append(ranked, id)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].String() < ranked[j].String()
	})
	// Reverse the ascending-ID sequence.
	for i, j := 0, len(ranked)-1; i < j; i, j = i+1, j-1 {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	}

	items := make([]*entity.Item, 0, len(ranked))
	for _, id := range ranked {
		item, err := srv.catalogRepo.ItemByID(ctx, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve ranked item")
		}
		items = append(items, item)
	}

	return items, nil
}
