package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
)

// AnalyticsUsecase defines the interface for order-history analytics.
type AnalyticsUsecase interface {
	// PopularItems ranks the items ordered at a restaurant. The result is
	// deterministic for an unchanged order history and applies no cap;
	// callers wanting a top-N slice truncate it themselves.
	PopularItems(ctx context.Context, restaurant *entity.Restaurant) ([]*entity.Item, error)
}
