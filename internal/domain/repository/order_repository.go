package repository

import (
	"context"

	"tiffin/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines read-only access to historical orders. Order
// placement itself lives in a separate flow; analytics only ever reads.
type OrderRepository interface {
	// OrdersByRestaurant retrieves every order placed at a restaurant.
	OrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error)

	// LineItemsByOrder retrieves every line item of an order.
	LineItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
}
