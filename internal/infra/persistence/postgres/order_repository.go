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

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// OrdersByRestaurant retrieves every order placed at a restaurant, most
// recent first.
func (repo *orderRepository) OrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("ordered_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by restaurant")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// LineItemsByOrder retrieves every line item of an order.
func (repo *orderRepository) LineItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var lineItemModels []*model.OrderItemModel

	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&lineItemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find line items by order")
	}

	lineItems := make([]*entity.OrderItem, 0, len(lineItemModels))
	for _, lineItemM := range lineItemModels {
		lineItems = append(lineItems, toOrderItemDomain(lineItemM))
	}

	return lineItems, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		RestaurantID: data.RestaurantID,
		OrderedAt:    data.OrderedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		OrderID:  data.OrderID,
		ItemID:   data.ItemID,
		Quantity: data.Quantity,
		Price:    data.Price,
	}
}
