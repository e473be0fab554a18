package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Analytics reads it, order placement
// writes it.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_item' table, one row per line item. The
// same item can appear on multiple lines of one order.
type OrderItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int       `gorm:"not null"`
	Price    int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_item"
}
