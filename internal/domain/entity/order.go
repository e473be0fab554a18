package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a historical order placed at a restaurant. Orders are read-only
// inputs to the analytics layer; their creation belongs to the order
// placement flow.
type Order struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the order.
	CustomerID   uuid.UUID // The customer who placed the order.
	RestaurantID uuid.UUID // The restaurant the order was placed at.
	OrderedAt    time.Time // Timestamp of when the order was placed.
}

// OrderItem is a single line of an order, referencing one item.
type OrderItem struct {
	OrderID  uuid.UUID // The order this line belongs to.
	ItemID   uuid.UUID // The ordered item.
	Quantity int       // How many units were ordered.
	Price    int       // Unit price in the smallest currency unit.
}
