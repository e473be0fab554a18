package model

import (
	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table. Items are shared across
// restaurants through the 'restaurant_item' join table.
type RestaurantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	CustomerRating float64   `gorm:"type:decimal(3,1);not null;default:0"`

	Items []*ItemModel `gorm:"many2many:restaurant_item"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// CategoryModel mirrors the 'categories' table. Items are shared across
// categories through the 'category_item' join table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(255);not null"`

	Items []*ItemModel `gorm:"many2many:category_item"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
