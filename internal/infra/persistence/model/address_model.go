package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FlatBuild string    `gorm:"type:varchar(255);not null"`
	Locality  string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	Pincode   string    `gorm:"type:varchar(30);not null"`
	StateID   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	State *StateModel `gorm:"foreignKey:StateID"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// CustomerAddressModel mirrors the 'customer_address' join table. One row per
// address; the row is the single record of who owns the address.
type CustomerAddressModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	AddressID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerAddressModel) TableName() string {
	return "customer_address"
}
