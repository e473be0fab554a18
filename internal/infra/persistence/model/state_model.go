// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"github.com/google/uuid"
)

// StateModel mirrors the 'states' table. States are reference data seeded by
// migration; the application never writes them.
type StateModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(100);not null;unique"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}
