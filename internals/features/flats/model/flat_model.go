// file: internals/features/flats/model/flat_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type FlatModel struct {
	// PK
	FlatID uuid.UUID `json:"flat_id" gorm:"type:uuid;primaryKey;column:flat_id"`

	// Unit identity. Flat numbers are stored uppercased and must be unique.
	FlatNumber string  `json:"flat_number" gorm:"type:varchar(20);not null;uniqueIndex;column:flat_number"`
	FlatBlock  *string `json:"flat_block" gorm:"type:varchar(10);column:flat_block"`
	FlatFloor  *int    `json:"flat_floor" gorm:"type:integer;column:flat_floor"`
	FlatAreaSqft *float64 `json:"flat_area_sqft" gorm:"type:numeric(10,2);column:flat_area_sqft"`

	// Owner contact
	FlatOwnerName  *string `json:"flat_owner_name" gorm:"type:varchar(100);column:flat_owner_name"`
	FlatOwnerPhone *string `json:"flat_owner_phone" gorm:"type:varchar(20);column:flat_owner_phone"`
	FlatOwnerEmail *string `json:"flat_owner_email" gorm:"type:varchar(120);column:flat_owner_email"`

	FlatIsOccupied bool `json:"flat_is_occupied" gorm:"not null;default:false;column:flat_is_occupied"`

	// Timestamps
	FlatCreatedAt time.Time      `json:"flat_created_at" gorm:"not null;autoCreateTime;column:flat_created_at"`
	FlatUpdatedAt time.Time      `json:"flat_updated_at" gorm:"not null;autoUpdateTime;column:flat_updated_at"`
	FlatDeletedAt gorm.DeletedAt `json:"flat_deleted_at,omitempty" gorm:"index;column:flat_deleted_at"`
}

func (FlatModel) TableName() string { return "flats" }

func (m *FlatModel) BeforeCreate(tx *gorm.DB) error {
	if m.FlatID == uuid.Nil {
		m.FlatID = uuid.New()
	}
	return nil
}
