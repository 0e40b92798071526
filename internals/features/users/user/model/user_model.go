// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	flatModel "societyhub_backend/internals/features/flats/model"
)

/* ===================== Model ===================== */

type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id"`

	UserName  string  `json:"user_name" gorm:"type:varchar(100);not null;column:user_name"`
	UserEmail string  `json:"user_email" gorm:"type:varchar(120);not null;uniqueIndex;column:user_email"`
	UserPhone *string `json:"user_phone" gorm:"type:varchar(20);column:user_phone"`

	// bcrypt hash, never serialized
	UserPassword string `json:"-" gorm:"type:varchar(100);not null;column:user_password"`

	// ADMIN | COMMITTEE | RESIDENT | TENANT
	UserRole string `json:"user_role" gorm:"type:varchar(20);not null;default:RESIDENT;column:user_role"`

	UserFlatID *uuid.UUID `json:"user_flat_id" gorm:"type:uuid;column:user_flat_id"`

	UserIsActive bool `json:"user_is_active" gorm:"not null;default:true;column:user_is_active"`

	// Timestamps
	UserCreatedAt time.Time      `json:"user_created_at" gorm:"not null;autoCreateTime;column:user_created_at"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"not null;autoUpdateTime;column:user_updated_at"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"index;column:user_deleted_at"`

	/* ========== Relations (optional) ========== */
	Flat *flatModel.FlatModel `json:"flat,omitempty" gorm:"foreignKey:UserFlatID;references:FlatID"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
