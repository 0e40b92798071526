// file: internals/features/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "societyhub_backend/internals/features/users/user/model"
)

const (
	AnnouncementPriorityLow    = "LOW"
	AnnouncementPriorityNormal = "NORMAL"
	AnnouncementPriorityHigh   = "HIGH"
	AnnouncementPriorityUrgent = "URGENT"
)

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"type:uuid;primaryKey;column:announcement_id"`

	AnnouncementTitle    string  `json:"announcement_title" gorm:"type:varchar(200);not null;column:announcement_title"`
	AnnouncementContent  string  `json:"announcement_content" gorm:"type:text;not null;column:announcement_content"`
	AnnouncementPriority string  `json:"announcement_priority" gorm:"type:varchar(10);not null;default:NORMAL;column:announcement_priority"`
	AnnouncementCategory *string `json:"announcement_category" gorm:"type:varchar(30);column:announcement_category"`

	AnnouncementIsPinned  bool       `json:"announcement_is_pinned" gorm:"not null;default:false;column:announcement_is_pinned"`
	AnnouncementExpiresAt *time.Time `json:"announcement_expires_at" gorm:"column:announcement_expires_at"`

	AnnouncementCreatedByID uuid.UUID `json:"announcement_created_by_id" gorm:"type:uuid;not null;column:announcement_created_by_id"`

	AnnouncementCreatedAt time.Time      `json:"announcement_created_at" gorm:"not null;autoCreateTime;column:announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `json:"announcement_updated_at" gorm:"not null;autoUpdateTime;column:announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `json:"announcement_deleted_at,omitempty" gorm:"index;column:announcement_deleted_at"`

	CreatedBy *userModel.UserModel `json:"created_by,omitempty" gorm:"foreignKey:AnnouncementCreatedByID;references:UserID"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnnouncementID == uuid.Nil {
		m.AnnouncementID = uuid.New()
	}
	return nil
}
