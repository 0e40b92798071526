// file: internals/features/complaints/model/complaint_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "societyhub_backend/internals/features/users/user/model"
)

const (
	ComplaintStatusOpen       = "OPEN"
	ComplaintStatusInProgress = "IN_PROGRESS"
	ComplaintStatusResolved   = "RESOLVED"
	ComplaintStatusClosed     = "CLOSED"
)

const (
	ComplaintPriorityLow    = "LOW"
	ComplaintPriorityMedium = "MEDIUM"
	ComplaintPriorityHigh   = "HIGH"
	ComplaintPriorityUrgent = "URGENT"
)

type ComplaintModel struct {
	ComplaintID uuid.UUID `json:"complaint_id" gorm:"type:uuid;primaryKey;column:complaint_id"`

	ComplaintTitle       string `json:"complaint_title" gorm:"type:varchar(200);not null;column:complaint_title"`
	ComplaintDescription string `json:"complaint_description" gorm:"type:text;not null;column:complaint_description"`
	ComplaintCategory    string `json:"complaint_category" gorm:"type:varchar(30);not null;column:complaint_category"`
	ComplaintPriority    string `json:"complaint_priority" gorm:"type:varchar(10);not null;default:MEDIUM;column:complaint_priority"`
	ComplaintStatus      string `json:"complaint_status" gorm:"type:varchar(20);not null;default:OPEN;index;column:complaint_status"`

	ComplaintResolution *string    `json:"complaint_resolution" gorm:"type:text;column:complaint_resolution"`
	ComplaintResolvedAt *time.Time `json:"complaint_resolved_at" gorm:"column:complaint_resolved_at"`

	ComplaintAssignedToID *uuid.UUID `json:"complaint_assigned_to_id" gorm:"type:uuid;column:complaint_assigned_to_id"`
	ComplaintCreatedByID  uuid.UUID  `json:"complaint_created_by_id" gorm:"type:uuid;not null;index;column:complaint_created_by_id"`

	ComplaintCreatedAt time.Time      `json:"complaint_created_at" gorm:"not null;autoCreateTime;column:complaint_created_at"`
	ComplaintUpdatedAt time.Time      `json:"complaint_updated_at" gorm:"not null;autoUpdateTime;column:complaint_updated_at"`
	ComplaintDeletedAt gorm.DeletedAt `json:"complaint_deleted_at,omitempty" gorm:"index;column:complaint_deleted_at"`

	CreatedBy  *userModel.UserModel `json:"created_by,omitempty" gorm:"foreignKey:ComplaintCreatedByID;references:UserID"`
	AssignedTo *userModel.UserModel `json:"assigned_to,omitempty" gorm:"foreignKey:ComplaintAssignedToID;references:UserID"`
}

func (ComplaintModel) TableName() string { return "complaints" }

func (m *ComplaintModel) BeforeCreate(tx *gorm.DB) error {
	if m.ComplaintID == uuid.Nil {
		m.ComplaintID = uuid.New()
	}
	return nil
}
