// file: internals/features/complaints/dto/complaint_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/complaints/model"
)

type ComplaintUserDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ComplaintDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`

	Resolution *string    `json:"resolution,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	CreatedBy  *ComplaintUserDTO `json:"created_by,omitempty"`
	AssignedTo *ComplaintUserDTO `json:"assigned_to,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func FromModel(cm m.ComplaintModel) ComplaintDTO {
	out := ComplaintDTO{
		ID:          cm.ComplaintID,
		Title:       cm.ComplaintTitle,
		Description: cm.ComplaintDescription,
		Category:    cm.ComplaintCategory,
		Priority:    cm.ComplaintPriority,
		Status:      cm.ComplaintStatus,
		Resolution:  cm.ComplaintResolution,
		ResolvedAt:  cm.ComplaintResolvedAt,
		CreatedAt:   cm.ComplaintCreatedAt,
		UpdatedAt:   cm.ComplaintUpdatedAt,
	}
	if cm.CreatedBy != nil {
		out.CreatedBy = &ComplaintUserDTO{ID: cm.CreatedBy.UserID, Name: cm.CreatedBy.UserName}
	}
	if cm.AssignedTo != nil {
		out.AssignedTo = &ComplaintUserDTO{ID: cm.AssignedTo.UserID, Name: cm.AssignedTo.UserName}
	}
	return out
}

func FromModelSlice(rows []m.ComplaintModel) []ComplaintDTO {
	out := make([]ComplaintDTO, 0, len(rows))
	for _, cm := range rows {
		out = append(out, FromModel(cm))
	}
	return out
}

type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=30"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
}

// Owners may only touch title/description while the complaint is OPEN; the
// committee fields are ignored for non-committee callers in the controller.
type UpdateComplaintRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=30"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status      *string `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Resolution  *string `json:"resolution" validate:"omitempty,max=2000"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,uuid"`
}

type ComplaintStatsDTO struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}
