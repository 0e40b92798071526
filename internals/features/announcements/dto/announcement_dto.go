// file: internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/announcements/model"
)

type AnnouncementAuthorDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AnnouncementDTO struct {
	ID        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Priority  string                 `json:"priority"`
	Category  *string                `json:"category,omitempty"`
	IsPinned  bool                   `json:"is_pinned"`
	ExpiresAt *time.Time             `json:"expires_at,omitempty"`
	CreatedBy *AnnouncementAuthorDTO `json:"created_by,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func FromModel(a m.AnnouncementModel) AnnouncementDTO {
	out := AnnouncementDTO{
		ID:        a.AnnouncementID,
		Title:     a.AnnouncementTitle,
		Content:   a.AnnouncementContent,
		Priority:  a.AnnouncementPriority,
		Category:  a.AnnouncementCategory,
		IsPinned:  a.AnnouncementIsPinned,
		ExpiresAt: a.AnnouncementExpiresAt,
		CreatedAt: a.AnnouncementCreatedAt,
		UpdatedAt: a.AnnouncementUpdatedAt,
	}
	if a.CreatedBy != nil {
		out.CreatedBy = &AnnouncementAuthorDTO{ID: a.CreatedBy.UserID, Name: a.CreatedBy.UserName}
	}
	return out
}

func FromModelSlice(rows []m.AnnouncementModel) []AnnouncementDTO {
	out := make([]AnnouncementDTO, 0, len(rows))
	for _, a := range rows {
		out = append(out, FromModel(a))
	}
	return out
}

type CreateAnnouncementRequest struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Content   string     `json:"content" validate:"required"`
	Priority  string     `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Category  *string    `json:"category" validate:"omitempty,max=30"`
	IsPinned  *bool      `json:"is_pinned"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type UpdateAnnouncementRequest struct {
	Title     *string    `json:"title" validate:"omitempty,max=200"`
	Content   *string    `json:"content"`
	Priority  *string    `json:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Category  *string    `json:"category" validate:"omitempty,max=30"`
	IsPinned  *bool      `json:"is_pinned"`
	ExpiresAt *time.Time `json:"expires_at"`
}
