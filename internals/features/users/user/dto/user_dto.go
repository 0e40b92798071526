// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/users/user/model"
)

type UserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone,omitempty"`
	Role       string     `json:"role"`
	FlatID     *uuid.UUID `json:"flat_id,omitempty"`
	FlatNumber *string    `json:"flat_number,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromModel(u m.UserModel) UserDTO {
	out := UserDTO{
		ID:        u.UserID,
		Name:      u.UserName,
		Email:     u.UserEmail,
		Phone:     u.UserPhone,
		Role:      u.UserRole,
		FlatID:    u.UserFlatID,
		IsActive:  u.UserIsActive,
		CreatedAt: u.UserCreatedAt,
	}
	if u.Flat != nil {
		out.FlatNumber = &u.Flat.FlatNumber
	}
	return out
}

func FromModelSlice(rows []m.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for _, u := range rows {
		out = append(out, FromModel(u))
	}
	return out
}

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email,max=120"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Role     string  `json:"role" validate:"required,oneof=ADMIN COMMITTEE RESIDENT TENANT"`
	FlatID   *string `json:"flat_id" validate:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN COMMITTEE RESIDENT TENANT"`
	FlatID   *string `json:"flat_id" validate:"omitempty,uuid"`
	IsActive *bool   `json:"is_active"`
}
