// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	userModel "societyhub_backend/internals/features/users/user/model"
)

/* ===================== Requests ===================== */

type RegisterRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email,max=120"`
	Password   string  `json:"password" validate:"required,min=8,max=72"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	FlatNumber string  `json:"flat_number" validate:"required,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required,max=64"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

/* ===================== Responses ===================== */

type AuthUserDTO struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone,omitempty"`
	Role       string     `json:"role"`
	FlatID     *uuid.UUID `json:"flat_id,omitempty"`
	FlatNumber *string    `json:"flat_number,omitempty"`
	IsActive   bool       `json:"is_active"`
}

func AuthUserFromModel(u userModel.UserModel) AuthUserDTO {
	out := AuthUserDTO{
		ID:       u.UserID,
		Name:     u.UserName,
		Email:    u.UserEmail,
		Phone:    u.UserPhone,
		Role:     u.UserRole,
		FlatID:   u.UserFlatID,
		IsActive: u.UserIsActive,
	}
	if u.Flat != nil {
		out.FlatNumber = &u.Flat.FlatNumber
	}
	return out
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}
