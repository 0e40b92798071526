// file: internals/features/users/auth/model/password_reset_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "societyhub_backend/internals/features/users/user/model"
)

// PasswordResetToken is issued by bulk import (and forgot-password) so new
// residents can set their own password. Single use, 7-day expiry.
type PasswordResetToken struct {
	PasswordResetTokenID uuid.UUID `json:"password_reset_token_id" gorm:"type:uuid;primaryKey;column:password_reset_token_id"`

	PasswordResetToken  string    `json:"-" gorm:"type:varchar(64);not null;uniqueIndex;column:password_reset_token"`
	PasswordResetUserID uuid.UUID `json:"password_reset_user_id" gorm:"type:uuid;not null;column:password_reset_user_id"`

	PasswordResetExpiresAt time.Time `json:"password_reset_expires_at" gorm:"not null;column:password_reset_expires_at"`
	PasswordResetUsed      bool      `json:"password_reset_used" gorm:"not null;default:false;column:password_reset_used"`

	PasswordResetCreatedAt time.Time `json:"password_reset_created_at" gorm:"not null;autoCreateTime;column:password_reset_created_at"`

	User *userModel.UserModel `json:"user,omitempty" gorm:"foreignKey:PasswordResetUserID;references:UserID"`
}

func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

func (m *PasswordResetToken) BeforeCreate(tx *gorm.DB) error {
	if m.PasswordResetTokenID == uuid.Nil {
		m.PasswordResetTokenID = uuid.New()
	}
	return nil
}
