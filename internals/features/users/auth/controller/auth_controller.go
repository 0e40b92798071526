// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"societyhub_backend/internals/configs"
	"societyhub_backend/internals/constants"
	flatModel "societyhub_backend/internals/features/flats/model"
	"societyhub_backend/internals/features/users/auth/dto"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
	helper "societyhub_backend/internals/helpers"
)

const tokenTTL = 7 * 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func signToken(u userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": u.UserID.String(),
		"role":    u.UserRole,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	if u.UserFlatID != nil {
		claims["flat_id"] = u.UserFlatID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

/* ===================== Register ===================== */

// POST /api/auth/register
//
// First registration for a flat creates the flat row; later registrations
// attach to it. Everyone starts as RESIDENT, admins promote afterwards.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	req.FlatNumber = strings.ToUpper(strings.TrimSpace(req.FlatNumber))
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	db := ctl.DB.WithContext(c.Context())

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] failed to check email:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] failed to hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	var user userModel.UserModel
	var flat flatModel.FlatModel
	txErr := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("flat_number = ?", req.FlatNumber).First(&flat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			flat = flatModel.FlatModel{FlatNumber: req.FlatNumber}
			err = tx.Create(&flat).Error
		}
		if err != nil {
			return err
		}

		user = userModel.UserModel{
			UserName:     req.Name,
			UserEmail:    req.Email,
			UserPhone:    req.Phone,
			UserPassword: string(hash),
			UserRole:     constants.RoleResident,
			UserFlatID:   &flat.FlatID,
			UserIsActive: true,
		}
		return tx.Create(&user).Error
	})
	if txErr != nil {
		log.Println("[ERROR] failed to register user:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}
	user.Flat = &flat

	return helper.JsonCreated(c, "Registration successful", dto.AuthUserFromModel(user))
}

/* ===================== Login ===================== */

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Flat").
		Where("user_email = ?", req.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] failed to look up user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := signToken(user)
	if err != nil {
		log.Println("[ERROR] failed to sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.AuthUserFromModel(user),
	})
}

/* ===================== Session ===================== */

// GET /api/auth/me (authenticated)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Flat").
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "This account has been deactivated")
	}

	return helper.JsonOK(c, "ok", dto.AuthUserFromModel(user))
}

// POST /api/auth/change-password (authenticated)
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", string(hash)).Error; err != nil {
		log.Println("[ERROR] failed to change password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}

	return helper.JsonOK(c, "Password changed", nil)
}

// GET /api/auth/validate-token?token=
//
// Pre-flight for the reset form. Always answers 200; the outcome is in the
// payload so the client can show a reason without branching on status codes.
func (ctl *AuthController) ValidateToken(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("token"))
	if raw == "" {
		return helper.JsonOK(c, "ok", fiber.Map{"valid": false, "reason": "Token is required"})
	}

	var reset authModel.PasswordResetToken
	err := ctl.DB.WithContext(c.Context()).
		Where("password_reset_token = ?", raw).
		First(&reset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "ok", fiber.Map{"valid": false, "reason": "Invalid token"})
	}
	if err != nil {
		log.Println("[ERROR] failed to look up reset token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to validate token")
	}

	switch {
	case reset.PasswordResetUsed:
		return helper.JsonOK(c, "ok", fiber.Map{"valid": false, "reason": "Token has already been used"})
	case time.Now().After(reset.PasswordResetExpiresAt):
		return helper.JsonOK(c, "ok", fiber.Map{"valid": false, "reason": "Token has expired"})
	}
	return helper.JsonOK(c, "ok", fiber.Map{"valid": true})
}

// POST /api/auth/reset-password
//
// Consumes a single-use token issued by bulk import or forgot-password.
func (ctl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var reset authModel.PasswordResetToken
		err := tx.Where(
			"password_reset_token = ? AND password_reset_used = ? AND password_reset_expires_at > ?",
			req.Token, false, time.Now(),
		).First(&reset).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired reset token")
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", reset.PasswordResetUserID).
			Update("user_password", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&authModel.PasswordResetToken{}).
			Where("password_reset_token_id = ?", reset.PasswordResetTokenID).
			Update("password_reset_used", true).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] failed to reset password:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset password")
	}

	return helper.JsonOK(c, "Password reset successful", nil)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Logged out", nil)
}
