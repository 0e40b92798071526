// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	flatModel "societyhub_backend/internals/features/flats/model"
	"societyhub_backend/internals/features/users/user/dto"
	m "societyhub_backend/internals/features/users/user/model"
	helper "societyhub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users?role=&is_active=&search=&page=&per_page= (ADMIN)
func (ctl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.UserModel{})

	if role := strings.TrimSpace(c.Query("role")); role != "" && role != "all" {
		tx = tx.Where("user_role = ?", strings.ToUpper(role))
	}
	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "is_active must be true or false")
		}
		tx = tx.Where("user_is_active = ?", active)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(user_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var rows []m.UserModel
	if err := tx.
		Preload("Flat").
		Order("user_name ASC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/users/:id (ADMIN)
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Flat").
		First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(user))
}

// POST /api/users (ADMIN)
func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	db := ctl.DB.WithContext(c.Context())

	var count int64
	if err := db.Model(&m.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "User with this email already exists")
	}

	var flatID *uuid.UUID
	if req.FlatID != nil {
		parsed, err := uuid.Parse(*req.FlatID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat ID")
		}
		var flatCount int64
		if err := db.Model(&flatModel.FlatModel{}).
			Where("flat_id = ?", parsed).
			Count(&flatCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
		if flatCount == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Flat not found")
		}
		flatID = &parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := m.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPhone:    req.Phone,
		UserPassword: string(hash),
		UserRole:     req.Role,
		UserFlatID:   flatID,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] failed to create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.FromModel(user))
}

// PUT /api/users/:id (ADMIN)
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.Name != nil {
		user.UserName = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.UserPhone = req.Phone
	}
	if req.Role != nil {
		user.UserRole = *req.Role
	}
	if req.FlatID != nil {
		parsed, err := uuid.Parse(*req.FlatID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat ID")
		}
		user.UserFlatID = &parsed
	}
	if req.IsActive != nil {
		user.UserIsActive = *req.IsActive
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Println("[ERROR] failed to update user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.FromModel(user))
}

// DELETE /api/users/:id (ADMIN). Deactivates only, account history stays.
func (ctl *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if actorID == id {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot deactivate your own account")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", false)
	if res.Error != nil {
		log.Println("[ERROR] failed to deactivate user:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deactivated", fiber.Map{"id": id})
}
