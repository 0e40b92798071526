// file: internals/features/amenities/amenity/controller/amenity_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "societyhub_backend/internals/features/amenities/amenity/dto"
	m "societyhub_backend/internals/features/amenities/amenity/model"
	svc "societyhub_backend/internals/features/amenities/amenity/service"
	bookingModel "societyhub_backend/internals/features/amenities/booking/model"
	helper "societyhub_backend/internals/helpers"
)

type AmenityController struct {
	DB *gorm.DB
}

func NewAmenityController(db *gorm.DB) *AmenityController {
	return &AmenityController{DB: db}
}

// GET /api/amenities?category=&active_only=
func (ctl *AmenityController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&m.AmenityModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != "all" {
		tx = tx.Where("amenity_category = ?", cat)
	}

	// active_only defaults to true
	if c.Query("active_only", "true") != "false" {
		tx = tx.Where("amenity_is_active = ?", true)
	}

	var rows []m.AmenityModel
	if err := tx.Order("amenity_name ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list amenities:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch amenities")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), nil)
}

// GET /api/amenities/:id
func (ctl *AmenityController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amenity ID")
	}

	var amenity m.AmenityModel
	if err := ctl.DB.WithContext(c.Context()).First(&amenity, "amenity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Amenity not found")
		}
		log.Println("[ERROR] failed to fetch amenity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch amenity")
	}

	var bookingsCount int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&bookingModel.AmenityBookingModel{}).
		Where("amenity_booking_amenity_id = ?", id).
		Count(&bookingsCount).Error; err != nil {
		log.Println("[ERROR] failed to count bookings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch amenity")
	}

	out := dto.FromModel(amenity)
	out.BookingsCount = &bookingsCount
	return helper.JsonOK(c, "ok", out)
}

// POST /api/amenities (COMMITTEE/ADMIN)
func (ctl *AmenityController) Create(c *fiber.Ctx) error {
	var req dto.CreateAmenityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.AmenityModel{}).
		Where("amenity_name = ?", req.Name).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] failed to check amenity name:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create amenity")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "An amenity with this name already exists")
	}

	amenity := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&amenity).Error; err != nil {
		log.Println("[ERROR] failed to create amenity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create amenity")
	}

	return helper.JsonCreated(c, "Amenity created", dto.FromModel(amenity))
}

// PUT /api/amenities/:id (COMMITTEE/ADMIN)
func (ctl *AmenityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amenity ID")
	}

	var amenity m.AmenityModel
	if err := ctl.DB.WithContext(c.Context()).First(&amenity, "amenity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Amenity not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update amenity")
	}

	var req dto.UpdateAmenityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
		if name != amenity.AmenityName {
			var count int64
			if err := ctl.DB.WithContext(c.Context()).
				Model(&m.AmenityModel{}).
				Where("amenity_name = ? AND amenity_id <> ?", name, id).
				Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update amenity")
			}
			if count > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "An amenity with this name already exists")
			}
		}
	}

	req.ApplyToModel(&amenity)
	if err := ctl.DB.WithContext(c.Context()).Save(&amenity).Error; err != nil {
		log.Println("[ERROR] failed to update amenity:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update amenity")
	}

	return helper.JsonUpdated(c, "Amenity updated", dto.FromModel(amenity))
}

// DELETE /api/amenities/:id (ADMIN). Lifecycle flag only, bookings keep
// their reference.
func (ctl *AmenityController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amenity ID")
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.AmenityModel{}).
		Where("amenity_id = ?", id).
		Update("amenity_is_active", false)
	if res.Error != nil {
		log.Println("[ERROR] failed to deactivate amenity:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete amenity")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Amenity not found")
	}

	return helper.JsonDeleted(c, "Amenity deactivated", fiber.Map{"id": id})
}

// GET /api/amenities/:id/availability?date=YYYY-MM-DD
func (ctl *AmenityController) Availability(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amenity ID")
	}

	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date parameter is required (YYYY-MM-DD)")
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	out, err := svc.CheckAvailability(ctl.DB.WithContext(c.Context()), id, date, dateStr)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] failed to check availability:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check availability")
	}

	return helper.JsonOK(c, "ok", out)
}
