// file: internals/features/flats/controller/flat_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/flats/dto"
	m "societyhub_backend/internals/features/flats/model"
	helper "societyhub_backend/internals/helpers"
)

type FlatController struct {
	DB *gorm.DB
}

func NewFlatController(db *gorm.DB) *FlatController {
	return &FlatController{DB: db}
}

// GET /api/flats?block=&occupied=&page=&per_page=
func (ctl *FlatController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.FlatModel{})

	if block := strings.TrimSpace(c.Query("block")); block != "" {
		tx = tx.Where("flat_block = ?", strings.ToUpper(block))
	}
	if raw := c.Query("occupied"); raw != "" {
		occupied, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "occupied must be true or false")
		}
		tx = tx.Where("flat_is_occupied = ?", occupied)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count flats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch flats")
	}

	var rows []m.FlatModel
	if err := tx.
		Order("flat_number ASC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list flats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch flats")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/flats/:id
func (ctl *FlatController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	var flat m.FlatModel
	if err := ctl.DB.WithContext(c.Context()).First(&flat, "flat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch flat")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(flat))
}

// POST /api/flats (COMMITTEE/ADMIN)
func (ctl *FlatController) Create(c *fiber.Ctx) error {
	var req dto.CreateFlatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	flat := req.ToModel()

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.FlatModel{}).
		Where("flat_number = ?", flat.FlatNumber).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create flat")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "A flat with this number already exists")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&flat).Error; err != nil {
		log.Println("[ERROR] failed to create flat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create flat")
	}

	return helper.JsonCreated(c, "Flat created", dto.FromModel(flat))
}

// PUT /api/flats/:id (COMMITTEE/ADMIN)
func (ctl *FlatController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	var flat m.FlatModel
	if err := ctl.DB.WithContext(c.Context()).First(&flat, "flat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update flat")
	}

	var req dto.UpdateFlatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.FlatNumber != nil {
		number := strings.ToUpper(strings.TrimSpace(*req.FlatNumber))
		if number != flat.FlatNumber {
			var count int64
			if err := ctl.DB.WithContext(c.Context()).
				Model(&m.FlatModel{}).
				Where("flat_number = ? AND flat_id <> ?", number, id).
				Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update flat")
			}
			if count > 0 {
				return helper.JsonError(c, fiber.StatusBadRequest, "A flat with this number already exists")
			}
		}
	}

	req.ApplyToModel(&flat)
	if err := ctl.DB.WithContext(c.Context()).Save(&flat).Error; err != nil {
		log.Println("[ERROR] failed to update flat:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update flat")
	}

	return helper.JsonUpdated(c, "Flat updated", dto.FromModel(flat))
}

// DELETE /api/flats/:id (ADMIN)
func (ctl *FlatController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.FlatModel{}, "flat_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] failed to delete flat:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete flat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Flat not found")
	}

	return helper.JsonDeleted(c, "Flat deleted", fiber.Map{"id": id})
}
