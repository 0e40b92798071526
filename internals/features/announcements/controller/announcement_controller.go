// file: internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/announcements/dto"
	m "societyhub_backend/internals/features/announcements/model"
	helper "societyhub_backend/internals/helpers"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// priorityRank orders URGENT first in the notice board listing.
const priorityRank = `CASE announcement_priority
	WHEN 'URGENT' THEN 0
	WHEN 'HIGH' THEN 1
	WHEN 'NORMAL' THEN 2
	ELSE 3 END`

// GET /api/announcements?category=&priority=&include_expired=&page=&per_page=
func (ctl *AnnouncementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.AnnouncementModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != "all" {
		tx = tx.Where("announcement_category = ?", cat)
	}
	if prio := strings.TrimSpace(c.Query("priority")); prio != "" && prio != "all" {
		tx = tx.Where("announcement_priority = ?", strings.ToUpper(prio))
	}
	if c.Query("include_expired") != "true" {
		tx = tx.Where("announcement_expires_at IS NULL OR announcement_expires_at > ?", time.Now())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count announcements:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	var rows []m.AnnouncementModel
	if err := tx.
		Preload("CreatedBy").
		Order("announcement_is_pinned DESC").
		Order(priorityRank).
		Order("announcement_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list announcements:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/announcements/:id
func (ctl *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var row m.AnnouncementModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("CreatedBy").
		First(&row, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(row))
}

// POST /api/announcements (COMMITTEE/ADMIN)
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	priority := req.Priority
	if priority == "" {
		priority = m.AnnouncementPriorityNormal
	}

	row := m.AnnouncementModel{
		AnnouncementTitle:       req.Title,
		AnnouncementContent:     req.Content,
		AnnouncementPriority:    priority,
		AnnouncementCategory:    req.Category,
		AnnouncementExpiresAt:   req.ExpiresAt,
		AnnouncementCreatedByID: userID,
	}
	if req.IsPinned != nil {
		row.AnnouncementIsPinned = *req.IsPinned
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Println("[ERROR] failed to create announcement:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return helper.JsonCreated(c, "Announcement published", dto.FromModel(row))
}

// PUT /api/announcements/:id (COMMITTEE/ADMIN)
func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var row m.AnnouncementModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.Title != nil {
		row.AnnouncementTitle = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		row.AnnouncementContent = *req.Content
	}
	if req.Priority != nil {
		row.AnnouncementPriority = *req.Priority
	}
	if req.Category != nil {
		row.AnnouncementCategory = req.Category
	}
	if req.IsPinned != nil {
		row.AnnouncementIsPinned = *req.IsPinned
	}
	if req.ExpiresAt != nil {
		row.AnnouncementExpiresAt = req.ExpiresAt
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		log.Println("[ERROR] failed to update announcement:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}

	return helper.JsonUpdated(c, "Announcement updated", dto.FromModel(row))
}

// DELETE /api/announcements/:id (COMMITTEE/ADMIN)
func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.AnnouncementModel{}, "announcement_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] failed to delete announcement:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"id": id})
}
