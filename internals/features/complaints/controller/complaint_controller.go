// file: internals/features/complaints/controller/complaint_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/complaints/dto"
	m "societyhub_backend/internals/features/complaints/model"
	helper "societyhub_backend/internals/helpers"
)

type ComplaintController struct {
	DB *gorm.DB
}

func NewComplaintController(db *gorm.DB) *ComplaintController {
	return &ComplaintController{DB: db}
}

/* ===================== Read ===================== */

// GET /api/complaints?status=&category=&priority=&page=&per_page=
//
// Residents see their own complaints; committee members see the whole queue
// plus status counts.
func (ctl *ComplaintController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.ComplaintModel{})

	isCommittee := constants.Can(role, constants.ResComplaints, constants.ActionReadAll)
	if !isCommittee {
		tx = tx.Where("complaint_created_by_id = ?", userID)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" && status != "all" {
		tx = tx.Where("complaint_status = ?", strings.ToUpper(status))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != "all" {
		tx = tx.Where("complaint_category = ?", cat)
	}
	if prio := strings.TrimSpace(c.Query("priority")); prio != "" && prio != "all" {
		tx = tx.Where("complaint_priority = ?", strings.ToUpper(prio))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count complaints:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	var rows []m.ComplaintModel
	if err := tx.
		Preload("CreatedBy").Preload("AssignedTo").
		Order("complaint_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list complaints:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
	}

	payload := fiber.Map{"complaints": dto.FromModelSlice(rows)}
	if isCommittee {
		stats, err := ctl.statusStats(c)
		if err != nil {
			log.Println("[ERROR] failed to compute complaint stats:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaints")
		}
		payload["stats"] = stats
	}

	return helper.JsonList(c, "ok", payload, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *ComplaintController) statusStats(c *fiber.Ctx) (*dto.ComplaintStatsDTO, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.ComplaintModel{}).
		Select("complaint_status AS status, COUNT(*) AS count").
		Group("complaint_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &dto.ComplaintStatsDTO{}
	for _, r := range rows {
		switch r.Status {
		case m.ComplaintStatusOpen:
			stats.Open = r.Count
		case m.ComplaintStatusInProgress:
			stats.InProgress = r.Count
		case m.ComplaintStatusResolved:
			stats.Resolved = r.Count
		case m.ComplaintStatusClosed:
			stats.Closed = r.Count
		}
	}
	return stats, nil
}

// GET /api/complaints/:id (owner or committee)
func (ctl *ComplaintController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint ID")
	}

	var row m.ComplaintModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("CreatedBy").Preload("AssignedTo").
		First(&row, "complaint_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch complaint")
	}

	if row.ComplaintCreatedByID != userID && !constants.IsCommittee(role) {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own complaints")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(row))
}

/* ===================== Write ===================== */

// POST /api/complaints
func (ctl *ComplaintController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	priority := req.Priority
	if priority == "" {
		priority = m.ComplaintPriorityMedium
	}

	row := m.ComplaintModel{
		ComplaintTitle:       req.Title,
		ComplaintDescription: req.Description,
		ComplaintCategory:    req.Category,
		ComplaintPriority:    priority,
		ComplaintStatus:      m.ComplaintStatusOpen,
		ComplaintCreatedByID: userID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		log.Println("[ERROR] failed to create complaint:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create complaint")
	}

	return helper.JsonCreated(c, "Complaint registered", dto.FromModel(row))
}

// PUT /api/complaints/:id
//
// Owners may edit title/description while the complaint is still OPEN.
// Committee members may recategorize, reprioritize, assign, and resolve.
func (ctl *ComplaintController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint ID")
	}

	var row m.ComplaintModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "complaint_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update complaint")
	}

	var req dto.UpdateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	isCommittee := constants.IsCommittee(role)
	isOwner := row.ComplaintCreatedByID == userID

	if !isCommittee {
		if !isOwner {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only update your own complaints")
		}
		if row.ComplaintStatus != m.ComplaintStatusOpen {
			return helper.JsonError(c, fiber.StatusBadRequest, "Only open complaints can be edited")
		}
		if req.Title != nil {
			row.ComplaintTitle = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			row.ComplaintDescription = *req.Description
		}
	} else {
		if req.Title != nil {
			row.ComplaintTitle = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			row.ComplaintDescription = *req.Description
		}
		if req.Category != nil {
			row.ComplaintCategory = *req.Category
		}
		if req.Priority != nil {
			row.ComplaintPriority = *req.Priority
		}
		if req.AssignedTo != nil {
			assignee, err := uuid.Parse(*req.AssignedTo)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignee ID")
			}
			row.ComplaintAssignedToID = &assignee
		}
		if req.Resolution != nil {
			row.ComplaintResolution = req.Resolution
		}
		if req.Status != nil && *req.Status != row.ComplaintStatus {
			row.ComplaintStatus = *req.Status
			if *req.Status == m.ComplaintStatusResolved || *req.Status == m.ComplaintStatusClosed {
				now := time.Now()
				row.ComplaintResolvedAt = &now
			} else {
				row.ComplaintResolvedAt = nil
			}
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		log.Println("[ERROR] failed to update complaint:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update complaint")
	}

	return helper.JsonUpdated(c, "Complaint updated", dto.FromModel(row))
}

// DELETE /api/complaints/:id (ADMIN)
func (ctl *ComplaintController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid complaint ID")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.ComplaintModel{}, "complaint_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] failed to delete complaint:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete complaint")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Complaint not found")
	}

	return helper.JsonDeleted(c, "Complaint deleted", fiber.Map{"id": id})
}
