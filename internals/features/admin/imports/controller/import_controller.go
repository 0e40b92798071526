// file: internals/features/admin/imports/controller/import_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	m "societyhub_backend/internals/features/admin/imports/model"
	svc "societyhub_backend/internals/features/admin/imports/service"
	helper "societyhub_backend/internals/helpers"
)

const maxImportSize = 5 << 20 // 5 MiB

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

// POST /api/admin/bulk-import (ADMIN), multipart upload with field "file".
func (ctl *ImportController) BulkImport(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "CSV file is required (field: file)")
	}
	if fileHeader.Size > maxImportSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File too large (max 5 MB)")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only .csv files are supported")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read the uploaded file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to read the uploaded file")
	}

	summary, err := svc.RunImport(ctl.DB.WithContext(c.Context()), fileHeader.Filename, string(content), userID)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] bulk import failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bulk import failed")
	}

	log.Printf("✅ bulk import %s: %d created, %d skipped, %d failed",
		fileHeader.Filename, summary.SuccessCount, summary.SkippedCount, summary.FailureCount)

	return helper.JsonOK(c, "Import completed", summary)
}

// GET /api/admin/bulk-import/logs (ADMIN)
func (ctl *ImportController) ListLogs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.BulkImportLogModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch import logs")
	}

	var rows []m.BulkImportLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("ImportedBy").
		Order("bulk_import_log_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list import logs:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch import logs")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
