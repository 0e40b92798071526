// file: internals/features/admin/imports/service/import_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/admin/imports/dto"
	importModel "societyhub_backend/internals/features/admin/imports/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

const resetTokenTTL = 7 * 24 * time.Hour

func randomHex(nBytes int) (string, error) {
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RunImport processes a flats+owners CSV. Each row stands alone: a bad row is
// recorded and skipped, it never aborts the rest of the file. The audit log
// row is written even when every row fails.
func RunImport(db *gorm.DB, fileName, content string, importerID uuid.UUID) (*dto.ImportSummary, error) {
	lines := SplitCSV(content)
	if len(lines) < 2 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "CSV must have a header row and at least one data row")
	}

	idx := MapHeaders(ParseCSVLine(lines[0]))
	if _, ok := idx["flat_number"]; !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "CSV must have a flat number column")
	}
	if _, ok := idx["email"]; !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "CSV must have an email column")
	}

	summary := &dto.ImportSummary{
		FileName: fileName,
		Results:  make([]dto.RowResult, 0, len(lines)-1),
	}

	for n, line := range lines[1:] {
		rowNum := n + 2 // 1-based, header is row 1
		summary.TotalRows++

		result := importRow(db, ParseCSVLine(line), idx, rowNum)
		summary.Results = append(summary.Results, result)
		switch result.Status {
		case dto.RowStatusCreated:
			summary.SuccessCount++
		case dto.RowStatusSkipped:
			summary.SkippedCount++
		default:
			summary.FailureCount++
		}
	}

	var rowErrors []dto.RowResult
	for _, r := range summary.Results {
		if r.Status == dto.RowStatusError {
			rowErrors = append(rowErrors, r)
		}
	}
	errorsJSON, err := sonic.Marshal(rowErrors)
	if err != nil {
		return nil, err
	}

	logRow := importModel.BulkImportLogModel{
		BulkImportLogFileName:     fileName,
		BulkImportLogTotalRows:    summary.TotalRows,
		BulkImportLogSuccessCount: summary.SuccessCount,
		BulkImportLogFailureCount: summary.FailureCount,
		BulkImportLogErrors:       datatypes.JSON(errorsJSON),
		BulkImportLogImportedByID: importerID,
	}
	if err := db.Create(&logRow).Error; err != nil {
		return nil, err
	}
	summary.LogID = logRow.BulkImportLogID

	return summary, nil
}

func importRow(db *gorm.DB, cells []string, idx map[string]int, rowNum int) dto.RowResult {
	flatNumber := strings.ToUpper(fieldAt(cells, idx, "flat_number"))
	name := fieldAt(cells, idx, "name")
	email := strings.ToLower(fieldAt(cells, idx, "email"))

	if flatNumber == "" || email == "" {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email,
			Message: "flat number and email are required"}
	}
	if !strings.Contains(email, "@") {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email,
			Message: "invalid email address"}
	}
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	var existing int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ?", email).
		Count(&existing).Error; err != nil {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email, Message: err.Error()}
	}
	if existing > 0 {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusSkipped, Email: email,
			Message: "user already exists"}
	}

	// Throwaway password; the reset token is the real onboarding path.
	seed, err := randomHex(16)
	if err != nil {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email, Message: err.Error()}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed), bcrypt.DefaultCost)
	if err != nil {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email, Message: err.Error()}
	}
	token, err := randomHex(32)
	if err != nil {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email, Message: err.Error()}
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var flat flatModel.FlatModel
		err := tx.Where("flat_number = ?", flatNumber).First(&flat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			flat = flatModel.FlatModel{FlatNumber: flatNumber}
			if block := strings.ToUpper(fieldAt(cells, idx, "block")); block != "" {
				flat.FlatBlock = &block
			}
			if raw := fieldAt(cells, idx, "floor"); raw != "" {
				if floor, convErr := strconv.Atoi(raw); convErr == nil {
					flat.FlatFloor = &floor
				}
			}
			if raw := fieldAt(cells, idx, "area_sqft"); raw != "" {
				if area, convErr := strconv.ParseFloat(raw, 64); convErr == nil {
					flat.FlatAreaSqft = &area
				}
			}
			flat.FlatOwnerName = &name
			if phone := fieldAt(cells, idx, "phone"); phone != "" {
				flat.FlatOwnerPhone = &phone
			}
			flat.FlatOwnerEmail = &email
			flat.FlatIsOccupied = true
			err = tx.Create(&flat).Error
		}
		if err != nil {
			return err
		}

		user := userModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: string(hash),
			UserRole:     constants.RoleResident,
			UserFlatID:   &flat.FlatID,
			UserIsActive: true,
		}
		if phone := fieldAt(cells, idx, "phone"); phone != "" {
			user.UserPhone = &phone
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		reset := authModel.PasswordResetToken{
			PasswordResetToken:     token,
			PasswordResetUserID:    user.UserID,
			PasswordResetExpiresAt: time.Now().Add(resetTokenTTL),
		}
		return tx.Create(&reset).Error
	})
	if txErr != nil {
		return dto.RowResult{Row: rowNum, Status: dto.RowStatusError, Email: email,
			Message: fmt.Sprintf("failed to import: %v", txErr)}
	}

	return dto.RowResult{Row: rowNum, Status: dto.RowStatusCreated, Email: email,
		Message: "resident created"}
}
