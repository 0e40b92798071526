// file: internals/features/admin/imports/model/bulk_import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "societyhub_backend/internals/features/users/user/model"
)

// BulkImportLog records one CSV import run, failed rows as a JSON array.
type BulkImportLogModel struct {
	BulkImportLogID uuid.UUID `json:"bulk_import_log_id" gorm:"type:uuid;primaryKey;column:bulk_import_log_id"`

	BulkImportLogFileName     string `json:"bulk_import_log_file_name" gorm:"type:varchar(255);not null;column:bulk_import_log_file_name"`
	BulkImportLogTotalRows    int    `json:"bulk_import_log_total_rows" gorm:"type:integer;not null;column:bulk_import_log_total_rows"`
	BulkImportLogSuccessCount int    `json:"bulk_import_log_success_count" gorm:"type:integer;not null;column:bulk_import_log_success_count"`
	BulkImportLogFailureCount int    `json:"bulk_import_log_failure_count" gorm:"type:integer;not null;column:bulk_import_log_failure_count"`

	BulkImportLogErrors datatypes.JSON `json:"bulk_import_log_errors" gorm:"type:jsonb;column:bulk_import_log_errors"`

	BulkImportLogImportedByID uuid.UUID `json:"bulk_import_log_imported_by_id" gorm:"type:uuid;not null;column:bulk_import_log_imported_by_id"`

	BulkImportLogCreatedAt time.Time `json:"bulk_import_log_created_at" gorm:"not null;autoCreateTime;column:bulk_import_log_created_at"`

	ImportedBy *userModel.UserModel `json:"imported_by,omitempty" gorm:"foreignKey:BulkImportLogImportedByID;references:UserID"`
}

func (BulkImportLogModel) TableName() string { return "bulk_import_logs" }

func (m *BulkImportLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.BulkImportLogID == uuid.Nil {
		m.BulkImportLogID = uuid.New()
	}
	return nil
}
