// file: internals/features/admin/imports/dto/import_dto.go
package dto

import "github.com/google/uuid"

const (
	RowStatusCreated = "created"
	RowStatusSkipped = "skipped"
	RowStatusError   = "error"
)

type RowResult struct {
	Row     int    `json:"row"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Email   string `json:"email,omitempty"`
}

type ImportSummary struct {
	LogID        uuid.UUID   `json:"log_id"`
	FileName     string      `json:"file_name"`
	TotalRows    int         `json:"total_rows"`
	SuccessCount int         `json:"success_count"`
	FailureCount int         `json:"failure_count"`
	SkippedCount int         `json:"skipped_count"`
	Results      []RowResult `json:"results"`
}
