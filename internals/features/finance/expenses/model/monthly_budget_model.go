// file: internals/features/finance/expenses/model/monthly_budget_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MonthlyBudget holds the budgeted amount per (month, year, category).
// Actuals are always derived from the expense ledger, never stored.
type MonthlyBudgetModel struct {
	MonthlyBudgetID uuid.UUID `json:"monthly_budget_id" gorm:"type:uuid;primaryKey;column:monthly_budget_id"`

	MonthlyBudgetMonth    int    `json:"monthly_budget_month" gorm:"type:integer;not null;uniqueIndex:uq_monthly_budget_period_category;column:monthly_budget_month;check:monthly_budget_month BETWEEN 1 AND 12"`
	MonthlyBudgetYear     int    `json:"monthly_budget_year" gorm:"type:integer;not null;uniqueIndex:uq_monthly_budget_period_category;column:monthly_budget_year"`
	MonthlyBudgetCategory string `json:"monthly_budget_category" gorm:"type:varchar(30);not null;uniqueIndex:uq_monthly_budget_period_category;column:monthly_budget_category"`

	MonthlyBudgetAmount float64 `json:"monthly_budget_amount" gorm:"type:numeric(12,2);not null;column:monthly_budget_amount;check:monthly_budget_amount>=0"`

	MonthlyBudgetCreatedAt time.Time `json:"monthly_budget_created_at" gorm:"not null;autoCreateTime;column:monthly_budget_created_at"`
	MonthlyBudgetUpdatedAt time.Time `json:"monthly_budget_updated_at" gorm:"not null;autoUpdateTime;column:monthly_budget_updated_at"`
}

func (MonthlyBudgetModel) TableName() string { return "monthly_budgets" }

func (m *MonthlyBudgetModel) BeforeCreate(tx *gorm.DB) error {
	if m.MonthlyBudgetID == uuid.Nil {
		m.MonthlyBudgetID = uuid.New()
	}
	return nil
}
