// file: internals/features/finance/expenses/controller/budget_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/expenses/dto"
	m "societyhub_backend/internals/features/finance/expenses/model"
	helper "societyhub_backend/internals/helpers"
)

type BudgetController struct {
	DB *gorm.DB
}

func NewBudgetController(db *gorm.DB) *BudgetController {
	return &BudgetController{DB: db}
}

// GET /api/budgets?month=&year=
func (ctl *BudgetController) List(c *fiber.Ctx) error {
	tx := ctl.DB.WithContext(c.Context()).Model(&m.MonthlyBudgetModel{})

	if month, err := strconv.Atoi(c.Query("month")); err == nil && month >= 1 && month <= 12 {
		tx = tx.Where("monthly_budget_month = ?", month)
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil && year > 0 {
		tx = tx.Where("monthly_budget_year = ?", year)
	}

	var rows []m.MonthlyBudgetModel
	if err := tx.
		Order("monthly_budget_year DESC, monthly_budget_month DESC, monthly_budget_category ASC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list budgets:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch budgets")
	}

	out := make([]dto.BudgetDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, dto.BudgetFromModel(b))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// PUT /api/budgets (COMMITTEE/ADMIN), upserts on (month, year, category).
func (ctl *BudgetController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Category = strings.ToUpper(strings.TrimSpace(req.Category))
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	db := ctl.DB.WithContext(c.Context())

	var budget m.MonthlyBudgetModel
	err := db.Where(
		"monthly_budget_month = ? AND monthly_budget_year = ? AND monthly_budget_category = ?",
		req.Month, req.Year, req.Category,
	).First(&budget).Error

	switch {
	case err == nil:
		budget.MonthlyBudgetAmount = req.Amount
		if err := db.Save(&budget).Error; err != nil {
			log.Println("[ERROR] failed to update budget:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save budget")
		}
		return helper.JsonUpdated(c, "Budget updated", dto.BudgetFromModel(budget))

	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = m.MonthlyBudgetModel{
			MonthlyBudgetMonth:    req.Month,
			MonthlyBudgetYear:     req.Year,
			MonthlyBudgetCategory: req.Category,
			MonthlyBudgetAmount:   req.Amount,
		}
		if err := db.Create(&budget).Error; err != nil {
			log.Println("[ERROR] failed to create budget:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save budget")
		}
		return helper.JsonCreated(c, "Budget created", dto.BudgetFromModel(budget))

	default:
		log.Println("[ERROR] failed to look up budget:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save budget")
	}
}

// DELETE /api/budgets/:id (COMMITTEE/ADMIN)
func (ctl *BudgetController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid budget ID")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.MonthlyBudgetModel{}, "monthly_budget_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] failed to delete budget:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete budget")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Budget not found")
	}

	return helper.JsonDeleted(c, "Budget deleted", fiber.Map{"id": id})
}
