// file: internals/features/finance/expenses/controller/expense_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/finance/expenses/dto"
	m "societyhub_backend/internals/features/finance/expenses/model"
	svc "societyhub_backend/internals/features/finance/expenses/service"
	helper "societyhub_backend/internals/helpers"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

/* ===================== Read ===================== */

// GET /api/expenses?category=&month=&year=&is_approved=&page=&per_page=
func (ctl *ExpenseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.ExpenseModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" && cat != "all" {
		tx = tx.Where("expense_category = ?", strings.ToUpper(cat))
	}
	if raw := c.Query("is_approved"); raw != "" {
		approved, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "is_approved must be true or false")
		}
		tx = tx.Where("expense_is_approved = ?", approved)
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	if month >= 1 && month <= 12 && year > 0 {
		from, to := svc.MonthRange(year, time.Month(month))
		tx = tx.Where("expense_date >= ? AND expense_date < ?", from, to)
	} else if year > 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		tx = tx.Where("expense_date >= ? AND expense_date < ?", from, from.AddDate(1, 0, 0))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count expenses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	var rows []m.ExpenseModel
	if err := tx.
		Preload("CreatedBy").Preload("ApprovedBy").
		Order("expense_date DESC, expense_created_at DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list expenses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expenses")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/expenses/summary?year=&month=
func (ctl *ExpenseController) Summary(c *fiber.Ctx) error {
	ref := time.Now().UTC()
	if year, err := strconv.Atoi(c.Query("year")); err == nil && year > 0 {
		month := int(ref.Month())
		if mq, err := strconv.Atoi(c.Query("month")); err == nil && mq >= 1 && mq <= 12 {
			month = mq
		}
		ref = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}

	summary, err := svc.BuildExpenseSummary(ctl.DB.WithContext(c.Context()), ref)
	if err != nil {
		log.Println("[ERROR] failed to build expense summary:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build expense summary")
	}
	return helper.JsonOK(c, "ok", summary)
}

// GET /api/expenses/:id
func (ctl *ExpenseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense ID")
	}

	var expense m.ExpenseModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("CreatedBy").Preload("ApprovedBy").
		First(&expense, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expense")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(expense))
}

/* ===================== Write ===================== */

// POST /api/expenses (COMMITTEE/ADMIN)
func (ctl *ExpenseController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	mode := req.PaymentMode
	if mode == "" {
		mode = m.PaymentModeBankTransfer
	}

	expense := m.ExpenseModel{
		ExpenseCategory:      strings.ToUpper(strings.TrimSpace(req.Category)),
		ExpenseDescription:   strings.TrimSpace(req.Description),
		ExpenseAmount:        req.Amount,
		ExpenseVendorName:    req.VendorName,
		ExpenseInvoiceNumber: req.InvoiceNumber,
		ExpenseDate:          date,
		ExpenseReceiptURL:    req.ReceiptURL,
		ExpensePaidTo:        req.PaidTo,
		ExpensePaymentMode:   mode,
		ExpenseCreatedByID:   userID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&expense).Error; err != nil {
		log.Println("[ERROR] failed to create expense:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}

	return helper.JsonCreated(c, "Expense recorded", dto.FromModel(expense))
}

// PUT /api/expenses/:id (COMMITTEE/ADMIN; approved rows only ADMIN)
func (ctl *ExpenseController) Update(c *fiber.Ctx) error {
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense ID")
	}

	var expense m.ExpenseModel
	if err := ctl.DB.WithContext(c.Context()).First(&expense, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}

	if expense.ExpenseIsApproved && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Approved expenses can only be modified by an admin")
	}

	var req dto.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if req.Category != nil {
		expense.ExpenseCategory = strings.ToUpper(strings.TrimSpace(*req.Category))
	}
	if req.Description != nil {
		expense.ExpenseDescription = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		expense.ExpenseAmount = *req.Amount
	}
	if req.VendorName != nil {
		expense.ExpenseVendorName = req.VendorName
	}
	if req.InvoiceNumber != nil {
		expense.ExpenseInvoiceNumber = req.InvoiceNumber
	}
	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.UTC)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		}
		expense.ExpenseDate = date
	}
	if req.ReceiptURL != nil {
		expense.ExpenseReceiptURL = req.ReceiptURL
	}
	if req.PaidTo != nil {
		expense.ExpensePaidTo = req.PaidTo
	}
	if req.PaymentMode != nil {
		expense.ExpensePaymentMode = *req.PaymentMode
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&expense).Error; err != nil {
		log.Println("[ERROR] failed to update expense:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}

	return helper.JsonUpdated(c, "Expense updated", dto.FromModel(expense))
}

// DELETE /api/expenses/:id (ADMIN)
func (ctl *ExpenseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense ID")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&m.ExpenseModel{}, "expense_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] failed to delete expense:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}

	return helper.JsonDeleted(c, "Expense deleted", fiber.Map{"id": id})
}

/* ===================== Approval ===================== */

// PATCH /api/expenses/:id/approve (ADMIN)
func (ctl *ExpenseController) Approve(c *fiber.Ctx) error {
	return ctl.setApproval(c, true, "Expense approved", "This expense is already approved")
}

// PATCH /api/expenses/:id/revoke-approval (ADMIN)
func (ctl *ExpenseController) RevokeApproval(c *fiber.Ctx) error {
	return ctl.setApproval(c, false, "Expense approval revoked", "This expense is not approved")
}

func (ctl *ExpenseController) setApproval(c *fiber.Ctx, approved bool, okMsg, conflictMsg string) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid expense ID")
	}

	var expense m.ExpenseModel
	if err := ctl.DB.WithContext(c.Context()).First(&expense, "expense_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}
	if expense.ExpenseIsApproved == approved {
		return helper.JsonError(c, fiber.StatusBadRequest, conflictMsg)
	}

	expense.ExpenseIsApproved = approved
	if approved {
		now := time.Now()
		expense.ExpenseApprovedByID = &userID
		expense.ExpenseApprovedAt = &now
	} else {
		expense.ExpenseApprovedByID = nil
		expense.ExpenseApprovedAt = nil
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&expense).Error; err != nil {
		log.Println("[ERROR] failed to update expense approval:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}

	return helper.JsonUpdated(c, okMsg, dto.FromModel(expense))
}
