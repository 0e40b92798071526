// file: internals/features/finance/expenses/dto/expense_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/finance/expenses/model"
)

/* ===================== Response DTOs ===================== */

type ExpenseUserDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ExpenseDTO struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	VendorName    *string   `json:"vendor_name,omitempty"`
	InvoiceNumber *string   `json:"invoice_number,omitempty"`
	Date          string    `json:"date"`
	ReceiptURL    *string   `json:"receipt_url,omitempty"`
	PaidTo        *string   `json:"paid_to,omitempty"`
	PaymentMode   string    `json:"payment_mode"`

	IsApproved bool            `json:"is_approved"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy *ExpenseUserDTO `json:"approved_by,omitempty"`
	CreatedBy  *ExpenseUserDTO `json:"created_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromModel(e m.ExpenseModel) ExpenseDTO {
	out := ExpenseDTO{
		ID:            e.ExpenseID,
		Category:      e.ExpenseCategory,
		Description:   e.ExpenseDescription,
		Amount:        e.ExpenseAmount,
		VendorName:    e.ExpenseVendorName,
		InvoiceNumber: e.ExpenseInvoiceNumber,
		Date:          e.ExpenseDate.Format("2006-01-02"),
		ReceiptURL:    e.ExpenseReceiptURL,
		PaidTo:        e.ExpensePaidTo,
		PaymentMode:   e.ExpensePaymentMode,
		IsApproved:    e.ExpenseIsApproved,
		ApprovedAt:    e.ExpenseApprovedAt,
		CreatedAt:     e.ExpenseCreatedAt,
	}
	if e.ApprovedBy != nil {
		out.ApprovedBy = &ExpenseUserDTO{ID: e.ApprovedBy.UserID, Name: e.ApprovedBy.UserName}
	}
	if e.CreatedBy != nil {
		out.CreatedBy = &ExpenseUserDTO{ID: e.CreatedBy.UserID, Name: e.CreatedBy.UserName}
	}
	return out
}

func FromModelSlice(rows []m.ExpenseModel) []ExpenseDTO {
	out := make([]ExpenseDTO, 0, len(rows))
	for _, e := range rows {
		out = append(out, FromModel(e))
	}
	return out
}

type BudgetDTO struct {
	ID       uuid.UUID `json:"id"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
}

func BudgetFromModel(b m.MonthlyBudgetModel) BudgetDTO {
	return BudgetDTO{
		ID:       b.MonthlyBudgetID,
		Month:    b.MonthlyBudgetMonth,
		Year:     b.MonthlyBudgetYear,
		Category: b.MonthlyBudgetCategory,
		Amount:   b.MonthlyBudgetAmount,
	}
}

/* ===================== Requests ===================== */

type CreateExpenseRequest struct {
	Category      string  `json:"category" validate:"required,max=30"`
	Description   string  `json:"description" validate:"required,max=1000"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	VendorName    *string `json:"vendor_name" validate:"omitempty,max=100"`
	InvoiceNumber *string `json:"invoice_number" validate:"omitempty,max=50"`
	Date          string  `json:"date" validate:"required"`
	ReceiptURL    *string `json:"receipt_url" validate:"omitempty,max=2000"`
	PaidTo        *string `json:"paid_to" validate:"omitempty,max=150"`
	PaymentMode   string  `json:"payment_mode" validate:"omitempty,oneof=CASH UPI CHEQUE BANK_TRANSFER"`
}

type UpdateExpenseRequest struct {
	Category      *string  `json:"category" validate:"omitempty,max=30"`
	Description   *string  `json:"description" validate:"omitempty,max=1000"`
	Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
	VendorName    *string  `json:"vendor_name" validate:"omitempty,max=100"`
	InvoiceNumber *string  `json:"invoice_number" validate:"omitempty,max=50"`
	Date          *string  `json:"date"`
	ReceiptURL    *string  `json:"receipt_url" validate:"omitempty,max=2000"`
	PaidTo        *string  `json:"paid_to" validate:"omitempty,max=150"`
	PaymentMode   *string  `json:"payment_mode" validate:"omitempty,oneof=CASH UPI CHEQUE BANK_TRANSFER"`
}

type UpsertBudgetRequest struct {
	Month    int     `json:"month" validate:"required,gte=1,lte=12"`
	Year     int     `json:"year" validate:"required,gte=2000,lte=2100"`
	Category string  `json:"category" validate:"required,max=30"`
	Amount   float64 `json:"amount" validate:"gte=0"`
}

/* ===================== Summary DTOs ===================== */

type CategoryAmountDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int64   `json:"count"`
	Percent  float64 `json:"percent"`
}

type VendorSpendDTO struct {
	VendorName string  `json:"vendor_name"`
	Amount     float64 `json:"amount"`
	Count      int64   `json:"count"`
}

type BudgetComparisonDTO struct {
	Category    string  `json:"category"`
	Budgeted    float64 `json:"budgeted"`
	Actual      float64 `json:"actual"`
	Variance    float64 `json:"variance"`
	PercentUsed int     `json:"percent_used"`
}

type ExpenseSummaryDTO struct {
	ThisMonthTotal   float64 `json:"this_month_total"`
	LastMonthTotal   float64 `json:"last_month_total"`
	YearToDateTotal  float64 `json:"year_to_date_total"`
	TotalBudget      float64 `json:"total_budget"`
	BudgetUsedPct    int     `json:"budget_used_pct"`
	PendingApprovals int64   `json:"pending_approvals"`

	CategoryBreakdown []CategoryAmountDTO   `json:"category_breakdown"`
	TopVendors        []VendorSpendDTO      `json:"top_vendors"`
	BudgetComparison  []BudgetComparisonDTO `json:"budget_comparison"`
}
