// file: internals/features/finance/expenses/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "societyhub_backend/internals/features/users/user/model"
)

/* ===================== Category & Mode Constants ===================== */

const (
	ExpenseCategorySecurity      = "SECURITY"
	ExpenseCategoryCleaning      = "CLEANING"
	ExpenseCategoryGardening     = "GARDENING"
	ExpenseCategoryRepairs       = "REPAIRS"
	ExpenseCategoryElectricity   = "ELECTRICITY"
	ExpenseCategorySalaries      = "SALARIES"
	ExpenseCategoryWater         = "WATER"
	ExpenseCategoryLift          = "LIFT_MAINTENANCE"
	ExpenseCategoryPestControl   = "PEST_CONTROL"
	ExpenseCategoryAmenityIncome = "AMENITY_INCOME"
	ExpenseCategoryOther         = "OTHER"
)

const (
	PaymentModeCash         = "CASH"
	PaymentModeUPI          = "UPI"
	PaymentModeCheque       = "CHEQUE"
	PaymentModeBankTransfer = "BANK_TRANSFER"
)

/* ===================== Model ===================== */

type ExpenseModel struct {
	// PK
	ExpenseID uuid.UUID `json:"expense_id" gorm:"type:uuid;primaryKey;column:expense_id"`

	ExpenseCategory    string  `json:"expense_category" gorm:"type:varchar(30);not null;index;column:expense_category"`
	ExpenseDescription string  `json:"expense_description" gorm:"type:text;not null;column:expense_description"`
	ExpenseAmount      float64 `json:"expense_amount" gorm:"type:numeric(12,2);not null;column:expense_amount;check:expense_amount>0"`

	ExpenseVendorName    *string `json:"expense_vendor_name" gorm:"type:varchar(100);column:expense_vendor_name"`
	ExpenseInvoiceNumber *string `json:"expense_invoice_number" gorm:"type:varchar(50);column:expense_invoice_number"`

	ExpenseDate time.Time `json:"expense_date" gorm:"type:date;not null;index;column:expense_date"`

	ExpenseReceiptURL  *string `json:"expense_receipt_url" gorm:"type:text;column:expense_receipt_url"`
	ExpensePaidTo      *string `json:"expense_paid_to" gorm:"type:varchar(150);column:expense_paid_to"`
	ExpensePaymentMode string  `json:"expense_payment_mode" gorm:"type:varchar(20);not null;default:BANK_TRANSFER;column:expense_payment_mode"`

	// Approved rows are immutable except by ADMIN
	ExpenseIsApproved   bool       `json:"expense_is_approved" gorm:"not null;default:false;index;column:expense_is_approved"`
	ExpenseApprovedByID *uuid.UUID `json:"expense_approved_by_id" gorm:"type:uuid;column:expense_approved_by_id"`
	ExpenseApprovedAt   *time.Time `json:"expense_approved_at" gorm:"column:expense_approved_at"`

	ExpenseCreatedByID uuid.UUID `json:"expense_created_by_id" gorm:"type:uuid;not null;column:expense_created_by_id"`

	// Timestamps
	ExpenseCreatedAt time.Time `json:"expense_created_at" gorm:"not null;autoCreateTime;column:expense_created_at"`
	ExpenseUpdatedAt time.Time `json:"expense_updated_at" gorm:"not null;autoUpdateTime;column:expense_updated_at"`

	/* ========== Relations (optional) ========== */
	CreatedBy  *userModel.UserModel `json:"created_by,omitempty" gorm:"foreignKey:ExpenseCreatedByID;references:UserID"`
	ApprovedBy *userModel.UserModel `json:"approved_by,omitempty" gorm:"foreignKey:ExpenseApprovedByID;references:UserID"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	return nil
}
