// file: internals/features/finance/expenses/service/summary_service.go
package service

import (
	"math"
	"time"

	"gorm.io/gorm"

	"societyhub_backend/internals/features/finance/expenses/dto"
	m "societyhub_backend/internals/features/finance/expenses/model"
)

/* ===================== Period helpers ===================== */

// MonthRange returns [first day of month, first day of next month) in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// FiscalYearStart returns April 1st of the fiscal year containing ref.
// Society accounting follows the Indian fiscal year.
func FiscalYearStart(ref time.Time) time.Time {
	year := ref.Year()
	if ref.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
}

/* ===================== Aggregation ===================== */

func sumExpenses(db *gorm.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.Model(&m.ExpenseModel{}).
		Where("expense_date >= ? AND expense_date < ?", from, to).
		Select("COALESCE(SUM(expense_amount), 0)").
		Scan(&total).Error
	return total, err
}

// BuildExpenseSummary assembles the finance dashboard payload for the month
// containing ref. Every aggregate is derived from the expense ledger; any
// query failure aborts the whole summary.
func BuildExpenseSummary(db *gorm.DB, ref time.Time) (*dto.ExpenseSummaryDTO, error) {
	ref = ref.UTC()
	monthStart, monthEnd := MonthRange(ref.Year(), ref.Month())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	fyStart := FiscalYearStart(ref)

	out := &dto.ExpenseSummaryDTO{
		CategoryBreakdown: []dto.CategoryAmountDTO{},
		TopVendors:        []dto.VendorSpendDTO{},
		BudgetComparison:  []dto.BudgetComparisonDTO{},
	}

	var err error
	if out.ThisMonthTotal, err = sumExpenses(db, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if out.LastMonthTotal, err = sumExpenses(db, lastMonthStart, monthStart); err != nil {
		return nil, err
	}
	if out.YearToDateTotal, err = sumExpenses(db, fyStart, monthEnd); err != nil {
		return nil, err
	}

	// Pending approvals are a global queue, not scoped to the month.
	if err = db.Model(&m.ExpenseModel{}).
		Where("expense_is_approved = ?", false).
		Count(&out.PendingApprovals).Error; err != nil {
		return nil, err
	}

	// Per-category spend for the month
	type catRow struct {
		Category string
		Amount   float64
		Count    int64
	}
	var catRows []catRow
	if err = db.Model(&m.ExpenseModel{}).
		Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
		Select("expense_category AS category, COALESCE(SUM(expense_amount), 0) AS amount, COUNT(*) AS count").
		Group("expense_category").
		Order("amount DESC").
		Scan(&catRows).Error; err != nil {
		return nil, err
	}
	actualByCategory := make(map[string]float64, len(catRows))
	for _, r := range catRows {
		pct := 0.0
		if out.ThisMonthTotal > 0 {
			pct = math.Round(r.Amount / out.ThisMonthTotal * 100)
		}
		actualByCategory[r.Category] = r.Amount
		out.CategoryBreakdown = append(out.CategoryBreakdown, dto.CategoryAmountDTO{
			Category: r.Category,
			Amount:   r.Amount,
			Count:    r.Count,
			Percent:  pct,
		})
	}

	// Top vendors by spend within the month
	type vendorRow struct {
		VendorName string
		Amount     float64
		Count      int64
	}
	var vendorRows []vendorRow
	if err = db.Model(&m.ExpenseModel{}).
		Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
		Where("expense_vendor_name IS NOT NULL AND expense_vendor_name <> ''").
		Select("expense_vendor_name AS vendor_name, COALESCE(SUM(expense_amount), 0) AS amount, COUNT(*) AS count").
		Group("expense_vendor_name").
		Order("amount DESC").
		Limit(10).
		Scan(&vendorRows).Error; err != nil {
		return nil, err
	}
	for _, r := range vendorRows {
		out.TopVendors = append(out.TopVendors, dto.VendorSpendDTO{
			VendorName: r.VendorName,
			Amount:     r.Amount,
			Count:      r.Count,
		})
	}

	// Budget vs actual for the month
	var budgets []m.MonthlyBudgetModel
	if err = db.
		Where("monthly_budget_month = ? AND monthly_budget_year = ?", int(ref.Month()), ref.Year()).
		Order("monthly_budget_category ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	for _, b := range budgets {
		actual := actualByCategory[b.MonthlyBudgetCategory]
		pctUsed := 0
		if b.MonthlyBudgetAmount > 0 {
			pctUsed = int(math.Round(actual / b.MonthlyBudgetAmount * 100))
		}
		out.TotalBudget += b.MonthlyBudgetAmount
		out.BudgetComparison = append(out.BudgetComparison, dto.BudgetComparisonDTO{
			Category:    b.MonthlyBudgetCategory,
			Budgeted:    b.MonthlyBudgetAmount,
			Actual:      actual,
			Variance:    b.MonthlyBudgetAmount - actual,
			PercentUsed: pctUsed,
		})
	}
	if out.TotalBudget > 0 {
		out.BudgetUsedPct = int(math.Round(out.ThisMonthTotal / out.TotalBudget * 100))
	}

	return out, nil
}
