// file: internals/features/finance/expenses/service/summary_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "societyhub_backend/internals/features/finance/expenses/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&m.ExpenseModel{}, &m.MonthlyBudgetModel{}))
	return db
}

func seedExpense(t *testing.T, db *gorm.DB, category string, amount float64, date time.Time, vendor string, approved bool) {
	t.Helper()
	e := m.ExpenseModel{
		ExpenseCategory:    category,
		ExpenseDescription: category + " bill",
		ExpenseAmount:      amount,
		ExpenseDate:        date,
		ExpensePaymentMode: m.PaymentModeBankTransfer,
		ExpenseIsApproved:  approved,
		ExpenseCreatedByID: uuid.New(),
	}
	if vendor != "" {
		e.ExpenseVendorName = &vendor
	}
	require.NoError(t, db.Create(&e).Error)
}

func TestFiscalYearStart(t *testing.T) {
	april := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, april, FiscalYearStart(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, april, FiscalYearStart(time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, april, FiscalYearStart(time.Date(2027, time.March, 31, 23, 0, 0, 0, time.UTC)))

	prevApril := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, prevApril, FiscalYearStart(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)))
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2026, time.January)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), to)

	// december rolls into the next year
	from, to = MonthRange(2026, time.December)
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), from)
}

func TestBuildExpenseSummary(t *testing.T) {
	db := newTestDB(t)
	ref := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	aug := func(day int) time.Time { return time.Date(2026, time.August, day, 0, 0, 0, 0, time.UTC) }
	jul := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	may := time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	seedExpense(t, db, m.ExpenseCategorySecurity, 30000, aug(1), "Guardian Services", true)
	seedExpense(t, db, m.ExpenseCategorySecurity, 10000, aug(10), "Guardian Services", false)
	seedExpense(t, db, m.ExpenseCategoryCleaning, 10000, aug(5), "Sparkle Facility", true)
	seedExpense(t, db, m.ExpenseCategoryCleaning, 12000, jul, "Sparkle Facility", true)
	seedExpense(t, db, m.ExpenseCategoryRepairs, 8000, may, "", false)
	seedExpense(t, db, m.ExpenseCategoryGardening, 5000, may, "Meadow Gardeners", true)
	// previous fiscal year, must not enter YTD
	seedExpense(t, db, m.ExpenseCategoryRepairs, 99999, feb, "Old Vendor", true)

	budgets := []m.MonthlyBudgetModel{
		{MonthlyBudgetMonth: 8, MonthlyBudgetYear: 2026, MonthlyBudgetCategory: m.ExpenseCategorySecurity, MonthlyBudgetAmount: 50000},
		{MonthlyBudgetMonth: 8, MonthlyBudgetYear: 2026, MonthlyBudgetCategory: m.ExpenseCategoryCleaning, MonthlyBudgetAmount: 20000},
		{MonthlyBudgetMonth: 8, MonthlyBudgetYear: 2026, MonthlyBudgetCategory: m.ExpenseCategoryGardening, MonthlyBudgetAmount: 5000},
	}
	for i := range budgets {
		require.NoError(t, db.Create(&budgets[i]).Error)
	}

	out, err := BuildExpenseSummary(db, ref)
	require.NoError(t, err)

	assert.Equal(t, 50000.0, out.ThisMonthTotal)
	assert.Equal(t, 12000.0, out.LastMonthTotal)
	// April 2026 onward: may + jul + aug
	assert.Equal(t, 75000.0, out.YearToDateTotal)

	assert.Equal(t, 75000.0, out.TotalBudget)
	// round(50000/75000*100) = 67
	assert.Equal(t, 67, out.BudgetUsedPct)

	// 2 unapproved rows overall, regardless of month
	assert.Equal(t, int64(2), out.PendingApprovals)

	require.Len(t, out.CategoryBreakdown, 2)
	assert.Equal(t, m.ExpenseCategorySecurity, out.CategoryBreakdown[0].Category)
	assert.Equal(t, 40000.0, out.CategoryBreakdown[0].Amount)
	assert.Equal(t, 80.0, out.CategoryBreakdown[0].Percent)

	// vendors are ranked within the month only; earlier spend stays out
	require.Len(t, out.TopVendors, 2)
	assert.Equal(t, "Guardian Services", out.TopVendors[0].VendorName)
	assert.Equal(t, 40000.0, out.TopVendors[0].Amount)
	assert.Equal(t, int64(2), out.TopVendors[0].Count)
	assert.Equal(t, "Sparkle Facility", out.TopVendors[1].VendorName)
	assert.Equal(t, 10000.0, out.TopVendors[1].Amount)
	for _, v := range out.TopVendors {
		assert.NotEqual(t, "Meadow Gardeners", v.VendorName)
		assert.NotEqual(t, "Old Vendor", v.VendorName)
	}

	require.Len(t, out.BudgetComparison, 3)
	byCat := map[string]int{}
	for i, bc := range out.BudgetComparison {
		byCat[bc.Category] = i
	}
	sec := out.BudgetComparison[byCat[m.ExpenseCategorySecurity]]
	assert.Equal(t, 40000.0, sec.Actual)
	assert.Equal(t, 10000.0, sec.Variance)
	assert.Equal(t, 80, sec.PercentUsed)

	// a budgeted category with no spend reads as fully unspent
	gar := out.BudgetComparison[byCat[m.ExpenseCategoryGardening]]
	assert.Equal(t, 0.0, gar.Actual)
	assert.Equal(t, 0, gar.PercentUsed)
}

func TestCategoryPercentRoundsToWholeNumbers(t *testing.T) {
	db := newTestDB(t)
	ref := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	aug := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)

	seedExpense(t, db, m.ExpenseCategorySecurity, 2000, aug, "", true)
	seedExpense(t, db, m.ExpenseCategoryCleaning, 1000, aug, "", true)

	out, err := BuildExpenseSummary(db, ref)
	require.NoError(t, err)

	require.Len(t, out.CategoryBreakdown, 2)
	// 2000/3000 and 1000/3000 round to whole percents
	assert.Equal(t, 67.0, out.CategoryBreakdown[0].Percent)
	assert.Equal(t, 33.0, out.CategoryBreakdown[1].Percent)
}

func TestBuildExpenseSummaryEmptyLedger(t *testing.T) {
	db := newTestDB(t)

	out, err := BuildExpenseSummary(db, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Zero(t, out.ThisMonthTotal)
	assert.Zero(t, out.TotalBudget)
	assert.Zero(t, out.BudgetUsedPct)
	assert.Empty(t, out.CategoryBreakdown)
	assert.Empty(t, out.TopVendors)
	assert.Empty(t, out.BudgetComparison)
}
