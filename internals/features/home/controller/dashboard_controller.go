// file: internals/features/home/controller/dashboard_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookingModel "societyhub_backend/internals/features/amenities/booking/model"
	complaintModel "societyhub_backend/internals/features/complaints/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	expenseSvc "societyhub_backend/internals/features/finance/expenses/service"
	userModel "societyhub_backend/internals/features/users/user/model"
	helper "societyhub_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type dashboardStats struct {
	TotalResidents   int64   `json:"total_residents"`
	TotalFlats       int64   `json:"total_flats"`
	OccupiedFlats    int64   `json:"occupied_flats"`
	OpenComplaints   int64   `json:"open_complaints"`
	ThisMonthExpense float64 `json:"this_month_expense"`
	PendingApprovals int64   `json:"pending_approvals"`
	UpcomingBookings int64   `json:"upcoming_bookings"`
}

// GET /api/dashboard/stats
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())
	now := time.Now().UTC()
	monthStart, monthEnd := expenseSvc.MonthRange(now.Year(), now.Month())
	today := now.Truncate(24 * time.Hour)

	var stats dashboardStats
	queries := []func() error{
		func() error {
			return db.Model(&userModel.UserModel{}).
				Where("user_is_active = ?", true).
				Count(&stats.TotalResidents).Error
		},
		func() error {
			return db.Model(&flatModel.FlatModel{}).Count(&stats.TotalFlats).Error
		},
		func() error {
			return db.Model(&flatModel.FlatModel{}).
				Where("flat_is_occupied = ?", true).
				Count(&stats.OccupiedFlats).Error
		},
		func() error {
			return db.Model(&complaintModel.ComplaintModel{}).
				Where("complaint_status IN ?", []string{
					complaintModel.ComplaintStatusOpen,
					complaintModel.ComplaintStatusInProgress,
				}).
				Count(&stats.OpenComplaints).Error
		},
		func() error {
			return db.Model(&expenseModel.ExpenseModel{}).
				Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
				Select("COALESCE(SUM(expense_amount), 0)").
				Scan(&stats.ThisMonthExpense).Error
		},
		func() error {
			return db.Model(&expenseModel.ExpenseModel{}).
				Where("expense_is_approved = ?", false).
				Count(&stats.PendingApprovals).Error
		},
		func() error {
			return db.Model(&bookingModel.AmenityBookingModel{}).
				Where("amenity_booking_status = ? AND amenity_booking_date >= ?",
					bookingModel.BookingStatusConfirmed, today).
				Count(&stats.UpcomingBookings).Error
		},
	}
	for _, q := range queries {
		if err := q(); err != nil {
			log.Println("[ERROR] failed to build dashboard stats:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard stats")
		}
	}

	return helper.JsonOK(c, "ok", stats)
}
