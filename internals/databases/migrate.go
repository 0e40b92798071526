package database

import (
	"gorm.io/gorm"

	importModel "societyhub_backend/internals/features/admin/imports/model"
	amenityModel "societyhub_backend/internals/features/amenities/amenity/model"
	bookingModel "societyhub_backend/internals/features/amenities/booking/model"
	announcementModel "societyhub_backend/internals/features/announcements/model"
	complaintModel "societyhub_backend/internals/features/complaints/model"
	financeModel "societyhub_backend/internals/features/finance/expenses/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	authModel "societyhub_backend/internals/features/users/auth/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

// MigrateAll runs AutoMigrate for every table, parents before children.
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&flatModel.FlatModel{},
		&userModel.UserModel{},
		&authModel.PasswordResetToken{},
		&amenityModel.AmenityModel{},
		&bookingModel.AmenityBookingModel{},
		&financeModel.ExpenseModel{},
		&financeModel.MonthlyBudgetModel{},
		&announcementModel.AnnouncementModel{},
		&complaintModel.ComplaintModel{},
		&importModel.BulkImportLogModel{},
	)
}
