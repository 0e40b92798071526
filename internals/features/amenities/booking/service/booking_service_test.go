// file: internals/features/amenities/booking/service/booking_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	amenityModel "societyhub_backend/internals/features/amenities/amenity/model"
	"societyhub_backend/internals/features/amenities/booking/dto"
	m "societyhub_backend/internals/features/amenities/booking/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	userModel "societyhub_backend/internals/features/users/user/model"
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

	require.NoError(t, db.AutoMigrate(
		&flatModel.FlatModel{},
		&userModel.UserModel{},
		&amenityModel.AmenityModel{},
		&m.AmenityBookingModel{},
		&expenseModel.ExpenseModel{},
	))
	return db
}

func seedFlatAndUser(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()
	flat := flatModel.FlatModel{FlatNumber: "A-101"}
	require.NoError(t, db.Create(&flat).Error)

	user := userModel.UserModel{
		UserName:     "Asha Rao",
		UserEmail:    "asha@example.com",
		UserPassword: "x",
		UserRole:     "RESIDENT",
		UserFlatID:   &flat.FlatID,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.UserID, flat.FlatID
}

func ptrFloat(v float64) *float64 { return &v }

func seedAmenity(t *testing.T, db *gorm.DB, mutate func(*amenityModel.AmenityModel)) uuid.UUID {
	t.Helper()
	amenity := amenityModel.AmenityModel{
		AmenityName:               "Party Hall " + uuid.NewString()[:8],
		AmenityCategory:           amenityModel.AmenityCategoryPartyHall,
		AmenityHourlyRate:         ptrFloat(500),
		AmenitySecurityDeposit:    ptrFloat(1000),
		AmenityAdvanceBookingDays: 30,
		AmenityMinBookingHours:    1,
		AmenityMaxBookingHours:    8,
		AmenityIsActive:           true,
	}
	if mutate != nil {
		mutate(&amenity)
	}
	require.NoError(t, db.Create(&amenity).Error)
	return amenity.AmenityID
}

func bookingDate() string {
	return time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
}

func createReq(amenityID uuid.UUID, start, end string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		AmenityID: amenityID.String(),
		Date:      bookingDate(),
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateBookingPricingAndAutoConfirm(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)

	b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)

	assert.Equal(t, 1000.0, b.AmenityBookingAmount)
	assert.Equal(t, 1000.0, b.AmenityBookingSecurityDeposit)
	assert.Equal(t, 2000.0, b.AmenityBookingTotalAmount)
	assert.Equal(t, m.BookingStatusConfirmed, b.AmenityBookingStatus)
	require.NotNil(t, b.AmenityBookingConfirmedByID)
	assert.Equal(t, userID, *b.AmenityBookingConfirmedByID)
	assert.NotNil(t, b.AmenityBookingConfirmedAt)
	assert.Equal(t, m.PaymentStatusUnpaid, b.AmenityBookingPaymentStatus)
}

func TestCreateBookingPendingWhenApprovalRequired(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, func(a *amenityModel.AmenityModel) {
		a.AmenityRequiresApproval = true
	})

	b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, m.BookingStatusPending, b.AmenityBookingStatus)
	assert.Nil(t, b.AmenityBookingConfirmedByID)
}

func TestCreateBookingFlatRateTiers(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, func(a *amenityModel.AmenityModel) {
		a.AmenityHalfDayRate = ptrFloat(3000)
		a.AmenityFullDayRate = ptrFloat(5000)
	})

	req := createReq(amenityID, "08:00", "12:00")
	req.BookingType = m.BookingTypeHalfDay
	b, err := CreateBooking(db, userID, flatID, req)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, b.AmenityBookingAmount)

	req2 := createReq(amenityID, "13:00", "20:00")
	req2.BookingType = m.BookingTypeFullDay
	b2, err := CreateBooking(db, userID, flatID, req2)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, b2.AmenityBookingAmount)
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)

	_, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)

	// 11:00-13:00 overlaps 10:00-12:00
	_, err = CreateBooking(db, userID, flatID, createReq(amenityID, "11:00", "13:00"))
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// back-to-back on the shared boundary is fine
	_, err = CreateBooking(db, userID, flatID, createReq(amenityID, "12:00", "14:00"))
	assert.NoError(t, err)
}

func TestCreateBookingIgnoresCancelledAndRejectedSlots(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)

	b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)
	_, err = CancelBooking(db, b.AmenityBookingID, userID, "RESIDENT", nil)
	require.NoError(t, err)

	_, err = CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)

	cases := []struct {
		name   string
		mutate func(*dto.CreateBookingRequest)
		code   int
	}{
		{"end before start", func(r *dto.CreateBookingRequest) {
			r.StartTime, r.EndTime = "14:00", "12:00"
		}, fiber.StatusBadRequest},
		{"past date", func(r *dto.CreateBookingRequest) {
			r.Date = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		}, fiber.StatusBadRequest},
		{"beyond advance window", func(r *dto.CreateBookingRequest) {
			r.Date = time.Now().UTC().AddDate(0, 0, 45).Format("2006-01-02")
		}, fiber.StatusBadRequest},
		{"outside operating hours", func(r *dto.CreateBookingRequest) {
			r.StartTime, r.EndTime = "04:00", "06:00"
		}, fiber.StatusBadRequest},
		{"over max duration", func(r *dto.CreateBookingRequest) {
			r.StartTime, r.EndTime = "08:00", "20:00"
		}, fiber.StatusBadRequest},
		{"unknown amenity", func(r *dto.CreateBookingRequest) {
			r.AmenityID = uuid.NewString()
		}, fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := createReq(amenityID, "10:00", "12:00")
			tc.mutate(&req)
			_, err := CreateBooking(db, userID, flatID, req)
			require.Error(t, err)
			var fe *fiber.Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.code, fe.Code)
		})
	}
}

func TestCreateBookingRequiresFlat(t *testing.T) {
	db := newTestDB(t)
	userID, _ := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)

	_, err := CreateBooking(db, userID, uuid.Nil, createReq(amenityID, "10:00", "12:00"))
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestCreateBookingInactiveAmenity(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, func(a *amenityModel.AmenityModel) {
		a.AmenityIsActive = false
	})

	_, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.Error(t, err)
}

func TestBookingStateMachine(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, func(a *amenityModel.AmenityModel) {
		a.AmenityRequiresApproval = true
	})
	committeeID := uuid.New()

	t.Run("pending to confirmed to completed", func(t *testing.T) {
		b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "06:00", "08:00"))
		require.NoError(t, err)

		b, err = ConfirmBooking(db, b.AmenityBookingID, committeeID)
		require.NoError(t, err)
		assert.Equal(t, m.BookingStatusConfirmed, b.AmenityBookingStatus)
		assert.Equal(t, committeeID, *b.AmenityBookingConfirmedByID)

		// cannot confirm twice
		_, err = ConfirmBooking(db, b.AmenityBookingID, committeeID)
		require.Error(t, err)

		b, err = CompleteBooking(db, b.AmenityBookingID)
		require.NoError(t, err)
		assert.Equal(t, m.BookingStatusCompleted, b.AmenityBookingStatus)
		assert.NotNil(t, b.AmenityBookingCompletedAt)

		// completed is terminal for cancel
		_, err = CancelBooking(db, b.AmenityBookingID, userID, "RESIDENT", nil)
		require.Error(t, err)
	})

	t.Run("reject requires reason", func(t *testing.T) {
		b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "09:00", "10:00"))
		require.NoError(t, err)

		_, err = RejectBooking(db, b.AmenityBookingID, committeeID, "   ")
		require.Error(t, err)

		b, err = RejectBooking(db, b.AmenityBookingID, committeeID, "Hall reserved for society event")
		require.NoError(t, err)
		assert.Equal(t, m.BookingStatusRejected, b.AmenityBookingStatus)
		require.NotNil(t, b.AmenityBookingRejectionReason)

		// rejected cannot be completed
		_, err = CompleteBooking(db, b.AmenityBookingID)
		require.Error(t, err)
	})

	t.Run("cancel ownership and default reason", func(t *testing.T) {
		b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "11:00", "12:00"))
		require.NoError(t, err)

		// a stranger resident cannot cancel
		_, err = CancelBooking(db, b.AmenityBookingID, uuid.New(), "RESIDENT", nil)
		require.Error(t, err)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusForbidden, fe.Code)

		// a committee member can
		b, err = CancelBooking(db, b.AmenityBookingID, uuid.New(), "COMMITTEE", nil)
		require.NoError(t, err)
		assert.Equal(t, m.BookingStatusCancelled, b.AmenityBookingStatus)
		require.NotNil(t, b.AmenityBookingCancelReason)
		assert.Equal(t, "Cancelled by user", *b.AmenityBookingCancelReason)
		assert.NotNil(t, b.AmenityBookingCancelledAt)
	})
}

func TestMarkBookingPaidCreatesIncomeExpense(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, nil)
	adminID := uuid.New()

	b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)

	b, err = MarkBookingPaid(db, b.AmenityBookingID, adminID, nil)
	require.NoError(t, err)
	assert.Equal(t, m.PaymentStatusPaid, b.AmenityBookingPaymentStatus)
	require.NotNil(t, b.AmenityBookingPaymentMode)
	assert.Equal(t, expenseModel.PaymentModeCash, *b.AmenityBookingPaymentMode)
	require.NotNil(t, b.AmenityBookingExpenseID)

	var expense expenseModel.ExpenseModel
	require.NoError(t, db.First(&expense, "expense_id = ?", b.AmenityBookingExpenseID).Error)
	assert.Equal(t, expenseModel.ExpenseCategoryAmenityIncome, expense.ExpenseCategory)
	assert.Equal(t, b.AmenityBookingTotalAmount, expense.ExpenseAmount)
	assert.True(t, expense.ExpenseIsApproved)
	require.NotNil(t, expense.ExpenseInvoiceNumber)
	assert.Contains(t, *expense.ExpenseInvoiceNumber, "AMB-")
	// the ledger entry names the paying flat
	assert.Contains(t, expense.ExpenseDescription, "flat A-101")

	// paying twice is rejected and no second expense appears
	_, err = MarkBookingPaid(db, b.AmenityBookingID, adminID, nil)
	require.Error(t, err)
	var count int64
	require.NoError(t, db.Model(&expenseModel.ExpenseModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMarkBookingPaidOnlyFromConfirmed(t *testing.T) {
	db := newTestDB(t)
	userID, flatID := seedFlatAndUser(t, db)
	amenityID := seedAmenity(t, db, func(a *amenityModel.AmenityModel) {
		a.AmenityRequiresApproval = true
	})

	b, err := CreateBooking(db, userID, flatID, createReq(amenityID, "10:00", "12:00"))
	require.NoError(t, err)

	_, err = MarkBookingPaid(db, b.AmenityBookingID, uuid.New(), nil)
	require.Error(t, err)
}

func TestPriceBookingFallbacks(t *testing.T) {
	hourlyOnly := amenityModel.AmenityModel{AmenityHourlyRate: ptrFloat(200)}
	assert.Equal(t, 600.0, PriceBooking(hourlyOnly, m.BookingTypeHourly, 3))

	// tier requested but not configured falls back to hourly
	assert.Equal(t, 800.0, PriceBooking(hourlyOnly, m.BookingTypeFullDay, 4))

	free := amenityModel.AmenityModel{}
	assert.Equal(t, 0.0, PriceBooking(free, m.BookingTypeHourly, 2))
}
