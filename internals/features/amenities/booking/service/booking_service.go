// file: internals/features/amenities/booking/service/booking_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"societyhub_backend/internals/constants"
	amenityModel "societyhub_backend/internals/features/amenities/amenity/model"
	amenitySvc "societyhub_backend/internals/features/amenities/amenity/service"
	"societyhub_backend/internals/features/amenities/booking/dto"
	m "societyhub_backend/internals/features/amenities/booking/model"
	expenseModel "societyhub_backend/internals/features/finance/expenses/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	helper "societyhub_backend/internals/helpers"
)

/* ===================== Create ===================== */

// CreateBooking validates the slot, prices it, and inserts it. The overlap
// check runs inside a transaction holding the amenity row so two concurrent
// requests for the same slot cannot both pass.
func CreateBooking(db *gorm.DB, userID, flatID uuid.UUID, req dto.CreateBookingRequest) (*m.AmenityBookingModel, error) {
	if flatID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "You must be assigned to a flat to book amenities")
	}

	amenityID, err := uuid.Parse(req.AmenityID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid amenity ID")
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	startHour, ferr := helper.ParseClock(req.StartTime)
	if ferr != nil {
		return nil, ferr
	}
	endHour, ferr := helper.ParseClock(req.EndTime)
	if ferr != nil {
		return nil, ferr
	}
	if endHour <= startHour {
		return nil, fiber.NewError(fiber.StatusBadRequest, "End time must be after start time")
	}

	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = m.BookingTypeHourly
	}

	var booking *m.AmenityBookingModel
	txErr := db.Transaction(func(tx *gorm.DB) error {
		amenityTx := tx
		// Postgres serializes same-amenity bookings on the row lock. Sqlite
		// already serializes writers at the database level.
		if tx.Dialector.Name() == "postgres" {
			amenityTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var amenity amenityModel.AmenityModel
		if err := amenityTx.First(&amenity, "amenity_id = ?", amenityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Amenity not found")
			}
			return err
		}
		if !amenity.AmenityIsActive {
			return fiber.NewError(fiber.StatusBadRequest, "This amenity is not available for booking")
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		if date.Before(today) {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot book for a past date")
		}
		if date.After(today.AddDate(0, 0, amenity.AmenityAdvanceBookingDays)) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Bookings can only be made up to %d days in advance", amenity.AmenityAdvanceBookingDays))
		}

		window := amenitySvc.OperatingWindow(amenity.AmenityOperatingHours)
		if startHour < helper.HourOf(window.Start) || endHour > helper.HourOf(window.End) {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Bookings are only allowed between %s and %s", window.Start, window.End))
		}

		hours := endHour - startHour
		if bookingType == m.BookingTypeHourly {
			if hours < amenity.AmenityMinBookingHours {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Minimum booking duration is %d hour(s)", amenity.AmenityMinBookingHours))
			}
			if hours > amenity.AmenityMaxBookingHours {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Maximum booking duration is %d hour(s)", amenity.AmenityMaxBookingHours))
			}
		}

		startStr := helper.FormatHour(startHour)
		endStr := helper.FormatHour(endHour)

		// Half-open interval overlap: new.start < existing.end AND
		// new.end > existing.start. Times are zero-padded so lexicographic
		// compare matches numeric compare.
		var conflicts int64
		if err := tx.Model(&m.AmenityBookingModel{}).
			Where("amenity_booking_amenity_id = ? AND amenity_booking_date = ?", amenityID, date).
			Where("amenity_booking_status NOT IN ?", m.TerminalStatuses).
			Where("amenity_booking_start_time < ? AND amenity_booking_end_time > ?", endStr, startStr).
			Count(&conflicts).Error; err != nil {
			return err
		}
		if conflicts > 0 {
			return fiber.NewError(fiber.StatusConflict, "This time slot is already booked")
		}

		amount := PriceBooking(amenity, bookingType, hours)
		deposit := 0.0
		if amenity.AmenitySecurityDeposit != nil {
			deposit = *amenity.AmenitySecurityDeposit
		}

		b := m.AmenityBookingModel{
			AmenityBookingAmenityID:       amenityID,
			AmenityBookingFlatID:          flatID,
			AmenityBookingDate:            date,
			AmenityBookingStartTime:       startStr,
			AmenityBookingEndTime:         endStr,
			AmenityBookingPurpose:         req.Purpose,
			AmenityBookingAttendeesCount:  req.AttendeesCount,
			AmenityBookingType:            bookingType,
			AmenityBookingAmount:          amount,
			AmenityBookingSecurityDeposit: deposit,
			AmenityBookingTotalAmount:     amount + deposit,
			AmenityBookingStatus:          m.BookingStatusPending,
			AmenityBookingPaymentStatus:   m.PaymentStatusUnpaid,
			AmenityBookingCreatedByID:     userID,
		}
		if !amenity.AmenityRequiresApproval {
			now := time.Now()
			b.AmenityBookingStatus = m.BookingStatusConfirmed
			b.AmenityBookingConfirmedByID = &userID
			b.AmenityBookingConfirmedAt = &now
		}

		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		booking = &b
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

// PriceBooking resolves the rate tier. Full-day and half-day are flat rates
// when configured; everything else falls back to hourly.
func PriceBooking(a amenityModel.AmenityModel, bookingType string, hours int) float64 {
	switch {
	case bookingType == m.BookingTypeFullDay && a.AmenityFullDayRate != nil:
		return *a.AmenityFullDayRate
	case bookingType == m.BookingTypeHalfDay && a.AmenityHalfDayRate != nil:
		return *a.AmenityHalfDayRate
	case a.AmenityHourlyRate != nil:
		return *a.AmenityHourlyRate * float64(hours)
	default:
		return 0
	}
}

/* ===================== Transitions ===================== */

func loadBooking(db *gorm.DB, id uuid.UUID) (*m.AmenityBookingModel, error) {
	var b m.AmenityBookingModel
	if err := db.First(&b, "amenity_booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func ConfirmBooking(db *gorm.DB, bookingID, actorID uuid.UUID) (*m.AmenityBookingModel, error) {
	b, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if b.AmenityBookingStatus != m.BookingStatusPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only pending bookings can be confirmed")
	}

	now := time.Now()
	b.AmenityBookingStatus = m.BookingStatusConfirmed
	b.AmenityBookingConfirmedByID = &actorID
	b.AmenityBookingConfirmedAt = &now
	if err := db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func RejectBooking(db *gorm.DB, bookingID, actorID uuid.UUID, reason string) (*m.AmenityBookingModel, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Rejection reason is required")
	}

	b, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if b.AmenityBookingStatus != m.BookingStatusPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only pending bookings can be rejected")
	}

	b.AmenityBookingStatus = m.BookingStatusRejected
	b.AmenityBookingRejectionReason = &reason
	b.AmenityBookingConfirmedByID = &actorID
	if err := db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// CancelBooking is allowed for the booking owner and for committee members.
func CancelBooking(db *gorm.DB, bookingID, actorID uuid.UUID, actorRole string, reason *string) (*m.AmenityBookingModel, error) {
	b, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if b.AmenityBookingCreatedByID != actorID && !constants.IsCommittee(actorRole) {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only cancel your own bookings")
	}
	if b.AmenityBookingStatus != m.BookingStatusPending && b.AmenityBookingStatus != m.BookingStatusConfirmed {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only pending or confirmed bookings can be cancelled")
	}

	cancelReason := "Cancelled by user"
	if reason != nil && strings.TrimSpace(*reason) != "" {
		cancelReason = strings.TrimSpace(*reason)
	}

	now := time.Now()
	b.AmenityBookingStatus = m.BookingStatusCancelled
	b.AmenityBookingCancelReason = &cancelReason
	b.AmenityBookingCancelledAt = &now
	if err := db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func CompleteBooking(db *gorm.DB, bookingID uuid.UUID) (*m.AmenityBookingModel, error) {
	b, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if b.AmenityBookingStatus != m.BookingStatusConfirmed {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only confirmed bookings can be completed")
	}

	now := time.Now()
	b.AmenityBookingStatus = m.BookingStatusCompleted
	b.AmenityBookingCompletedAt = &now
	if err := db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

/* ===================== Payment ===================== */

// MarkBookingPaid records the charge as society income. The expense row and
// the payment flags commit together.
func MarkBookingPaid(db *gorm.DB, bookingID, actorID uuid.UUID, paymentMode *string) (*m.AmenityBookingModel, error) {
	var booking *m.AmenityBookingModel
	txErr := db.Transaction(func(tx *gorm.DB) error {
		b, err := loadBooking(tx, bookingID)
		if err != nil {
			return err
		}
		if b.AmenityBookingStatus != m.BookingStatusConfirmed {
			return fiber.NewError(fiber.StatusBadRequest, "Only confirmed bookings can be marked as paid")
		}
		if b.AmenityBookingPaymentStatus == m.PaymentStatusPaid {
			return fiber.NewError(fiber.StatusBadRequest, "This booking is already paid")
		}

		var amenity amenityModel.AmenityModel
		if err := tx.First(&amenity, "amenity_id = ?", b.AmenityBookingAmenityID).Error; err != nil {
			return err
		}
		var flat flatModel.FlatModel
		if err := tx.First(&flat, "flat_id = ?", b.AmenityBookingFlatID).Error; err != nil {
			return err
		}

		mode := expenseModel.PaymentModeCash
		if paymentMode != nil && *paymentMode != "" {
			mode = *paymentMode
		}

		now := time.Now()
		invoice := "AMB-" + strings.ToUpper(lastN(b.AmenityBookingID.String(), 8))
		description := fmt.Sprintf("Booking income: %s by flat %s (%s %s-%s)",
			amenity.AmenityName, flat.FlatNumber,
			b.AmenityBookingDate.Format("2006-01-02"),
			b.AmenityBookingStartTime, b.AmenityBookingEndTime)

		expense := expenseModel.ExpenseModel{
			ExpenseCategory:      expenseModel.ExpenseCategoryAmenityIncome,
			ExpenseDescription:   description,
			ExpenseAmount:        b.AmenityBookingTotalAmount,
			ExpenseInvoiceNumber: &invoice,
			ExpenseDate:          now.UTC().Truncate(24 * time.Hour),
			ExpensePaymentMode:   mode,
			ExpenseIsApproved:    true,
			ExpenseApprovedByID:  &actorID,
			ExpenseApprovedAt:    &now,
			ExpenseCreatedByID:   actorID,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		b.AmenityBookingPaymentStatus = m.PaymentStatusPaid
		b.AmenityBookingPaymentMode = &mode
		b.AmenityBookingExpenseID = &expense.ExpenseID
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		booking = b
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return booking, nil
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
