// file: internals/features/amenities/booking/model/amenity_booking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amenityModel "societyhub_backend/internals/features/amenities/amenity/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

/* ===================== Status Constants ===================== */

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusRejected  = "REJECTED"
)

const (
	PaymentStatusUnpaid   = "UNPAID"
	PaymentStatusPaid     = "PAID"
	PaymentStatusRefunded = "REFUNDED"
)

const (
	BookingTypeHourly  = "HOURLY"
	BookingTypeHalfDay = "HALF_DAY"
	BookingTypeFullDay = "FULL_DAY"
)

// TerminalStatuses never collide with new bookings and never leave their state.
var TerminalStatuses = []string{BookingStatusCancelled, BookingStatusRejected}

/* ===================== Model ===================== */

type AmenityBookingModel struct {
	// PK
	AmenityBookingID uuid.UUID `json:"amenity_booking_id" gorm:"type:uuid;primaryKey;column:amenity_booking_id"`

	// Refs
	AmenityBookingAmenityID uuid.UUID `json:"amenity_booking_amenity_id" gorm:"type:uuid;not null;index:idx_amenity_bookings_amenity_date;column:amenity_booking_amenity_id"`
	AmenityBookingFlatID    uuid.UUID `json:"amenity_booking_flat_id" gorm:"type:uuid;not null;column:amenity_booking_flat_id"`

	// Slot. Times are hour-granular "HH:MM" strings; minutes are parsed away
	// everywhere by contract.
	AmenityBookingDate      time.Time `json:"amenity_booking_date" gorm:"type:date;not null;index:idx_amenity_bookings_amenity_date;column:amenity_booking_date"`
	AmenityBookingStartTime string    `json:"amenity_booking_start_time" gorm:"type:varchar(5);not null;column:amenity_booking_start_time"`
	AmenityBookingEndTime   string    `json:"amenity_booking_end_time" gorm:"type:varchar(5);not null;column:amenity_booking_end_time"`

	AmenityBookingPurpose        *string `json:"amenity_booking_purpose" gorm:"type:text;column:amenity_booking_purpose"`
	AmenityBookingAttendeesCount *int    `json:"amenity_booking_attendees_count" gorm:"type:integer;column:amenity_booking_attendees_count"`

	// HOURLY | HALF_DAY | FULL_DAY
	AmenityBookingType string `json:"amenity_booking_type" gorm:"type:varchar(20);not null;default:HOURLY;column:amenity_booking_type"`

	// Computed at creation
	AmenityBookingAmount          float64 `json:"amenity_booking_amount" gorm:"type:numeric(12,2);not null;default:0;column:amenity_booking_amount"`
	AmenityBookingSecurityDeposit float64 `json:"amenity_booking_security_deposit" gorm:"type:numeric(12,2);not null;default:0;column:amenity_booking_security_deposit"`
	AmenityBookingTotalAmount     float64 `json:"amenity_booking_total_amount" gorm:"type:numeric(12,2);not null;default:0;column:amenity_booking_total_amount"`

	AmenityBookingStatus        string  `json:"amenity_booking_status" gorm:"type:varchar(20);not null;default:PENDING;column:amenity_booking_status"`
	AmenityBookingPaymentStatus string  `json:"amenity_booking_payment_status" gorm:"type:varchar(20);not null;default:UNPAID;column:amenity_booking_payment_status"`
	AmenityBookingPaymentMode   *string `json:"amenity_booking_payment_mode" gorm:"type:varchar(20);column:amenity_booking_payment_mode"`

	// Actors & lifecycle timestamps
	AmenityBookingCreatedByID   uuid.UUID  `json:"amenity_booking_created_by_id" gorm:"type:uuid;not null;index;column:amenity_booking_created_by_id"`
	AmenityBookingConfirmedByID *uuid.UUID `json:"amenity_booking_confirmed_by_id" gorm:"type:uuid;column:amenity_booking_confirmed_by_id"`
	AmenityBookingConfirmedAt   *time.Time `json:"amenity_booking_confirmed_at" gorm:"column:amenity_booking_confirmed_at"`
	AmenityBookingCancelledAt   *time.Time `json:"amenity_booking_cancelled_at" gorm:"column:amenity_booking_cancelled_at"`
	AmenityBookingCompletedAt   *time.Time `json:"amenity_booking_completed_at" gorm:"column:amenity_booking_completed_at"`

	AmenityBookingRejectionReason *string `json:"amenity_booking_rejection_reason" gorm:"type:text;column:amenity_booking_rejection_reason"`
	AmenityBookingCancelReason    *string `json:"amenity_booking_cancel_reason" gorm:"type:text;column:amenity_booking_cancel_reason"`

	// Set once the booking is marked paid
	AmenityBookingExpenseID *uuid.UUID `json:"amenity_booking_expense_id" gorm:"type:uuid;column:amenity_booking_expense_id"`

	// Timestamps
	AmenityBookingCreatedAt time.Time `json:"amenity_booking_created_at" gorm:"not null;autoCreateTime;column:amenity_booking_created_at"`
	AmenityBookingUpdatedAt time.Time `json:"amenity_booking_updated_at" gorm:"not null;autoUpdateTime;column:amenity_booking_updated_at"`

	/* ========== Relations (optional) ========== */
	Amenity     *amenityModel.AmenityModel `json:"amenity,omitempty" gorm:"foreignKey:AmenityBookingAmenityID;references:AmenityID"`
	Flat        *flatModel.FlatModel       `json:"flat,omitempty" gorm:"foreignKey:AmenityBookingFlatID;references:FlatID"`
	CreatedBy   *userModel.UserModel       `json:"created_by,omitempty" gorm:"foreignKey:AmenityBookingCreatedByID;references:UserID"`
	ConfirmedBy *userModel.UserModel       `json:"confirmed_by,omitempty" gorm:"foreignKey:AmenityBookingConfirmedByID;references:UserID"`
}

func (AmenityBookingModel) TableName() string { return "amenity_bookings" }

func (m *AmenityBookingModel) BeforeCreate(tx *gorm.DB) error {
	if m.AmenityBookingID == uuid.Nil {
		m.AmenityBookingID = uuid.New()
	}
	return nil
}
