// file: internals/features/amenities/booking/dto/booking_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "societyhub_backend/internals/features/amenities/booking/model"
)

/* ===================== Response DTO ===================== */

type BookingAmenityDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Location *string   `json:"location,omitempty"`
}

type BookingFlatDTO struct {
	ID         uuid.UUID `json:"id"`
	FlatNumber string    `json:"flat_number"`
	Block      *string   `json:"block,omitempty"`
}

type BookingUserDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingDTO struct {
	ID             uuid.UUID `json:"id"`
	AmenityID      uuid.UUID `json:"amenity_id"`
	FlatID         uuid.UUID `json:"flat_id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Purpose        *string   `json:"purpose,omitempty"`
	AttendeesCount *int      `json:"attendees_count,omitempty"`
	BookingType    string    `json:"booking_type"`

	Amount          float64 `json:"amount"`
	SecurityDeposit float64 `json:"security_deposit"`
	TotalAmount     float64 `json:"total_amount"`

	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMode   *string `json:"payment_mode,omitempty"`

	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ExpenseID       *uuid.UUID `json:"expense_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`

	Amenity     *BookingAmenityDTO `json:"amenity,omitempty"`
	Flat        *BookingFlatDTO    `json:"flat,omitempty"`
	CreatedBy   *BookingUserDTO    `json:"created_by,omitempty"`
	ConfirmedBy *BookingUserDTO    `json:"confirmed_by,omitempty"`
}

func FromModel(b m.AmenityBookingModel) BookingDTO {
	out := BookingDTO{
		ID:              b.AmenityBookingID,
		AmenityID:       b.AmenityBookingAmenityID,
		FlatID:          b.AmenityBookingFlatID,
		Date:            b.AmenityBookingDate.Format("2006-01-02"),
		StartTime:       b.AmenityBookingStartTime,
		EndTime:         b.AmenityBookingEndTime,
		Purpose:         b.AmenityBookingPurpose,
		AttendeesCount:  b.AmenityBookingAttendeesCount,
		BookingType:     b.AmenityBookingType,
		Amount:          b.AmenityBookingAmount,
		SecurityDeposit: b.AmenityBookingSecurityDeposit,
		TotalAmount:     b.AmenityBookingTotalAmount,
		Status:          b.AmenityBookingStatus,
		PaymentStatus:   b.AmenityBookingPaymentStatus,
		PaymentMode:     b.AmenityBookingPaymentMode,
		RejectionReason: b.AmenityBookingRejectionReason,
		CancelReason:    b.AmenityBookingCancelReason,
		ConfirmedAt:     b.AmenityBookingConfirmedAt,
		CancelledAt:     b.AmenityBookingCancelledAt,
		CompletedAt:     b.AmenityBookingCompletedAt,
		ExpenseID:       b.AmenityBookingExpenseID,
		CreatedAt:       b.AmenityBookingCreatedAt,
	}
	if b.Amenity != nil {
		out.Amenity = &BookingAmenityDTO{
			ID:       b.Amenity.AmenityID,
			Name:     b.Amenity.AmenityName,
			Category: b.Amenity.AmenityCategory,
			Location: b.Amenity.AmenityLocation,
		}
	}
	if b.Flat != nil {
		out.Flat = &BookingFlatDTO{
			ID:         b.Flat.FlatID,
			FlatNumber: b.Flat.FlatNumber,
			Block:      b.Flat.FlatBlock,
		}
	}
	if b.CreatedBy != nil {
		out.CreatedBy = &BookingUserDTO{
			ID:    b.CreatedBy.UserID,
			Name:  b.CreatedBy.UserName,
			Email: b.CreatedBy.UserEmail,
		}
	}
	if b.ConfirmedBy != nil {
		out.ConfirmedBy = &BookingUserDTO{
			ID:    b.ConfirmedBy.UserID,
			Name:  b.ConfirmedBy.UserName,
			Email: b.ConfirmedBy.UserEmail,
		}
	}
	return out
}

func FromModelSlice(rows []m.AmenityBookingModel) []BookingDTO {
	out := make([]BookingDTO, 0, len(rows))
	for _, b := range rows {
		out = append(out, FromModel(b))
	}
	return out
}

/* ===================== Requests ===================== */

type CreateBookingRequest struct {
	AmenityID      string  `json:"amenity_id" validate:"required,uuid"`
	Date           string  `json:"date" validate:"required"`
	StartTime      string  `json:"start_time" validate:"required"`
	EndTime        string  `json:"end_time" validate:"required"`
	Purpose        *string `json:"purpose" validate:"omitempty,max=500"`
	AttendeesCount *int    `json:"attendees_count" validate:"omitempty,gte=1"`
	BookingType    string  `json:"booking_type" validate:"omitempty,oneof=HOURLY HALF_DAY FULL_DAY"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type PayBookingRequest struct {
	PaymentMode *string `json:"payment_mode" validate:"omitempty,oneof=CASH UPI CHEQUE BANK_TRANSFER"`
}
