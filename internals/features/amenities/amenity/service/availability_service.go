// file: internals/features/amenities/amenity/service/availability_service.go
package service

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "societyhub_backend/internals/features/amenities/amenity/dto"
	m "societyhub_backend/internals/features/amenities/amenity/model"
	bookingModel "societyhub_backend/internals/features/amenities/booking/model"
	helper "societyhub_backend/internals/helpers"
)

// Default operating window when the amenity has none stored (or it fails to
// parse): 06:00–22:00.
var defaultOperatingHours = dto.OperatingHoursDTO{Start: "06:00", End: "22:00"}

// OperatingWindow decodes the stored operating-hours JSON, falling back to the
// default window on any parse problem.
func OperatingWindow(raw datatypes.JSON) dto.OperatingHoursDTO {
	if len(raw) == 0 {
		return defaultOperatingHours
	}
	var oh dto.OperatingHoursDTO
	if err := sonic.Unmarshal(raw, &oh); err != nil || oh.Start == "" || oh.End == "" {
		return defaultOperatingHours
	}
	return oh
}

// BuildSlots partitions [startHour, endHour) into contiguous 1-hour slots.
// A slot at hour H is unavailable iff some booking's [start, end) contains H.
func BuildSlots(startHour, endHour int, bookings []bookingModel.AmenityBookingModel) []dto.TimeSlotDTO {
	n := endHour - startHour
	if n < 0 {
		n = 0
	}
	slots := make([]dto.TimeSlotDTO, 0, n)
	for hour := startHour; hour < endHour; hour++ {
		booked := false
		for _, b := range bookings {
			bStart := helper.HourOf(b.AmenityBookingStartTime)
			bEnd := helper.HourOf(b.AmenityBookingEndTime)
			if hour >= bStart && hour < bEnd {
				booked = true
				break
			}
		}
		slots = append(slots, dto.TimeSlotDTO{
			Start:     helper.FormatHour(hour),
			End:       helper.FormatHour(hour + 1),
			Available: !booked,
		})
	}
	return slots
}

// CheckAvailability builds the full slot table for one amenity on one date.
func CheckAvailability(db *gorm.DB, amenityID uuid.UUID, date time.Time, dateStr string) (*dto.AvailabilityResponse, error) {
	var amenity m.AmenityModel
	if err := db.First(&amenity, "amenity_id = ?", amenityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Amenity not found")
		}
		return nil, err
	}

	var bookings []bookingModel.AmenityBookingModel
	if err := db.
		Preload("Flat").
		Where("amenity_booking_amenity_id = ? AND amenity_booking_date = ? AND amenity_booking_status NOT IN ?",
			amenityID, date, bookingModel.TerminalStatuses).
		Order("amenity_booking_start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	hours := OperatingWindow(amenity.AmenityOperatingHours)
	slots := BuildSlots(helper.HourOf(hours.Start), helper.HourOf(hours.End), bookings)

	booked := make([]dto.BookedSlotDTO, 0, len(bookings))
	for _, b := range bookings {
		slot := dto.BookedSlotDTO{
			ID:          b.AmenityBookingID,
			StartTime:   b.AmenityBookingStartTime,
			EndTime:     b.AmenityBookingEndTime,
			Status:      b.AmenityBookingStatus,
			BookingType: b.AmenityBookingType,
		}
		if b.Flat != nil {
			slot.FlatNumber = &b.Flat.FlatNumber
		}
		booked = append(booked, slot)
	}

	fullyBooked := true
	for _, s := range slots {
		if s.Available {
			fullyBooked = false
			break
		}
	}

	return &dto.AvailabilityResponse{
		AmenityID:      amenityID,
		AmenityName:    amenity.AmenityName,
		Date:           dateStr,
		OperatingHours: hours,
		BookedSlots:    booked,
		AvailableSlots: slots,
		IsFullyBooked:  fullyBooked,
	}, nil
}
