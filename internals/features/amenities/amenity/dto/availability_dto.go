// file: internals/features/amenities/amenity/dto/availability_dto.go
package dto

import (
	"github.com/google/uuid"
)

type OperatingHoursDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookedSlotDTO is one non-cancelled/non-rejected booking on the requested day.
type BookedSlotDTO struct {
	ID          uuid.UUID `json:"id"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	BookingType string    `json:"booking_type"`
	FlatNumber  *string   `json:"flat_number,omitempty"`
}

type TimeSlotDTO struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	AmenityID      uuid.UUID         `json:"amenity_id"`
	AmenityName    string            `json:"amenity_name"`
	Date           string            `json:"date"`
	OperatingHours OperatingHoursDTO `json:"operating_hours"`
	BookedSlots    []BookedSlotDTO   `json:"booked_slots"`
	AvailableSlots []TimeSlotDTO     `json:"available_slots"`
	IsFullyBooked  bool              `json:"is_fully_booked"`
}
