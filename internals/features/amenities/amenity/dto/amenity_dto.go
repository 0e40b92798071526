// file: internals/features/amenities/amenity/dto/amenity_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "societyhub_backend/internals/features/amenities/amenity/model"
)

/* =========================================================
   Response DTO
========================================================= */

type AmenityDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Location    *string   `json:"location,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`

	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	HalfDayRate     *float64 `json:"half_day_rate,omitempty"`
	FullDayRate     *float64 `json:"full_day_rate,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`

	Rules    *string `json:"rules,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`

	OperatingHours datatypes.JSON `json:"operating_hours,omitempty"`

	AdvanceBookingDays int  `json:"advance_booking_days"`
	MinBookingHours    int  `json:"min_booking_hours"`
	MaxBookingHours    int  `json:"max_booking_hours"`
	RequiresApproval   bool `json:"requires_approval"`
	IsActive           bool `json:"is_active"`

	BookingsCount *int64 `json:"bookings_count,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(a m.AmenityModel) AmenityDTO {
	return AmenityDTO{
		ID:                 a.AmenityID,
		Name:               a.AmenityName,
		Description:        a.AmenityDescription,
		Category:           a.AmenityCategory,
		Location:           a.AmenityLocation,
		Capacity:           a.AmenityCapacity,
		HourlyRate:         a.AmenityHourlyRate,
		HalfDayRate:        a.AmenityHalfDayRate,
		FullDayRate:        a.AmenityFullDayRate,
		SecurityDeposit:    a.AmenitySecurityDeposit,
		Rules:              a.AmenityRules,
		ImageURL:           a.AmenityImageURL,
		OperatingHours:     a.AmenityOperatingHours,
		AdvanceBookingDays: a.AmenityAdvanceBookingDays,
		MinBookingHours:    a.AmenityMinBookingHours,
		MaxBookingHours:    a.AmenityMaxBookingHours,
		RequiresApproval:   a.AmenityRequiresApproval,
		IsActive:           a.AmenityIsActive,
		CreatedAt:          a.AmenityCreatedAt,
		UpdatedAt:          a.AmenityUpdatedAt,
	}
}

func FromModelSlice(xs []m.AmenityModel) []AmenityDTO {
	out := make([]AmenityDTO, 0, len(xs))
	for _, it := range xs {
		out = append(out, FromModel(it))
	}
	return out
}

/* =========================================================
   Create / Update Requests
========================================================= */

type CreateAmenityRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category" validate:"required,max=30"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gt=0"`

	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	HalfDayRate     *float64 `json:"half_day_rate,omitempty" validate:"omitempty,gte=0"`
	FullDayRate     *float64 `json:"full_day_rate,omitempty" validate:"omitempty,gte=0"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`

	Rules    *string `json:"rules,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`

	OperatingHours datatypes.JSON `json:"operating_hours,omitempty"`

	AdvanceBookingDays *int  `json:"advance_booking_days,omitempty" validate:"omitempty,gt=0"`
	MinBookingHours    *int  `json:"min_booking_hours,omitempty" validate:"omitempty,gt=0"`
	MaxBookingHours    *int  `json:"max_booking_hours,omitempty" validate:"omitempty,gt=0"`
	RequiresApproval   *bool `json:"requires_approval,omitempty"`
}

func (r CreateAmenityRequest) ToModel() m.AmenityModel {
	out := m.AmenityModel{
		AmenityName:               r.Name,
		AmenityDescription:        r.Description,
		AmenityCategory:           r.Category,
		AmenityLocation:           r.Location,
		AmenityCapacity:           r.Capacity,
		AmenityHourlyRate:         r.HourlyRate,
		AmenityHalfDayRate:        r.HalfDayRate,
		AmenityFullDayRate:        r.FullDayRate,
		AmenitySecurityDeposit:    r.SecurityDeposit,
		AmenityRules:              r.Rules,
		AmenityImageURL:           r.ImageURL,
		AmenityOperatingHours:     r.OperatingHours,
		AmenityAdvanceBookingDays: 30,
		AmenityMinBookingHours:    1,
		AmenityMaxBookingHours:    8,
		AmenityIsActive:           true,
	}
	if r.AdvanceBookingDays != nil {
		out.AmenityAdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingHours != nil {
		out.AmenityMinBookingHours = *r.MinBookingHours
	}
	if r.MaxBookingHours != nil {
		out.AmenityMaxBookingHours = *r.MaxBookingHours
	}
	if r.RequiresApproval != nil {
		out.AmenityRequiresApproval = *r.RequiresApproval
	}
	return out
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=30"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gt=0"`

	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gte=0"`
	HalfDayRate     *float64 `json:"half_day_rate,omitempty" validate:"omitempty,gte=0"`
	FullDayRate     *float64 `json:"full_day_rate,omitempty" validate:"omitempty,gte=0"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty" validate:"omitempty,gte=0"`

	Rules    *string `json:"rules,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`

	OperatingHours datatypes.JSON `json:"operating_hours,omitempty"`

	AdvanceBookingDays *int  `json:"advance_booking_days,omitempty" validate:"omitempty,gt=0"`
	MinBookingHours    *int  `json:"min_booking_hours,omitempty" validate:"omitempty,gt=0"`
	MaxBookingHours    *int  `json:"max_booking_hours,omitempty" validate:"omitempty,gt=0"`
	RequiresApproval   *bool `json:"requires_approval,omitempty"`
	IsActive           *bool `json:"is_active,omitempty"`
}

// ApplyToModel patches only the provided fields.
func (r UpdateAmenityRequest) ApplyToModel(a *m.AmenityModel) {
	if r.Name != nil {
		a.AmenityName = *r.Name
	}
	if r.Description != nil {
		a.AmenityDescription = r.Description
	}
	if r.Category != nil {
		a.AmenityCategory = *r.Category
	}
	if r.Location != nil {
		a.AmenityLocation = r.Location
	}
	if r.Capacity != nil {
		a.AmenityCapacity = r.Capacity
	}
	if r.HourlyRate != nil {
		a.AmenityHourlyRate = r.HourlyRate
	}
	if r.HalfDayRate != nil {
		a.AmenityHalfDayRate = r.HalfDayRate
	}
	if r.FullDayRate != nil {
		a.AmenityFullDayRate = r.FullDayRate
	}
	if r.SecurityDeposit != nil {
		a.AmenitySecurityDeposit = r.SecurityDeposit
	}
	if r.Rules != nil {
		a.AmenityRules = r.Rules
	}
	if r.ImageURL != nil {
		a.AmenityImageURL = r.ImageURL
	}
	if len(r.OperatingHours) > 0 {
		a.AmenityOperatingHours = r.OperatingHours
	}
	if r.AdvanceBookingDays != nil {
		a.AmenityAdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MinBookingHours != nil {
		a.AmenityMinBookingHours = *r.MinBookingHours
	}
	if r.MaxBookingHours != nil {
		a.AmenityMaxBookingHours = *r.MaxBookingHours
	}
	if r.RequiresApproval != nil {
		a.AmenityRequiresApproval = *r.RequiresApproval
	}
	if r.IsActive != nil {
		a.AmenityIsActive = *r.IsActive
	}
}
