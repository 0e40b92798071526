// file: internals/features/amenities/amenity/model/amenity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Category Constants ===================== */

const (
	AmenityCategoryClubhouse     = "CLUBHOUSE"
	AmenityCategoryPartyHall     = "PARTY_HALL"
	AmenityCategoryGarden        = "GARDEN"
	AmenityCategoryGuestRoom     = "GUEST_ROOM"
	AmenityCategoryTerrace       = "TERRACE"
	AmenityCategoryGym           = "GYM"
	AmenityCategorySwimmingPool  = "SWIMMING_POOL"
	AmenityCategorySportsCourt   = "SPORTS_COURT"
	AmenityCategoryCommunityHall = "COMMUNITY_HALL"
	AmenityCategoryOther         = "OTHER"
)

/* ===================== Model ===================== */

type AmenityModel struct {
	// PK
	AmenityID uuid.UUID `json:"amenity_id" gorm:"type:uuid;primaryKey;column:amenity_id"`

	AmenityName        string  `json:"amenity_name" gorm:"type:varchar(100);not null;uniqueIndex;column:amenity_name"`
	AmenityDescription *string `json:"amenity_description" gorm:"type:text;column:amenity_description"`
	AmenityCategory    string  `json:"amenity_category" gorm:"type:varchar(30);not null;column:amenity_category"`
	AmenityLocation    *string `json:"amenity_location" gorm:"type:varchar(120);column:amenity_location"`
	AmenityCapacity    *int    `json:"amenity_capacity" gorm:"type:integer;column:amenity_capacity"`

	// Pricing tiers; any tier may be unset
	AmenityHourlyRate      *float64 `json:"amenity_hourly_rate" gorm:"type:numeric(12,2);column:amenity_hourly_rate"`
	AmenityHalfDayRate     *float64 `json:"amenity_half_day_rate" gorm:"type:numeric(12,2);column:amenity_half_day_rate"`
	AmenityFullDayRate     *float64 `json:"amenity_full_day_rate" gorm:"type:numeric(12,2);column:amenity_full_day_rate"`
	AmenitySecurityDeposit *float64 `json:"amenity_security_deposit" gorm:"type:numeric(12,2);column:amenity_security_deposit"`

	AmenityRules    *string `json:"amenity_rules" gorm:"type:text;column:amenity_rules"`
	AmenityImageURL *string `json:"amenity_image_url" gorm:"type:text;column:amenity_image_url"`

	// {"start":"06:00","end":"22:00"}; availability falls back to the default
	// window when this is missing or unparseable
	AmenityOperatingHours datatypes.JSON `json:"amenity_operating_hours" gorm:"type:jsonb;column:amenity_operating_hours"`

	AmenityAdvanceBookingDays int `json:"amenity_advance_booking_days" gorm:"type:integer;not null;default:30;column:amenity_advance_booking_days"`
	AmenityMinBookingHours    int `json:"amenity_min_booking_hours" gorm:"type:integer;not null;default:1;column:amenity_min_booking_hours"`
	AmenityMaxBookingHours    int `json:"amenity_max_booking_hours" gorm:"type:integer;not null;default:8;column:amenity_max_booking_hours"`

	AmenityRequiresApproval bool `json:"amenity_requires_approval" gorm:"not null;default:false;column:amenity_requires_approval"`

	// Lifecycle flag, never hard-deleted: historical bookings keep valid refs
	AmenityIsActive bool `json:"amenity_is_active" gorm:"not null;default:true;column:amenity_is_active"`

	// Timestamps
	AmenityCreatedAt time.Time `json:"amenity_created_at" gorm:"not null;autoCreateTime;column:amenity_created_at"`
	AmenityUpdatedAt time.Time `json:"amenity_updated_at" gorm:"not null;autoUpdateTime;column:amenity_updated_at"`
}

func (AmenityModel) TableName() string { return "amenities" }

func (m *AmenityModel) BeforeCreate(tx *gorm.DB) error {
	if m.AmenityID == uuid.Nil {
		m.AmenityID = uuid.New()
	}
	return nil
}
