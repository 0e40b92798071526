// file: internals/features/amenities/amenity/service/availability_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "societyhub_backend/internals/features/amenities/amenity/model"
	bookingModel "societyhub_backend/internals/features/amenities/booking/model"
	flatModel "societyhub_backend/internals/features/flats/model"
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
		&m.AmenityModel{},
		&bookingModel.AmenityBookingModel{},
	))
	return db
}

func TestOperatingWindowParsesJSON(t *testing.T) {
	w := OperatingWindow(datatypes.JSON(`{"start":"08:00","end":"20:00"}`))
	assert.Equal(t, "08:00", w.Start)
	assert.Equal(t, "20:00", w.End)
}

func TestOperatingWindowFallsBackToDefault(t *testing.T) {
	cases := []datatypes.JSON{
		nil,
		datatypes.JSON(``),
		datatypes.JSON(`not json`),
		datatypes.JSON(`{"start":"08:00"}`),
	}
	for _, raw := range cases {
		w := OperatingWindow(raw)
		assert.Equal(t, "06:00", w.Start)
		assert.Equal(t, "22:00", w.End)
	}
}

func TestBuildSlotsPartition(t *testing.T) {
	bookings := []bookingModel.AmenityBookingModel{
		{AmenityBookingStartTime: "10:00", AmenityBookingEndTime: "12:00"},
	}
	slots := BuildSlots(6, 22, bookings)
	require.Len(t, slots, 16)

	// contiguous hourly partition over the window
	for i, s := range slots {
		if i > 0 {
			assert.Equal(t, slots[i-1].End, s.Start)
		}
	}
	assert.Equal(t, "06:00", slots[0].Start)
	assert.Equal(t, "22:00", slots[len(slots)-1].End)

	for _, s := range slots {
		switch s.Start {
		case "10:00", "11:00":
			assert.False(t, s.Available, "slot %s should be booked", s.Start)
		default:
			assert.True(t, s.Available, "slot %s should be free", s.Start)
		}
	}
}

func TestBuildSlotsFullyBookedWindow(t *testing.T) {
	bookings := []bookingModel.AmenityBookingModel{
		{AmenityBookingStartTime: "06:00", AmenityBookingEndTime: "22:00"},
	}
	for _, s := range BuildSlots(6, 22, bookings) {
		assert.False(t, s.Available)
	}
}

func TestCheckAvailability(t *testing.T) {
	db := newTestDB(t)

	flat := flatModel.FlatModel{FlatNumber: "B-204"}
	require.NoError(t, db.Create(&flat).Error)

	amenity := m.AmenityModel{
		AmenityName:           "Clubhouse",
		AmenityCategory:       m.AmenityCategoryClubhouse,
		AmenityOperatingHours: datatypes.JSON(`{"start":"08:00","end":"12:00"}`),
		AmenityIsActive:       true,
	}
	require.NoError(t, db.Create(&amenity).Error)

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	mk := func(start, end, status string) {
		b := bookingModel.AmenityBookingModel{
			AmenityBookingAmenityID: amenity.AmenityID,
			AmenityBookingFlatID:    flat.FlatID,
			AmenityBookingDate:      date,
			AmenityBookingStartTime: start,
			AmenityBookingEndTime:   end,
			AmenityBookingType:      bookingModel.BookingTypeHourly,
			AmenityBookingStatus:    status,
			AmenityBookingCreatedByID: uuid.New(),
		}
		require.NoError(t, db.Create(&b).Error)
	}
	mk("08:00", "10:00", bookingModel.BookingStatusConfirmed)
	mk("10:00", "11:00", bookingModel.BookingStatusCancelled)
	mk("11:00", "12:00", bookingModel.BookingStatusRejected)

	out, err := CheckAvailability(db, amenity.AmenityID, date, "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, "Clubhouse", out.AmenityName)
	assert.Equal(t, "2026-09-10", out.Date)
	assert.Equal(t, "08:00", out.OperatingHours.Start)

	// cancelled and rejected bookings never block slots
	require.Len(t, out.BookedSlots, 1)
	assert.Equal(t, "08:00", out.BookedSlots[0].StartTime)
	require.NotNil(t, out.BookedSlots[0].FlatNumber)
	assert.Equal(t, "B-204", *out.BookedSlots[0].FlatNumber)

	require.Len(t, out.AvailableSlots, 4)
	free := 0
	for _, s := range out.AvailableSlots {
		if s.Available {
			free++
		}
	}
	assert.Equal(t, 2, free)
	assert.False(t, out.IsFullyBooked)
}

func TestCheckAvailabilityUnknownAmenity(t *testing.T) {
	db := newTestDB(t)

	_, err := CheckAvailability(db, uuid.New(), time.Now().UTC(), "2026-09-10")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestCheckAvailabilityFullyBooked(t *testing.T) {
	db := newTestDB(t)

	flat := flatModel.FlatModel{FlatNumber: "C-301"}
	require.NoError(t, db.Create(&flat).Error)
	amenity := m.AmenityModel{
		AmenityName:           "Guest Room",
		AmenityCategory:       m.AmenityCategoryGuestRoom,
		AmenityOperatingHours: datatypes.JSON(`{"start":"09:00","end":"11:00"}`),
		AmenityIsActive:       true,
	}
	require.NoError(t, db.Create(&amenity).Error)

	date := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	b := bookingModel.AmenityBookingModel{
		AmenityBookingAmenityID: amenity.AmenityID,
		AmenityBookingFlatID:    flat.FlatID,
		AmenityBookingDate:      date,
		AmenityBookingStartTime: "09:00",
		AmenityBookingEndTime:   "11:00",
		AmenityBookingType:      bookingModel.BookingTypeHourly,
		AmenityBookingStatus:    bookingModel.BookingStatusConfirmed,
		AmenityBookingCreatedByID: uuid.New(),
	}
	require.NoError(t, db.Create(&b).Error)

	out, err := CheckAvailability(db, amenity.AmenityID, date, "2026-09-11")
	require.NoError(t, err)
	assert.True(t, out.IsFullyBooked)
}
