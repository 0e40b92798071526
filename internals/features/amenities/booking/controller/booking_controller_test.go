// file: internals/features/amenities/booking/controller/booking_controller_test.go
package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"societyhub_backend/internals/constants"
	amenityModel "societyhub_backend/internals/features/amenities/amenity/model"
	m "societyhub_backend/internals/features/amenities/booking/model"
	flatModel "societyhub_backend/internals/features/flats/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	app.Use(func(c *fiber.Ctx) error {
		if id := c.Get("X-Test-User"); id != "" {
			c.Locals("user_id", id)
		}
		if role := c.Get("X-Test-Role"); role != "" {
			c.Locals("user_role", role)
		}
		if flat := c.Get("X-Test-Flat"); flat != "" {
			c.Locals("flat_id", flat)
		}
		return c.Next()
	})
	ctl := NewBookingController(db)
	app.Get("/api/amenity-bookings", ctl.List)
	app.Get("/api/amenity-bookings/:id", ctl.GetByID)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string, flatID uuid.UUID) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:     "Test " + role,
		UserEmail:    uuid.NewString() + "@example.com",
		UserPassword: "x",
		UserRole:     role,
		UserFlatID:   &flatID,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedBooking(t *testing.T, db *gorm.DB, amenityID, flatID, creatorID uuid.UUID) m.AmenityBookingModel {
	t.Helper()
	b := m.AmenityBookingModel{
		AmenityBookingAmenityID:     amenityID,
		AmenityBookingFlatID:        flatID,
		AmenityBookingDate:          time.Now().UTC().AddDate(0, 0, 2).Truncate(24 * time.Hour),
		AmenityBookingStartTime:     "10:00",
		AmenityBookingEndTime:       "12:00",
		AmenityBookingType:          m.BookingTypeHourly,
		AmenityBookingStatus:        m.BookingStatusConfirmed,
		AmenityBookingPaymentStatus: m.PaymentStatusUnpaid,
		AmenityBookingCreatedByID:   creatorID,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func get(t *testing.T, app *fiber.App, path string, u userModel.UserModel) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	req.Header.Set("X-Test-User", u.UserID.String())
	req.Header.Set("X-Test-Role", u.UserRole)
	if u.UserFlatID != nil {
		req.Header.Set("X-Test-Flat", u.UserFlatID.String())
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, sonic.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func TestListScopesResidentsToOwnBookings(t *testing.T) {
	app, db := newTestApp(t)

	flat := flatModel.FlatModel{FlatNumber: "A-101"}
	require.NoError(t, db.Create(&flat).Error)
	amenity := amenityModel.AmenityModel{
		AmenityName:     "Party Hall",
		AmenityCategory: amenityModel.AmenityCategoryPartyHall,
		AmenityIsActive: true,
	}
	require.NoError(t, db.Create(&amenity).Error)

	resident := seedUser(t, db, constants.RoleResident, flat.FlatID)
	housemate := seedUser(t, db, constants.RoleTenant, flat.FlatID)
	committee := seedUser(t, db, constants.RoleCommittee, flat.FlatID)

	mine := seedBooking(t, db, amenity.AmenityID, flat.FlatID, resident.UserID)
	seedBooking(t, db, amenity.AmenityID, flat.FlatID, housemate.UserID)

	// even within the same flat, a resident only sees what they created
	resp, payload := get(t, app, "/api/amenity-bookings", resident)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := payload["data"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.AmenityBookingID.String(), rows[0].(map[string]any)["id"])

	// committee sees the whole calendar
	resp, payload = get(t, app, "/api/amenity-bookings", committee)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, payload["data"].([]any), 2)

	// my_bookings narrows a committee member to their own
	resp, payload = get(t, app, "/api/amenity-bookings?my_bookings=true", committee)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, payload["data"].([]any), 0)
}

func TestGetByIDOwnership(t *testing.T) {
	app, db := newTestApp(t)

	flat := flatModel.FlatModel{FlatNumber: "B-204"}
	require.NoError(t, db.Create(&flat).Error)
	amenity := amenityModel.AmenityModel{
		AmenityName:     "Gym",
		AmenityCategory: amenityModel.AmenityCategoryGym,
		AmenityIsActive: true,
	}
	require.NoError(t, db.Create(&amenity).Error)

	owner := seedUser(t, db, constants.RoleResident, flat.FlatID)
	housemate := seedUser(t, db, constants.RoleTenant, flat.FlatID)
	committee := seedUser(t, db, constants.RoleCommittee, flat.FlatID)
	booking := seedBooking(t, db, amenity.AmenityID, flat.FlatID, owner.UserID)

	resp, _ := get(t, app, "/api/amenity-bookings/"+booking.AmenityBookingID.String(), owner)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// sharing a flat does not grant access to someone else's booking
	resp, _ = get(t, app, "/api/amenity-bookings/"+booking.AmenityBookingID.String(), housemate)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = get(t, app, "/api/amenity-bookings/"+booking.AmenityBookingID.String(), committee)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
