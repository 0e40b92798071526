// file: internals/features/amenities/booking/controller/booking_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	"societyhub_backend/internals/features/amenities/booking/dto"
	m "societyhub_backend/internals/features/amenities/booking/model"
	svc "societyhub_backend/internals/features/amenities/booking/service"
	helper "societyhub_backend/internals/helpers"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Println("[ERROR]", fallback+":", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

/* ===================== Read ===================== */

// GET /api/amenity-bookings?status=&amenity_id=&date_from=&date_to=&my_bookings=&page=&per_page=
//
// Residents and tenants only ever see bookings they created; committee
// members see everything unless they ask for my_bookings=true.
func (ctl *BookingController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.Context()).Model(&m.AmenityBookingModel{})

	if !constants.Can(role, constants.ResBookings, constants.ActionReadAll) || c.Query("my_bookings") == "true" {
		tx = tx.Where("amenity_booking_created_by_id = ?", userID)
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" && status != "all" {
		tx = tx.Where("amenity_booking_status = ?", strings.ToUpper(status))
	}
	if raw := c.Query("amenity_id"); raw != "" {
		amenityID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid amenity ID")
		}
		tx = tx.Where("amenity_booking_amenity_id = ?", amenityID)
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_from format. Use YYYY-MM-DD")
		}
		tx = tx.Where("amenity_booking_date >= ?", from)
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date_to format. Use YYYY-MM-DD")
		}
		tx = tx.Where("amenity_booking_date <= ?", to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Println("[ERROR] failed to count bookings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	var rows []m.AmenityBookingModel
	if err := tx.
		Preload("Amenity").Preload("Flat").Preload("CreatedBy").
		Order("amenity_booking_date DESC, amenity_booking_start_time DESC").
		Offset(paging.Offset).Limit(paging.PerPage).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] failed to list bookings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch bookings")
	}

	return helper.JsonList(c, "ok", dto.FromModelSlice(rows), helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/amenity-bookings/:id
func (ctl *BookingController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var booking m.AmenityBookingModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Amenity").Preload("Flat").Preload("CreatedBy").Preload("ConfirmedBy").
		First(&booking, "amenity_booking_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch booking")
	}

	if !constants.IsCommittee(role) && booking.AmenityBookingCreatedByID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own bookings")
	}

	return helper.JsonOK(c, "ok", dto.FromModel(booking))
}

/* ===================== Create ===================== */

// POST /api/amenity-bookings
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	flatID := helper.GetFlatIDFromToken(c)

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	booking, err := svc.CreateBooking(ctl.DB.WithContext(c.Context()), userID, flatID, req)
	if err != nil {
		return respondServiceError(c, err, "Failed to create booking")
	}

	return helper.JsonCreated(c, "Booking created", dto.FromModel(*booking))
}

/* ===================== Transitions ===================== */

// PATCH /api/amenity-bookings/:id/confirm (COMMITTEE/ADMIN)
func (ctl *BookingController) Confirm(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	booking, err := svc.ConfirmBooking(ctl.DB.WithContext(c.Context()), id, userID)
	if err != nil {
		return respondServiceError(c, err, "Failed to confirm booking")
	}
	return helper.JsonUpdated(c, "Booking confirmed", dto.FromModel(*booking))
}

// PATCH /api/amenity-bookings/:id/reject (COMMITTEE/ADMIN)
func (ctl *BookingController) Reject(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.RejectBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	booking, err := svc.RejectBooking(ctl.DB.WithContext(c.Context()), id, userID, req.Reason)
	if err != nil {
		return respondServiceError(c, err, "Failed to reject booking")
	}
	return helper.JsonUpdated(c, "Booking rejected", dto.FromModel(*booking))
}

// PATCH /api/amenity-bookings/:id/cancel (owner or COMMITTEE/ADMIN)
func (ctl *BookingController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.CancelBookingRequest
	// body is optional for cancellation
	_ = c.BodyParser(&req)

	booking, err := svc.CancelBooking(ctl.DB.WithContext(c.Context()), id, userID, role, req.Reason)
	if err != nil {
		return respondServiceError(c, err, "Failed to cancel booking")
	}
	return helper.JsonUpdated(c, "Booking cancelled", dto.FromModel(*booking))
}

// PATCH /api/amenity-bookings/:id/complete (COMMITTEE/ADMIN)
func (ctl *BookingController) Complete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	booking, err := svc.CompleteBooking(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		return respondServiceError(c, err, "Failed to complete booking")
	}
	return helper.JsonUpdated(c, "Booking completed", dto.FromModel(*booking))
}

// PATCH /api/amenity-bookings/:id/pay (COMMITTEE/ADMIN)
func (ctl *BookingController) Pay(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid booking ID")
	}

	var req dto.PayBookingRequest
	_ = c.BodyParser(&req)
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	booking, err := svc.MarkBookingPaid(ctl.DB.WithContext(c.Context()), id, userID, req.PaymentMode)
	if err != nil {
		return respondServiceError(c, err, "Failed to record payment")
	}
	return helper.JsonUpdated(c, "Payment recorded", dto.FromModel(*booking))
}
