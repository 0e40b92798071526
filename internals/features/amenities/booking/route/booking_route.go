// file: internals/features/amenities/booking/route/booking_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/amenities/booking/controller"
	"societyhub_backend/internals/middlewares/auth"
)

// BookingRoutes mounts /amenity-bookings under an already-authenticated group.
// Review transitions (confirm/reject/complete/pay) are committee-only;
// cancellation stays open to the owner and is enforced in the service.
func BookingRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewBookingController(db)

	r := api.Group("/amenity-bookings")
	r.Get("/", auth.RequirePermission(constants.ResBookings, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResBookings, constants.ActionRead), ctl.GetByID)
	r.Post("/", auth.RequirePermission(constants.ResBookings, constants.ActionCreate), ctl.Create)
	r.Patch("/:id/cancel", auth.RequirePermission(constants.ResBookings, constants.ActionUpdate), ctl.Cancel)
	r.Patch("/:id/confirm", auth.RequirePermission(constants.ResBookings, constants.ActionReview), ctl.Confirm)
	r.Patch("/:id/reject", auth.RequirePermission(constants.ResBookings, constants.ActionReview), ctl.Reject)
	r.Patch("/:id/complete", auth.RequirePermission(constants.ResBookings, constants.ActionReview), ctl.Complete)
	r.Patch("/:id/pay", auth.RequirePermission(constants.ResBookings, constants.ActionReview), ctl.Pay)
}
