// file: internals/features/amenities/amenity/route/amenity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/amenities/amenity/controller"
	"societyhub_backend/internals/middlewares/auth"
)

// AmenityRoutes mounts /amenities under an already-authenticated group.
func AmenityRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAmenityController(db)

	r := api.Group("/amenities")
	r.Get("/", auth.RequirePermission(constants.ResAmenities, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResAmenities, constants.ActionRead), ctl.GetByID)
	r.Get("/:id/availability", auth.RequirePermission(constants.ResAmenities, constants.ActionRead), ctl.Availability)
	r.Post("/", auth.RequirePermission(constants.ResAmenities, constants.ActionCreate), ctl.Create)
	r.Put("/:id", auth.RequirePermission(constants.ResAmenities, constants.ActionUpdate), ctl.Update)
	r.Delete("/:id", auth.RequirePermission(constants.ResAmenities, constants.ActionDelete), ctl.Deactivate)
}
