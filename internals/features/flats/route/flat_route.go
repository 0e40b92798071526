// file: internals/features/flats/route/flat_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/flats/controller"
	"societyhub_backend/internals/middlewares/auth"
)

func FlatRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewFlatController(db)

	r := api.Group("/flats")
	r.Get("/", auth.RequirePermission(constants.ResFlats, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResFlats, constants.ActionRead), ctl.GetByID)
	r.Post("/", auth.RequirePermission(constants.ResFlats, constants.ActionCreate), ctl.Create)
	r.Put("/:id", auth.RequirePermission(constants.ResFlats, constants.ActionUpdate), ctl.Update)
	r.Delete("/:id", auth.RequirePermission(constants.ResFlats, constants.ActionDelete), ctl.Delete)
}
