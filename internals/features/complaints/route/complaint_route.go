// file: internals/features/complaints/route/complaint_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/complaints/controller"
	"societyhub_backend/internals/middlewares/auth"
)

func ComplaintRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewComplaintController(db)

	r := api.Group("/complaints")
	r.Get("/", auth.RequirePermission(constants.ResComplaints, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResComplaints, constants.ActionRead), ctl.GetByID)
	r.Post("/", auth.RequirePermission(constants.ResComplaints, constants.ActionCreate), ctl.Create)
	r.Put("/:id", auth.RequirePermission(constants.ResComplaints, constants.ActionUpdate), ctl.Update)
	r.Delete("/:id", auth.RequirePermission(constants.ResComplaints, constants.ActionDelete), ctl.Delete)
}
