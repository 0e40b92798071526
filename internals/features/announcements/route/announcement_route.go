// file: internals/features/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/announcements/controller"
	"societyhub_backend/internals/middlewares/auth"
)

func AnnouncementRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAnnouncementController(db)

	r := api.Group("/announcements")
	r.Get("/", auth.RequirePermission(constants.ResAnnouncements, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResAnnouncements, constants.ActionRead), ctl.GetByID)
	r.Post("/", auth.RequirePermission(constants.ResAnnouncements, constants.ActionCreate), ctl.Create)
	r.Put("/:id", auth.RequirePermission(constants.ResAnnouncements, constants.ActionUpdate), ctl.Update)
	r.Delete("/:id", auth.RequirePermission(constants.ResAnnouncements, constants.ActionDelete), ctl.Delete)
}
