// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/users/user/controller"
	"societyhub_backend/internals/middlewares/auth"
)

// UserRoutes mounts /users. Everything here is admin-only.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewUserController(db)

	r := api.Group("/users")
	r.Get("/", auth.RequirePermission(constants.ResUsers, constants.ActionRead), ctl.List)
	r.Get("/:id", auth.RequirePermission(constants.ResUsers, constants.ActionRead), ctl.GetByID)
	r.Post("/", auth.RequirePermission(constants.ResUsers, constants.ActionCreate), ctl.Create)
	r.Put("/:id", auth.RequirePermission(constants.ResUsers, constants.ActionUpdate), ctl.Update)
	r.Delete("/:id", auth.RequirePermission(constants.ResUsers, constants.ActionDelete), ctl.Deactivate)
}
