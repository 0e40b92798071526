// file: internals/features/home/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/home/controller"
	"societyhub_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewDashboardController(db)

	r := api.Group("/dashboard")
	r.Get("/stats", auth.RequirePermission(constants.ResDashboard, constants.ActionRead), ctl.Stats)
}
