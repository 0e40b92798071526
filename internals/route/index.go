// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importRoute "societyhub_backend/internals/features/admin/imports/route"
	amenityRoute "societyhub_backend/internals/features/amenities/amenity/route"
	bookingRoute "societyhub_backend/internals/features/amenities/booking/route"
	announcementRoute "societyhub_backend/internals/features/announcements/route"
	complaintRoute "societyhub_backend/internals/features/complaints/route"
	expenseRoute "societyhub_backend/internals/features/finance/expenses/route"
	flatRoute "societyhub_backend/internals/features/flats/route"
	dashboardRoute "societyhub_backend/internals/features/home/route"
	authRoute "societyhub_backend/internals/features/users/auth/route"
	userRoute "societyhub_backend/internals/features/users/user/route"
	"societyhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts everything under /api. Auth endpoints carry their own
// middleware; every other group sits behind the JWT check and the per-route
// permission table.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	BaseRoutes(api, db)
	authRoute.AuthRoutes(api, db)

	protected := api.Group("", auth.AuthMiddleware())
	flatRoute.FlatRoutes(protected, db)
	userRoute.UserRoutes(protected, db)
	importRoute.ImportRoutes(protected, db)
	amenityRoute.AmenityRoutes(protected, db)
	bookingRoute.BookingRoutes(protected, db)
	expenseRoute.ExpenseRoutes(protected, db)
	announcementRoute.AnnouncementRoutes(protected, db)
	complaintRoute.ComplaintRoutes(protected, db)
	dashboardRoute.DashboardRoutes(protected, db)
}
