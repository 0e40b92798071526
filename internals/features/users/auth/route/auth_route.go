// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "societyhub_backend/internals/features/users/auth/controller"
	"societyhub_backend/internals/middlewares"
	"societyhub_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth. Login and register carry their own tighter rate
// limits on top of the global one.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAuthController(db)

	r := api.Group("/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Get("/validate-token", ctl.ValidateToken)
	r.Post("/reset-password", middlewares.LoginRateLimiter(), ctl.ResetPassword)
	r.Post("/logout", ctl.Logout)

	r.Get("/me", auth.AuthMiddleware(), ctl.Me)
	r.Post("/change-password", auth.AuthMiddleware(), ctl.ChangePassword)
}
