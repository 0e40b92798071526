// internals/middlewares/auth/permission_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"societyhub_backend/internals/constants"
	helper "societyhub_backend/internals/helpers"
)

// RequirePermission gates a route group on the capability table.
// Must run after AuthMiddleware.
func RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetUserRoleFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if !constants.Can(role, resource, action) {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
		}
		return c.Next()
	}
}
