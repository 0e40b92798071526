// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads c.Locals("user_id") as set by the auth middleware.
// 401 when not logged in, 400 when the token carries a malformed ID.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Not logged in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID on token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID on token")
	}
}

// GetUserRoleFromToken reads the role claim stashed by the auth middleware.
func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("user_role").(string)
	if !ok || strings.TrimSpace(role) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}
	return role, nil
}

// GetFlatIDFromToken returns the caller's flat ID, or uuid.Nil when the user
// has no flat association. Never errors: flatless users are legal everywhere
// except booking creation, which enforces its own rule.
func GetFlatIDFromToken(c *fiber.Ctx) uuid.UUID {
	s, ok := c.Locals("flat_id").(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
