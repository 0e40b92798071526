// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"societyhub_backend/internals/configs"
)

// AuthMiddleware parses and verifies the bearer JWT (Authorization header,
// cookie fallback) and stashes user_id / user_role / flat_id in locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, ok := claims["user_id"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID)

		if role, ok := claims["role"].(string); ok {
			c.Locals("user_role", role)
		}
		if flatID, ok := claims["flat_id"].(string); ok {
			c.Locals("flat_id", flatID)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", fiber.NewError(fiber.StatusUnauthorized, "Malformed Authorization header")
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
}

// validateTokenExpiry allows a small leeway for clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
	}
	return nil
}
