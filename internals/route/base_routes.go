// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "societyhub_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes serves the unauthenticated service endpoints.
func BaseRoutes(api fiber.Router, db *gorm.DB) {
	api.Get("/status", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "down"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
		}

		return helper.JsonOK(c, "ok", fiber.Map{
			"service":  "societyhub",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
