// file: internals/features/admin/imports/route/import_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/admin/imports/controller"
	"societyhub_backend/internals/middlewares/auth"
)

func ImportRoutes(api fiber.Router, db *gorm.DB) {
	ctl := ctr.NewImportController(db)

	r := api.Group("/admin")
	r.Post("/bulk-import", auth.RequirePermission(constants.ResImports, constants.ActionCreate), ctl.BulkImport)
	r.Get("/bulk-import/logs", auth.RequirePermission(constants.ResImports, constants.ActionRead), ctl.ListLogs)
}
