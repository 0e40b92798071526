// file: internals/features/finance/expenses/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/constants"
	ctr "societyhub_backend/internals/features/finance/expenses/controller"
	"societyhub_backend/internals/middlewares/auth"
)

// ExpenseRoutes mounts /expenses and /budgets under an authenticated group.
// Approval is admin-only; everything below create is committee territory.
func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	expenseCtl := ctr.NewExpenseController(db)
	budgetCtl := ctr.NewBudgetController(db)

	e := api.Group("/expenses")
	e.Get("/", auth.RequirePermission(constants.ResExpenses, constants.ActionRead), expenseCtl.List)
	// literal route registered before /:id so "summary" never parses as an ID
	e.Get("/summary", auth.RequirePermission(constants.ResExpenses, constants.ActionRead), expenseCtl.Summary)
	e.Get("/:id", auth.RequirePermission(constants.ResExpenses, constants.ActionRead), expenseCtl.GetByID)
	e.Post("/", auth.RequirePermission(constants.ResExpenses, constants.ActionCreate), expenseCtl.Create)
	e.Put("/:id", auth.RequirePermission(constants.ResExpenses, constants.ActionUpdate), expenseCtl.Update)
	e.Delete("/:id", auth.RequirePermission(constants.ResExpenses, constants.ActionDelete), expenseCtl.Delete)
	e.Patch("/:id/approve", auth.RequirePermission(constants.ResExpenses, constants.ActionApprove), expenseCtl.Approve)
	e.Patch("/:id/revoke-approval", auth.RequirePermission(constants.ResExpenses, constants.ActionApprove), expenseCtl.RevokeApproval)

	b := api.Group("/budgets")
	b.Get("/", auth.RequirePermission(constants.ResBudgets, constants.ActionRead), budgetCtl.List)
	b.Put("/", auth.RequirePermission(constants.ResBudgets, constants.ActionUpdate), budgetCtl.Upsert)
	b.Delete("/:id", auth.RequirePermission(constants.ResBudgets, constants.ActionDelete), budgetCtl.Delete)
}
