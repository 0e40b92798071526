// file: internals/features/complaints/controller/complaint_controller_test.go
package controller

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"societyhub_backend/internals/constants"
	m "societyhub_backend/internals/features/complaints/model"
	userModel "societyhub_backend/internals/features/users/user/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &m.ComplaintModel{}))

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	// test identity comes from headers instead of a signed JWT
	app.Use(func(c *fiber.Ctx) error {
		if id := c.Get("X-Test-User"); id != "" {
			c.Locals("user_id", id)
		}
		if role := c.Get("X-Test-Role"); role != "" {
			c.Locals("user_role", role)
		}
		return c.Next()
	})
	ctl := NewComplaintController(db)
	app.Get("/api/complaints", ctl.List)
	app.Get("/api/complaints/:id", ctl.GetByID)
	app.Post("/api/complaints", ctl.Create)
	app.Put("/api/complaints/:id", ctl.Update)
	app.Delete("/api/complaints/:id", ctl.Delete)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, role string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:     "Test " + role,
		UserEmail:    uuid.NewString() + "@example.com",
		UserPassword: "x",
		UserRole:     role,
		UserIsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func as(u userModel.UserModel) map[string]string {
	return map[string]string{"X-Test-User": u.UserID.String(), "X-Test-Role": u.UserRole}
}

func request(t *testing.T, app *fiber.App, method, path string, headers map[string]string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		buf.Write(raw)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, sonic.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func TestComplaintScopingAndStats(t *testing.T) {
	app, db := newTestApp(t)
	resident := seedUser(t, db, constants.RoleResident)
	neighbour := seedUser(t, db, constants.RoleResident)
	committee := seedUser(t, db, constants.RoleCommittee)

	resp, _ := request(t, app, fiber.MethodPost, "/api/complaints", as(resident), fiber.Map{
		"title":       "Lift stuck on 4th floor",
		"description": "The lift has been stuck since morning.",
		"category":    "MAINTENANCE",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = request(t, app, fiber.MethodPost, "/api/complaints", as(neighbour), fiber.Map{
		"title":       "Water leakage in basement",
		"description": "Parking slot 12 is flooded.",
		"category":    "PLUMBING",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// residents only see their own queue, and get no stats block
	resp, payload := request(t, app, fiber.MethodGet, "/api/complaints", as(resident), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]any)
	assert.Len(t, data["complaints"], 1)
	assert.Nil(t, data["stats"])

	// committee sees everything plus status counts
	resp, payload = request(t, app, fiber.MethodGet, "/api/complaints", as(committee), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = payload["data"].(map[string]any)
	assert.Len(t, data["complaints"], 2)
	stats := data["stats"].(map[string]any)
	assert.EqualValues(t, 2, stats["open"])
}

func TestComplaintOwnershipRules(t *testing.T) {
	app, db := newTestApp(t)
	resident := seedUser(t, db, constants.RoleResident)
	neighbour := seedUser(t, db, constants.RoleResident)
	committee := seedUser(t, db, constants.RoleCommittee)

	_, payload := request(t, app, fiber.MethodPost, "/api/complaints", as(resident), fiber.Map{
		"title":       "Street light broken",
		"description": "Pole near gate 2 is dark.",
		"category":    "ELECTRICAL",
	})
	id := payload["data"].(map[string]any)["id"].(string)

	// a stranger can neither view nor edit it
	resp, _ := request(t, app, fiber.MethodGet, "/api/complaints/"+id, as(neighbour), nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp, _ = request(t, app, fiber.MethodPut, "/api/complaints/"+id, as(neighbour), fiber.Map{
		"title": "hijacked",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// the owner may edit while it is OPEN
	resp, _ = request(t, app, fiber.MethodPut, "/api/complaints/"+id, as(resident), fiber.Map{
		"title": "Street light broken near gate 2",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// committee resolves it, stamping resolvedAt
	resp, payload = request(t, app, fiber.MethodPut, "/api/complaints/"+id, as(committee), fiber.Map{
		"status":     "RESOLVED",
		"resolution": "Bulb replaced.",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := payload["data"].(map[string]any)
	assert.Equal(t, "RESOLVED", updated["status"])
	assert.NotNil(t, updated["resolved_at"])

	// once resolved the owner can no longer edit
	resp, _ = request(t, app, fiber.MethodPut, "/api/complaints/"+id, as(resident), fiber.Map{
		"title": "reopening attempt",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
