package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"labsite/database"
	"labsite/dto"
	"labsite/internal/middleware"
)

func authTestConfig(t *testing.T) database.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	return database.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@lab.example",
		AdminPasswordHash: string(hash),
	}
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body := `{"email": "` + email + `", "password": "` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesUsableToken(t *testing.T) {
	cfg := authTestConfig(t)
	app := fiber.New()
	app.Post("/api/auth/login", LoginHandler(cfg))
	app.Get("/protected", middleware.RequireAdmin(cfg.JWTSecret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("admin_email").(string))
	})

	resp := login(t, app, cfg.AdminEmail, "hunter2")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp2.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	cfg := authTestConfig(t)
	app := fiber.New()
	app.Post("/api/auth/login", LoginHandler(cfg))

	resp := login(t, app, cfg.AdminEmail, "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = login(t, app, "other@lab.example", "hunter2")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRequiresBothFields(t *testing.T) {
	cfg := authTestConfig(t)
	app := fiber.New()
	app.Post("/api/auth/login", LoginHandler(cfg))

	resp := login(t, app, "", "hunter2")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRequireAdminRejectsMissingOrGarbageToken(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", middleware.RequireAdmin("test-secret"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsWrongSecret(t *testing.T) {
	cfg := authTestConfig(t)
	app := fiber.New()
	app.Post("/api/auth/login", LoginHandler(cfg))
	app.Get("/protected", middleware.RequireAdmin("different-secret"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := login(t, app, cfg.AdminEmail, "hunter2")
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp2.StatusCode)
}
