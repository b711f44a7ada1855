package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tej-ashwani/StudyNotion/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "unit-test-secret"}

	app := fiber.New()
	handlers := []fiber.Handler{JWTMiddleware}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token, err := GenerateJWT(42, "student@example.com", "Student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareTokenFromCookie(t *testing.T) {
	app := newProtectedApp(t)

	token, err := GenerateJWT(7, "student@example.com", "Student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleMiddlewareMismatch(t *testing.T) {
	app := newProtectedApp(t, IsInstructor())

	token, err := GenerateJWT(42, "student@example.com", "Student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	// Role mismatch is reported as unauthorized, matching the client contract
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleMiddlewareMatch(t *testing.T) {
	app := newProtectedApp(t, IsStudent())

	token, err := GenerateJWT(42, "student@example.com", "Student")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
