package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foundation_backend/helper"
	"foundation_backend/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.Protected(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestProtected_MissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtected_ValidSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	token, err := helper.GenerateAdminToken("admin@example.org")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtected_ExpiredSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "admin@example.org",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	token, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// A non-empty but unsigned cookie value must not pass: presence alone is not
// a session.
func TestProtected_GarbageCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "logged-in"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
