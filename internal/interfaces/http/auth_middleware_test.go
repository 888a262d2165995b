package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/crm-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/crm-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	otherCompany  = "00000000-0000-0000-0000-000000000003"
	foreignClient = "00000000-0000-0000-0000-0000000000c1"
	testIssuer    = "crm-api-test"
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve los locals si pasa el middleware.
func buildTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"userId": apphttp.GetUserID(c),
				"email":  apphttp.GetEmail(c),
			})
		},
	)
	return app
}

// bearer genera un access token válido para testUserID.
func bearer(t *testing.T) string {
	t.Helper()
	issued, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@acme.co", testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + issued.Token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "MISSING_TOKEN", body["error"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	status, body := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["error"])
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := buildTestApp()
	issued, err := pkgjwt.Generate("otro-secreto", testUserID, "ana@acme.co", testIssuer, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)

	status, body := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["error"])
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp()
	issued, err := pkgjwt.Generate(testJWTSecret, testUserID, "ana@acme.co", testIssuer, -time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Token)

	status, _ := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", bearer(t))

	status, body := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, "ana@acme.co", body["email"])
}
