package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-api/internal/domain"
)

func TestRespondError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: amount debe ser mayor que 0", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrInvalidToken, fiber.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
		{fmt.Errorf("client: %w", domain.ErrForbidden), fiber.StatusForbidden, "FORBIDDEN"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
		{errors.New("pool cerrado"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			raw, _ := io.ReadAll(resp.Body)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, body["error"])
			assert.Equal(t, false, body["success"])
		})
	}
}

func TestRespondError_InternalNoFiltraDetalle(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return respondError(c, errors.New("dial tcp 10.0.0.1:5432")) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "10.0.0.1")
	assert.Contains(t, string(raw), internalMessage)
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), `"error":"NOT_FOUND"`)
}

func TestParseBody_MensajesConNombreJSON(t *testing.T) {
	type in struct {
		CompanyID string `json:"companyId" validate:"required,uuid"`
		Email     string `json:"email" validate:"omitempty,email"`
	}
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var v in
		if err := parseBody(c, &v); err != nil {
			return respondError(c, err)
		}
		return ok(c, fiber.StatusOK, v)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"companyId":"x","email":"no"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "companyId debe ser un UUID")
	assert.Contains(t, string(raw), "email debe ser un email válido")
}

func TestRespondError_InternalRegistraEnLoggerDeLaPeticion(t *testing.T) {
	var buf bytes.Buffer
	reqLog := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.SetUserContext(reqLog.WithContext(c.UserContext()))
		return respondError(c, errors.New("pool cerrado"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "pool cerrado")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}
