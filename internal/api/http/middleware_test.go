package http

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
	"go.uber.org/zap"

	"github.com/spec-kit/repairhub/internal/observability"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

func newMiddlewareTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)

	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusForbidden, "insufficient role")
	})
	app.Get("/conflict", func(c *fiber.Ctx) error {
		return apperrors.NewConflict("an active timer already exists", nil)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("unexpected")
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "fine"})
	})
	return app
}

func decodeErrorEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error
}

func TestErrorMiddleware_FiberErrorKeepsStatus(t *testing.T) {
	app := newMiddlewareTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/forbidden", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	envelope := decodeErrorEnvelope(t, resp)
	assert.Equal(t, "FORBIDDEN", envelope["code"])
	assert.Equal(t, "insufficient role", envelope["message"])
}

func TestErrorMiddleware_DomainErrorEnvelope(t *testing.T) {
	app := newMiddlewareTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/conflict", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	envelope := decodeErrorEnvelope(t, resp)
	assert.Equal(t, "CONFLICT", envelope["code"])
}

func TestErrorMiddleware_PanicBecomesInternal(t *testing.T) {
	app := newMiddlewareTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	envelope := decodeErrorEnvelope(t, resp)
	assert.Equal(t, "INTERNAL_ERROR", envelope["code"])
	assert.Equal(t, "internal server error", envelope["message"])
}

func TestErrorMiddleware_PassesSuccessThrough(t *testing.T) {
	app := newMiddlewareTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
