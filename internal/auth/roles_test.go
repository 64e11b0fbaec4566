package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairhub/internal/domain"
)

func newRoleTestApp(user *domain.User, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(principalKey, &Principal{User: user})
		}
		return c.Next()
	}, guard, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	app := newRoleTestApp(&domain.User{ID: "u", Role: domain.RoleWarden}, RequireRole(domain.RoleWarden))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	app := newRoleTestApp(&domain.User{ID: "u", Role: domain.RoleStudent}, RequireRole(domain.RoleWarden))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_MissingPrincipal(t *testing.T) {
	app := newRoleTestApp(nil, RequireRole(domain.RoleWarden))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_EmptyAllowListAdmitsAnyPrincipal(t *testing.T) {
	app := newRoleTestApp(&domain.User{ID: "u", Role: domain.RoleStudent}, RequireRole())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuthenticated(t *testing.T) {
	app := newRoleTestApp(&domain.User{ID: "u", Role: domain.RoleTechnician}, RequireAuthenticated())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = newRoleTestApp(nil, RequireAuthenticated())
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
