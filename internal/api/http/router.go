package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairhub/internal/api/http/handlers"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Issues         *handlers.IssuesHandler
	Staff          *handlers.StaffHandler
	Parts          *handlers.PartsHandler
	TimeLogs       *handlers.TimeLogsHandler
	Stats          *handlers.StatsHandler
	Feedback       *handlers.FeedbackHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role policy lives here: handlers assume
// the guard chain already ran.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	authed := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authed.Get("/verify", cfg.Auth.Verify)
	authed.Get("/profile", cfg.Auth.GetProfile)
	authed.Patch("/profile", cfg.Auth.UpdateProfile)

	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	// Issue reporting and listings.
	protected.Post("/reports", cfg.Issues.Create)
	protected.Get("/reports", cfg.Issues.ListMine)
	protected.Get("/room/issues", cfg.Issues.ListRoom)
	protected.Get("/warden/issues", auth.RequireRole(domain.RoleWarden), cfg.Issues.ListAll)
	protected.Get("/staff/assigned-issues",
		auth.RequireRole(domain.RoleStaff, domain.RoleTechnician), cfg.Issues.ListAssigned)
	protected.Get("/staff/available-issues",
		auth.RequireRole(domain.RoleStaff, domain.RoleTechnician), cfg.Issues.ListAvailable)

	// Issue lifecycle. Any authenticated caller may drive transitions.
	protected.Patch("/issues/:id/assign", cfg.Issues.Assign)
	protected.Patch("/issues/:id/status", cfg.Issues.UpdateStatus)
	protected.Patch("/issues/:id/schedule", cfg.Issues.Schedule)

	// Staff roster management (warden only).
	protected.Get("/staff/list", auth.RequireRole(domain.RoleWarden), cfg.Staff.List)
	protected.Patch("/staff/:id", auth.RequireRole(domain.RoleWarden), cfg.Staff.Update)
	protected.Delete("/staff/:id", auth.RequireRole(domain.RoleWarden), cfg.Staff.Delete)

	// Parts requests.
	parts := protected.Group("/parts-requests")
	parts.Post("", auth.RequireRole(domain.RoleTechnician), cfg.Parts.Create)
	parts.Get("", auth.RequireRole(domain.RoleWarden), cfg.Parts.ListAll)
	parts.Get("/my", cfg.Parts.ListMine)
	parts.Patch("/:id/status", auth.RequireRole(domain.RoleWarden), cfg.Parts.UpdateStatus)

	// Time tracking.
	timeLogs := protected.Group("/time-logs")
	timeLogs.Post("/start", auth.RequireRole(domain.RoleTechnician), cfg.TimeLogs.Start)
	timeLogs.Patch("/:id/stop", auth.RequireRole(domain.RoleTechnician), cfg.TimeLogs.Stop)
	timeLogs.Get("/my", cfg.TimeLogs.ListMine)
	timeLogs.Get("/active", cfg.TimeLogs.Active)
	timeLogs.Get("/issue/:id", cfg.TimeLogs.ListForIssue)

	// Aggregations and feedback.
	protected.Get("/user/stats", cfg.Stats.UserStats)
	protected.Get("/warden/stats/detailed", auth.RequireRole(domain.RoleWarden), cfg.Stats.Detailed)
	protected.Post("/feedback", cfg.Feedback.Submit)
}
