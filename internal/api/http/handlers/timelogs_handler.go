package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairhub/internal/api/dto"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/service"
)

// TimeLogsHandler exposes work-session tracking endpoints.
type TimeLogsHandler struct {
	timeLogs *service.TimeLogService
}

// NewTimeLogsHandler constructs handler.
func NewTimeLogsHandler(timeLogs *service.TimeLogService) *TimeLogsHandler {
	return &TimeLogsHandler{timeLogs: timeLogs}
}

// Start handles POST /api/time-logs/start. At most one open log per
// technician; a second start returns 409.
func (h *TimeLogsHandler) Start(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.StartTimerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.IssueID == "" {
		return fiber.NewError(http.StatusBadRequest, "issueId required")
	}

	log, err := h.timeLogs.Start(c.UserContext(), principal.User, req.IssueID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromTimeLog(log)})
}

// Stop handles PATCH /api/time-logs/:id/stop.
func (h *TimeLogsHandler) Stop(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.StopTimerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	log, err := h.timeLogs.Stop(c.UserContext(), principal.User, c.Params("id"), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTimeLog(log)})
}

// ListMine handles GET /api/time-logs/my.
func (h *TimeLogsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	logs, err := h.timeLogs.MyLogs(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTimeLogs(logs)})
}

// Active handles GET /api/time-logs/active. Responds with a null payload
// when no timer is running.
func (h *TimeLogsHandler) Active(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	log, err := h.timeLogs.ActiveLog(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	if log == nil {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": dto.FromTimeLog(log)})
}

// ListForIssue handles GET /api/time-logs/issue/:id.
func (h *TimeLogsHandler) ListForIssue(c *fiber.Ctx) error {
	summary, err := h.timeLogs.LogsForIssue(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.IssueTimeLogsResponse{
		Logs:         dto.FromTimeLogs(summary.Logs),
		TotalMinutes: summary.TotalMinutes,
	}})
}
