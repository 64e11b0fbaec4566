package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairhub/internal/api/dto"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/repository"
	"github.com/spec-kit/repairhub/internal/service"
)

// StatsHandler exposes count summaries and dashboard aggregations.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// UserStats handles GET /api/user/stats. Scope depends on the caller's role.
func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	stats, err := h.stats.StatsForUser(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UserStatsResponse{
		Total:    stats.Total,
		Resolved: stats.Resolved,
		Pending:  stats.Pending,
	}})
}

// Detailed handles GET /api/warden/stats/detailed.
func (h *StatsHandler) Detailed(c *fiber.Ctx) error {
	stats, err := h.stats.Detailed(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.DetailedStatsResponse{
		ByCategory: toGroupCounts(stats.ByCategory),
		ByStatus:   toGroupCounts(stats.ByStatus),
		ByPriority: toGroupCounts(stats.ByPriority),
	}})
}

func toGroupCounts(groups []repository.GroupCount) []dto.GroupCountResponse {
	out := make([]dto.GroupCountResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupCountResponse{Name: g.Name, Count: g.Count})
	}
	return out
}
