package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairhub/internal/api/dto"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/service"
)

// PartsHandler exposes parts-request endpoints for technicians and wardens.
type PartsHandler struct {
	parts *service.PartsService
}

// NewPartsHandler constructs handler.
func NewPartsHandler(parts *service.PartsService) *PartsHandler {
	return &PartsHandler{parts: parts}
}

// Create handles POST /api/parts-requests.
func (h *PartsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.CreatePartsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.IssueID == "" || req.PartName == "" {
		return fiber.NewError(http.StatusBadRequest, "issueId and partName required")
	}

	pr, err := h.parts.RequestParts(c.UserContext(), principal.User, service.PartsRequestInput{
		IssueID:     req.IssueID,
		PartName:    req.PartName,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromPartsRequest(pr)})
}

// ListAll handles GET /api/parts-requests: every request with issue and
// requester context, for the warden view.
func (h *PartsHandler) ListAll(c *fiber.Ctx) error {
	details, err := h.parts.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPartsRequestDetails(details)})
}

// ListMine handles GET /api/parts-requests/my.
func (h *PartsHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	requests, err := h.parts.ListMine(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPartsRequests(requests)})
}

// UpdateStatus handles PATCH /api/parts-requests/:id/status (warden decision).
func (h *PartsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.UpdatePartsStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	pr, err := h.parts.UpdateStatus(c.UserContext(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPartsRequest(pr)})
}
