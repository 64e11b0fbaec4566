package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/repairhub/internal/api/dto"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/service"
	"github.com/spec-kit/repairhub/internal/storage"
)

const maxPhotoBytes = 10 << 20

// IssuesHandler exposes issue reporting, listing and lifecycle endpoints.
type IssuesHandler struct {
	issues *service.IssueService
	photos *storage.PhotoStore
	logger *zap.Logger
}

// NewIssuesHandler constructs handler.
func NewIssuesHandler(issues *service.IssueService, photos *storage.PhotoStore, logger *zap.Logger) *IssuesHandler {
	return &IssuesHandler{issues: issues, photos: photos, logger: logger}
}

// Create handles POST /api/reports. Accepts either a JSON body or a
// multipart form with photo parts under the "photos" key.
func (h *IssuesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}

	var input service.IssueCreateInput
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		parsed, err := h.parseMultipartReport(c)
		if err != nil {
			return err
		}
		input = *parsed
	} else {
		var req dto.CreateIssueRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid payload")
		}
		input = service.IssueCreateInput{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Priority:    req.Priority,
			RoomNumber:  req.RoomNumber,
			ImageURLs:   req.Images,
		}
	}

	if input.Title == "" || input.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "title and description required")
	}

	issue, err := h.issues.CreateIssue(c.UserContext(), principal.User, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromIssue(issue)})
}

func (h *IssuesHandler) parseMultipartReport(c *fiber.Ctx) (*service.IssueCreateInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid multipart form")
	}

	input := &service.IssueCreateInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    domain.IssueCategory(strings.ToUpper(c.FormValue("category"))),
		RoomNumber:  c.FormValue("roomNumber"),
	}
	if raw := c.FormValue("priority"); raw != "" {
		p, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil, fiber.NewError(http.StatusBadRequest, "priority must be numeric")
		}
		input.Priority = domain.IssuePriority(p)
	}

	for _, fh := range form.File["photos"] {
		url, upErr := h.uploadPhoto(c, fh)
		if upErr != nil {
			return nil, upErr
		}
		input.ImageURLs = append(input.ImageURLs, url)
	}
	return input, nil
}

func (h *IssuesHandler) uploadPhoto(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxPhotoBytes {
		return "", fiber.NewError(http.StatusBadRequest, "photo exceeds size limit")
	}
	file, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "unreadable photo part")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, "unreadable photo part")
	}

	url, err := h.photos.Upload(c.UserContext(), fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		h.logger.Error("photo upload failed", zap.String("file", fh.Filename), zap.Error(err))
		return "", err
	}
	return url, nil
}

// ListMine handles GET /api/reports: issues reported by the caller.
func (h *IssuesHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	issues, err := h.issues.ListReported(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssues(issues)})
}

// ListRoom handles GET /api/room/issues: issues for the caller's room and block.
func (h *IssuesHandler) ListRoom(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	issues, err := h.issues.ListRoomIssues(c.UserContext(), principal.User)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssues(issues)})
}

// ListAll handles GET /api/warden/issues: every issue in the system.
func (h *IssuesHandler) ListAll(c *fiber.Ctx) error {
	issues, err := h.issues.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssues(issues)})
}

// ListAssigned handles GET /api/staff/assigned-issues.
func (h *IssuesHandler) ListAssigned(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	issues, err := h.issues.ListAssigned(c.UserContext(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssues(issues)})
}

// ListAvailable handles GET /api/staff/available-issues: unassigned, pending
// issues open for pickup.
func (h *IssuesHandler) ListAvailable(c *fiber.Ctx) error {
	issues, err := h.issues.ListAvailable(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssues(issues)})
}

// Assign handles PATCH /api/issues/:id/assign.
func (h *IssuesHandler) Assign(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.AssignIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.StaffID == "" {
		return fiber.NewError(http.StatusBadRequest, "staffId required")
	}

	issue, err := h.issues.Assign(c.UserContext(), principal.User.ID, c.Params("id"), req.StaffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssue(issue)})
}

// UpdateStatus handles PATCH /api/issues/:id/status.
func (h *IssuesHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	issue, err := h.issues.UpdateStatus(c.UserContext(), principal.User.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssue(issue)})
}

// Schedule handles PATCH /api/issues/:id/schedule.
func (h *IssuesHandler) Schedule(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.ScheduleIssueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ScheduledDate.IsZero() {
		return fiber.NewError(http.StatusBadRequest, "scheduledDate required")
	}

	issue, err := h.issues.Schedule(c.UserContext(), principal.User.ID, c.Params("id"), req.ScheduledDate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromIssue(issue)})
}
