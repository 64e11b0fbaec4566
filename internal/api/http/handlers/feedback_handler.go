package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/repairhub/internal/api/dto"
	"github.com/spec-kit/repairhub/internal/auth"
	"github.com/spec-kit/repairhub/internal/service"
)

// FeedbackHandler exposes app feedback submission.
type FeedbackHandler struct {
	feedback *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing principal")
	}
	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Subject == "" || req.Message == "" {
		return fiber.NewError(http.StatusBadRequest, "subject and message required")
	}

	fb, err := h.feedback.Submit(c.UserContext(), principal.User.ID, service.FeedbackInput{
		Category: req.Category,
		Subject:  req.Subject,
		Message:  req.Message,
		Rating:   req.Rating,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"id":        fb.ID,
		"category":  fb.Category,
		"subject":   fb.Subject,
		"rating":    fb.Rating,
		"createdAt": fb.CreatedAt,
	}})
}
