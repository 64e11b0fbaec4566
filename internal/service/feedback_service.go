package service

import (
	"context"
	"strings"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// FeedbackService records write-only app feedback.
type FeedbackService struct {
	feedback   repository.FeedbackRepository
	dispatcher events.Dispatcher
}

// FeedbackInput describes a submission.
type FeedbackInput struct {
	Category domain.FeedbackCategory
	Subject  string
	Message  string
	Rating   *int
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedback repository.FeedbackRepository, dispatcher events.Dispatcher) *FeedbackService {
	return &FeedbackService{feedback: feedback, dispatcher: dispatcher}
}

// Submit stores a feedback record. Rating, when present, must be 1..5.
func (s *FeedbackService) Submit(ctx context.Context, callerID string, input FeedbackInput) (*domain.AppFeedback, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, apperrors.NewValidationError("subject and message required", nil)
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": *input.Rating})
	}

	record := &domain.AppFeedback{
		UserID:   callerID,
		Category: input.Category,
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
		Rating:   input.Rating,
	}
	if err := s.feedback.Create(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		event := events.Event{
			Type:    events.EventFeedbackSubmitted,
			ActorID: callerID,
			Payload: events.FeedbackSubmittedPayload{Category: record.Category, Rating: record.Rating},
		}
		fillEventDefaults(&event)
		_ = s.dispatcher.Publish(ctx, event)
	}
	return record, nil
}
