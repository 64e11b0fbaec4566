package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// PartsService handles the technician parts-request workflow.
type PartsService struct {
	parts      repository.PartsRequestRepository
	issues     repository.IssueRepository
	dispatcher events.Dispatcher
}

// PartsDependencies bundles repositories.
type PartsDependencies struct {
	PartsRepo  repository.PartsRequestRepository
	IssueRepo  repository.IssueRepository
	Dispatcher events.Dispatcher
}

// PartsRequestInput describes a new request.
type PartsRequestInput struct {
	IssueID     string
	PartName    string
	Quantity    int
	Description *string
}

// NewPartsService constructs the service.
func NewPartsService(deps PartsDependencies) *PartsService {
	return &PartsService{
		parts:      deps.PartsRepo,
		issues:     deps.IssueRepo,
		dispatcher: deps.Dispatcher,
	}
}

// RequestParts creates a PENDING parts request. Only technicians may request
// parts; status is forced regardless of input.
func (s *PartsService) RequestParts(ctx context.Context, caller *domain.User, input PartsRequestInput) (*domain.PartsRequest, error) {
	if caller.Role != domain.RoleTechnician {
		return nil, apperrors.NewForbidden("technician role required")
	}
	if strings.TrimSpace(input.PartName) == "" {
		return nil, apperrors.NewValidationError("part name required", nil)
	}
	if input.Quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", map[string]any{"quantity": input.Quantity})
	}
	if _, err := s.issues.GetByID(ctx, input.IssueID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("issue", map[string]any{"issue_id": input.IssueID})
		}
		return nil, apperrors.MapError(err)
	}

	req := &domain.PartsRequest{
		IssueID:     input.IssueID,
		RequestedBy: caller.ID,
		PartName:    strings.TrimSpace(input.PartName),
		Quantity:    input.Quantity,
		Description: input.Description,
		Status:      domain.PartsStatusPending,
	}
	if err := s.parts.Create(ctx, req); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventPartsRequestCreated,
		IssueID: req.IssueID,
		ActorID: caller.ID,
		Payload: events.PartsRequestCreatedPayload{
			RequestID: req.ID,
			PartName:  req.PartName,
			Quantity:  req.Quantity,
		},
	})
	return req, nil
}

// ListAll returns every request with issue and requester context. The route
// restricts this to wardens.
func (s *PartsService) ListAll(ctx context.Context) ([]domain.PartsRequestDetail, error) {
	result, err := s.parts.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// ListMine returns requests made by the caller. No role restriction applies.
func (s *PartsService) ListMine(ctx context.Context, userID string) ([]domain.PartsRequest, error) {
	result, err := s.parts.ListByRequester(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// UpdateStatus records a warden decision on a request.
func (s *PartsService) UpdateStatus(ctx context.Context, actorID, requestID string, status domain.PartsRequestStatus) (*domain.PartsRequest, error) {
	if !domain.ValidPartsStatus(status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(status)})
	}

	req, err := s.parts.UpdateStatus(ctx, requestID, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("parts request", map[string]any{"request_id": requestID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventPartsRequestDecided,
		IssueID: req.IssueID,
		ActorID: actorID,
		Payload: events.PartsRequestDecidedPayload{RequestID: req.ID, Status: req.Status},
	})
	return req, nil
}

func (s *PartsService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}
