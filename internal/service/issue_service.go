package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// unknownBlock is the sentinel used when the reporter has no stored block.
const unknownBlock = "UNKNOWN"

// IssueService coordinates the issue lifecycle.
type IssueService struct {
	issues     repository.IssueRepository
	images     repository.IssueImageRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// IssueDependencies bundles repositories for the issue service.
type IssueDependencies struct {
	IssueRepo  repository.IssueRepository
	ImageRepo  repository.IssueImageRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// IssueCreateInput describes issue creation payload. Any status supplied by
// the client is ignored; new issues always start PENDING.
type IssueCreateInput struct {
	Title       string
	Description string
	Category    domain.IssueCategory
	Priority    domain.IssuePriority
	RoomNumber  string
	ImageURLs   []string
}

// NewIssueService constructs the service.
func NewIssueService(deps IssueDependencies) *IssueService {
	return &IssueService{
		issues:     deps.IssueRepo,
		images:     deps.ImageRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateIssue records a new issue for the reporter. The location block is
// inherited from the reporter's stored block at creation time and never
// synced afterwards.
func (s *IssueService) CreateIssue(ctx context.Context, reporter *domain.User, input IssueCreateInput) (*domain.Issue, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	priority := input.Priority
	if priority == 0 {
		priority = domain.PriorityLow
	}
	if !domain.ValidPriority(priority) {
		return nil, apperrors.NewValidationError("priority out of range", map[string]any{"priority": int(priority)})
	}

	room := strings.TrimSpace(input.RoomNumber)
	if room == "" && reporter.RoomNumber != nil {
		room = *reporter.RoomNumber
	}
	block := unknownBlock
	if reporter.Block != nil && *reporter.Block != "" {
		block = *reporter.Block
	}

	issue := &domain.Issue{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    domain.NormalizeCategory(input.Category),
		Priority:    priority,
		Status:      domain.IssueStatusPending,
		RoomNumber:  room,
		Block:       block,
		ReportedBy:  reporter.ID,
	}

	if err := s.issues.Create(ctx, issue); err != nil {
		return nil, apperrors.MapError(err)
	}

	for _, url := range input.ImageURLs {
		image := &domain.IssueImage{IssueID: issue.ID, URL: url}
		if err := s.images.Create(ctx, image); err != nil {
			return nil, apperrors.MapError(err)
		}
		issue.Images = append(issue.Images, *image)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueCreated,
		IssueID: issue.ID,
		ActorID: reporter.ID,
		Payload: events.IssueCreatedPayload{
			Title:    issue.Title,
			Category: issue.Category,
			Priority: issue.Priority,
			Room:     issue.RoomNumber,
			Block:    issue.Block,
		},
	})
	return issue, nil
}

// ListReported returns the caller's own issues.
func (s *IssueService) ListReported(ctx context.Context, userID string) ([]domain.Issue, error) {
	return s.listWithImages(ctx, repository.IssueFilter{ReportedBy: &userID})
}

// ListRoomIssues returns all issues sharing the caller's room and block,
// regardless of reporter.
func (s *IssueService) ListRoomIssues(ctx context.Context, caller *domain.User) ([]domain.Issue, error) {
	if caller.RoomNumber == nil || caller.Block == nil {
		return []domain.Issue{}, nil
	}
	return s.listWithImages(ctx, repository.IssueFilter{
		RoomNumber: caller.RoomNumber,
		Block:      caller.Block,
	})
}

// ListAll returns every issue, unfiltered. Route-level policy restricts this
// to wardens.
func (s *IssueService) ListAll(ctx context.Context) ([]domain.Issue, error) {
	return s.listWithImages(ctx, repository.IssueFilter{Limit: 200})
}

// ListAssigned returns issues assigned to the caller.
func (s *IssueService) ListAssigned(ctx context.Context, userID string) ([]domain.Issue, error) {
	return s.listWithImages(ctx, repository.IssueFilter{AssignedTo: &userID})
}

// ListAvailable returns unassigned issues still pending.
func (s *IssueService) ListAvailable(ctx context.Context) ([]domain.Issue, error) {
	return s.listWithImages(ctx, repository.IssueFilter{
		Unassigned: true,
		Statuses:   []domain.IssueStatus{domain.IssueStatusPending},
	})
}

// Assign sets the assignee and forces status to ASSIGNED. No check is made
// on the assignee's role or the issue's current status; a COMPLETED issue
// can be re-assigned.
func (s *IssueService) Assign(ctx context.Context, actorID, issueID, staffID string) (*domain.Issue, error) {
	issue, err := s.getIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": staffID})
		}
		return nil, apperrors.MapError(err)
	}

	issue.AssignedTo = &staffID
	issue.Status = domain.IssueStatusAssigned
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueAssigned,
		IssueID: issue.ID,
		ActorID: actorID,
		Payload: events.IssueAssignedPayload{AssignedTo: staffID},
	})
	return issue, nil
}

// UpdateStatus writes a new status after validating set membership. Forward
// ordering is not enforced; a COMPLETED issue can move back to PENDING.
func (s *IssueService) UpdateStatus(ctx context.Context, actorID, issueID string, newStatus domain.IssueStatus) (*domain.Issue, error) {
	if !domain.ValidIssueStatus(newStatus) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(newStatus)})
	}
	issue, err := s.getIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	oldStatus := issue.Status
	issue.Status = newStatus
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueStatusChanged,
		IssueID: issue.ID,
		ActorID: actorID,
		Payload: events.IssueStatusChangedPayload{OldStatus: oldStatus, NewStatus: newStatus},
	})
	return issue, nil
}

// Schedule sets the scheduled date and forces status to ASSIGNED, even when
// the issue was already IN_PROGRESS.
func (s *IssueService) Schedule(ctx context.Context, actorID, issueID string, date time.Time) (*domain.Issue, error) {
	if date.IsZero() {
		return nil, apperrors.NewValidationError("scheduled date required", nil)
	}
	issue, err := s.getIssue(ctx, issueID)
	if err != nil {
		return nil, err
	}

	issue.ScheduledDate = &date
	issue.Status = domain.IssueStatusAssigned
	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventIssueScheduled,
		IssueID: issue.ID,
		ActorID: actorID,
		Payload: events.IssueScheduledPayload{ScheduledDate: date},
	})
	return issue, nil
}

func (s *IssueService) getIssue(ctx context.Context, issueID string) (*domain.Issue, error) {
	issue, err := s.issues.GetByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("issue", map[string]any{"issue_id": issueID})
		}
		return nil, apperrors.MapError(err)
	}
	return issue, nil
}

func (s *IssueService) listWithImages(ctx context.Context, filter repository.IssueFilter) ([]domain.Issue, error) {
	issues, err := s.issues.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	for i := range issues {
		images, err := s.images.ListByIssue(ctx, issues[i].ID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		issues[i].Images = images
	}
	return issues, nil
}

func (s *IssueService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}
