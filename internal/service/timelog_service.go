package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// TimeLogService enforces the single-active-timer invariant and computes
// durations.
type TimeLogService struct {
	logs       repository.TimeLogRepository
	issues     repository.IssueRepository
	dispatcher events.Dispatcher

	now func() time.Time
}

// TimeLogDependencies bundles repositories.
type TimeLogDependencies struct {
	TimeLogRepo repository.TimeLogRepository
	IssueRepo   repository.IssueRepository
	Dispatcher  events.Dispatcher
}

// IssueTimeSummary pairs an issue's logs with their summed duration. The
// total is recomputed on every read.
type IssueTimeSummary struct {
	Logs         []domain.TimeLog
	TotalMinutes int
}

// NewTimeLogService constructs the service.
func NewTimeLogService(deps TimeLogDependencies) *TimeLogService {
	return &TimeLogService{
		logs:       deps.TimeLogRepo,
		issues:     deps.IssueRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Start opens a timer against an issue. Fails with Conflict when the
// technician already has an open log; the check and insert are atomic.
func (s *TimeLogService) Start(ctx context.Context, caller *domain.User, issueID string) (*domain.TimeLog, error) {
	if caller.Role != domain.RoleTechnician {
		return nil, apperrors.NewForbidden("technician role required")
	}
	if _, err := s.issues.GetByID(ctx, issueID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("issue", map[string]any{"issue_id": issueID})
		}
		return nil, apperrors.MapError(err)
	}

	log := &domain.TimeLog{
		IssueID:      issueID,
		TechnicianID: caller.ID,
		StartTime:    s.now(),
	}
	if err := s.logs.StartForTechnician(ctx, log); err != nil {
		if errors.Is(err, repository.ErrOpenLogExists) {
			return nil, apperrors.NewConflict("an active timer already exists", map[string]any{"technician_id": caller.ID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventTimerStarted,
		IssueID: issueID,
		ActorID: caller.ID,
		Payload: events.TimerStartedPayload{LogID: log.ID},
	})
	return log, nil
}

// Stop closes the caller's log, computing duration as whole elapsed minutes
// rounded down. A log owned by another technician reads as not found.
func (s *TimeLogService) Stop(ctx context.Context, caller *domain.User, logID string, notes *string) (*domain.TimeLog, error) {
	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("time log", map[string]any{"log_id": logID})
		}
		return nil, apperrors.MapError(err)
	}
	if log.TechnicianID != caller.ID {
		return nil, apperrors.NewNotFound("time log", map[string]any{"log_id": logID})
	}
	if !log.Open() {
		return nil, apperrors.NewConflict("timer already stopped", map[string]any{"log_id": logID})
	}

	end := s.now()
	duration := int(end.Sub(log.StartTime).Minutes())
	log.EndTime = &end
	log.DurationMinutes = &duration
	log.Notes = notes

	if err := s.logs.Stop(ctx, log); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflict("timer already stopped", map[string]any{"log_id": logID})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventTimerStopped,
		IssueID: log.IssueID,
		ActorID: caller.ID,
		Payload: events.TimerStoppedPayload{LogID: log.ID, DurationMinutes: duration},
	})
	return log, nil
}

// MyLogs returns all of the caller's logs, newest first.
func (s *TimeLogService) MyLogs(ctx context.Context, userID string) ([]domain.TimeLog, error) {
	result, err := s.logs.ListByTechnician(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// ActiveLog returns the caller's open log, or nil when none is running.
func (s *TimeLogService) ActiveLog(ctx context.Context, userID string) (*domain.TimeLog, error) {
	log, err := s.logs.GetActiveByTechnician(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.MapError(err)
	}
	return log, nil
}

// LogsForIssue returns every log for an issue with the summed duration.
func (s *TimeLogService) LogsForIssue(ctx context.Context, issueID string) (*IssueTimeSummary, error) {
	logs, err := s.logs.ListByIssue(ctx, issueID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	total := 0
	for _, log := range logs {
		if log.DurationMinutes != nil {
			total += *log.DurationMinutes
		}
	}
	return &IssueTimeSummary{Logs: logs, TotalMinutes: total}, nil
}

func (s *TimeLogService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	fillEventDefaults(&event)
	_ = s.dispatcher.Publish(ctx, event)
}
