package events

import (
	"time"

	"github.com/spec-kit/repairhub/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventIssueCreated        EventType = "issue_created"
	EventIssueAssigned       EventType = "issue_assigned"
	EventIssueScheduled      EventType = "issue_scheduled"
	EventIssueStatusChanged  EventType = "issue_status_changed"
	EventPartsRequestCreated EventType = "parts_request_created"
	EventPartsRequestDecided EventType = "parts_request_decided"
	EventTimerStarted        EventType = "timer_started"
	EventTimerStopped        EventType = "timer_stopped"
	EventFeedbackSubmitted   EventType = "feedback_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	IssueID   string      `json:"issue_id,omitempty"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// IssueCreatedPayload payload.
type IssueCreatedPayload struct {
	Title    string               `json:"title"`
	Category domain.IssueCategory `json:"category"`
	Priority domain.IssuePriority `json:"priority"`
	Room     string               `json:"room"`
	Block    string               `json:"block"`
}

// IssueAssignedPayload payload.
type IssueAssignedPayload struct {
	AssignedTo string `json:"assigned_to"`
}

// IssueScheduledPayload payload.
type IssueScheduledPayload struct {
	ScheduledDate time.Time `json:"scheduled_date"`
}

// IssueStatusChangedPayload payload.
type IssueStatusChangedPayload struct {
	OldStatus domain.IssueStatus `json:"old_status"`
	NewStatus domain.IssueStatus `json:"new_status"`
}

// PartsRequestCreatedPayload payload.
type PartsRequestCreatedPayload struct {
	RequestID string `json:"request_id"`
	PartName  string `json:"part_name"`
	Quantity  int    `json:"quantity"`
}

// PartsRequestDecidedPayload payload.
type PartsRequestDecidedPayload struct {
	RequestID string                    `json:"request_id"`
	Status    domain.PartsRequestStatus `json:"status"`
}

// TimerStartedPayload payload.
type TimerStartedPayload struct {
	LogID string `json:"log_id"`
}

// TimerStoppedPayload payload.
type TimerStoppedPayload struct {
	LogID           string `json:"log_id"`
	DurationMinutes int    `json:"duration_minutes"`
}

// FeedbackSubmittedPayload payload.
type FeedbackSubmittedPayload struct {
	Category domain.FeedbackCategory `json:"category"`
	Rating   *int                    `json:"rating,omitempty"`
}
