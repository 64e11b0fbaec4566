package dto

import (
	"time"

	"github.com/spec-kit/repairhub/internal/domain"
)

// CreateIssueRequest payload. Status supplied here is ignored; new issues
// always start PENDING. Used for the JSON variant of POST /reports; the
// multipart variant carries the same fields as form values plus photo parts.
type CreateIssueRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Category    domain.IssueCategory `json:"category"`
	Priority    domain.IssuePriority `json:"priority"`
	RoomNumber  string               `json:"roomNumber"`
	Images      []string             `json:"images"`
}

// AssignIssueRequest payload.
type AssignIssueRequest struct {
	StaffID string `json:"staffId"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.IssueStatus `json:"status"`
}

// ScheduleIssueRequest payload.
type ScheduleIssueRequest struct {
	ScheduledDate time.Time `json:"scheduledDate"`
}

// IssueImageResponse metadata.
type IssueImageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// IssueResponse is the full issue projection.
type IssueResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      domain.IssueCategory `json:"category"`
	Priority      domain.IssuePriority `json:"priority"`
	Status        domain.IssueStatus   `json:"status"`
	RoomNumber    string               `json:"roomNumber"`
	Block         string               `json:"block"`
	ReportedBy    string               `json:"reportedBy"`
	AssignedTo    *string              `json:"assignedTo"`
	ScheduledDate *time.Time           `json:"scheduledDate"`
	Images        []IssueImageResponse `json:"images"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
