package dto

import "time"

// StartTimerRequest payload.
type StartTimerRequest struct {
	IssueID string `json:"issueId"`
}

// StopTimerRequest payload.
type StopTimerRequest struct {
	Notes *string `json:"notes"`
}

// TimeLogResponse projection.
type TimeLogResponse struct {
	ID              string     `json:"id"`
	IssueID         string     `json:"issueId"`
	TechnicianID    string     `json:"technicianId"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime"`
	DurationMinutes *int       `json:"durationMinutes"`
	Notes           *string    `json:"notes"`
}

// IssueTimeLogsResponse pairs an issue's logs with the summed duration.
type IssueTimeLogsResponse struct {
	Logs         []TimeLogResponse `json:"logs"`
	TotalMinutes int               `json:"totalMinutes"`
}
