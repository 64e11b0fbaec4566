package domain

import "time"

// TimeLog is a technician's work session against one issue. At most one log
// per technician may have a nil EndTime at any point in time.
type TimeLog struct {
	ID              string
	IssueID         string
	TechnicianID    string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Notes           *string
	CreatedAt       time.Time
}

// Open reports whether the log is still running.
func (t *TimeLog) Open() bool {
	return t.EndTime == nil
}
