package domain

import "time"

// IssueCategory classifies a maintenance problem.
type IssueCategory string

const (
	CategoryPlumbing   IssueCategory = "PLUMBING"
	CategoryElectrical IssueCategory = "ELECTRICAL"
	CategoryFurniture  IssueCategory = "FURNITURE"
	CategoryWifi       IssueCategory = "WIFI"
	CategoryOther      IssueCategory = "OTHER"
)

// NormalizeCategory maps unrecognized values to OTHER.
func NormalizeCategory(c IssueCategory) IssueCategory {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryFurniture, CategoryWifi, CategoryOther:
		return c
	}
	return CategoryOther
}

// IssuePriority is ordinal: 1=LOW, 2=MEDIUM, 3=HIGH.
type IssuePriority int

const (
	PriorityLow    IssuePriority = 1
	PriorityMedium IssuePriority = 2
	PriorityHigh   IssuePriority = 3
)

// ValidPriority reports whether the ordinal is in range.
func ValidPriority(p IssuePriority) bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// IssueStatus enumerates lifecycle states for issues.
type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "PENDING"
	IssueStatusAssigned   IssueStatus = "ASSIGNED"
	IssueStatusInProgress IssueStatus = "IN_PROGRESS"
	IssueStatusCompleted  IssueStatus = "COMPLETED"
)

// ValidIssueStatus reports set membership. Transition ordering is not
// enforced; any valid status may be written at any time.
func ValidIssueStatus(s IssueStatus) bool {
	switch s {
	case IssueStatusPending, IssueStatusAssigned, IssueStatusInProgress, IssueStatusCompleted:
		return true
	}
	return false
}

// Issue is the aggregate for reported maintenance problems. Location is
// copied from the reporter at creation time and not kept in sync afterwards.
type Issue struct {
	ID            string
	Title         string
	Description   string
	Category      IssueCategory
	Priority      IssuePriority
	Status        IssueStatus
	RoomNumber    string
	Block         string
	ReportedBy    string
	AssignedTo    *string
	ScheduledDate *time.Time
	Images        []IssueImage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IssueImage stores the remote URL of an uploaded photo. Each image belongs
// to exactly one issue.
type IssueImage struct {
	ID        string
	IssueID   string
	URL       string
	CreatedAt time.Time
}
