package domain

import "time"

// FeedbackCategory classifies app feedback submissions.
type FeedbackCategory string

const (
	FeedbackGeneral    FeedbackCategory = "GENERAL"
	FeedbackBugReport  FeedbackCategory = "BUG_REPORT"
	FeedbackSuggestion FeedbackCategory = "SUGGESTION"
	FeedbackComplaint  FeedbackCategory = "COMPLAINT"
)

// AppFeedback is a write-only record; there is no lifecycle beyond creation.
type AppFeedback struct {
	ID        string
	UserID    string
	Category  FeedbackCategory
	Subject   string
	Message   string
	Rating    *int
	CreatedAt time.Time
}
