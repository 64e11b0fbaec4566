package dto

import "github.com/spec-kit/repairhub/internal/domain"

// SubmitFeedbackRequest payload. Rating is optional; when present it must
// be between 1 and 5.
type SubmitFeedbackRequest struct {
	Category domain.FeedbackCategory `json:"category"`
	Subject  string                  `json:"subject"`
	Message  string                  `json:"message"`
	Rating   *int                    `json:"rating"`
}
