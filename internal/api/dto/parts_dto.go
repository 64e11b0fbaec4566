package dto

import (
	"time"

	"github.com/spec-kit/repairhub/internal/domain"
)

// CreatePartsRequest payload.
type CreatePartsRequest struct {
	IssueID     string  `json:"issueId"`
	PartName    string  `json:"partName"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

// UpdatePartsStatusRequest payload (warden decision).
type UpdatePartsStatusRequest struct {
	Status domain.PartsRequestStatus `json:"status"`
}

// PartsRequestResponse projection.
type PartsRequestResponse struct {
	ID          string                    `json:"id"`
	IssueID     string                    `json:"issueId"`
	RequestedBy string                    `json:"requestedBy"`
	PartName    string                    `json:"partName"`
	Quantity    int                       `json:"quantity"`
	Description *string                   `json:"description"`
	Status      domain.PartsRequestStatus `json:"status"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

// PartsRequestDetailResponse adds issue and requester context for warden
// listings.
type PartsRequestDetailResponse struct {
	PartsRequestResponse
	IssueTitle    string             `json:"issueTitle"`
	IssueStatus   domain.IssueStatus `json:"issueStatus"`
	RequesterName string             `json:"requesterName"`
}
