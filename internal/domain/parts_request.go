package domain

import "time"

// PartsRequestStatus enumerates approval states.
type PartsRequestStatus string

const (
	PartsStatusPending  PartsRequestStatus = "PENDING"
	PartsStatusApproved PartsRequestStatus = "APPROVED"
	PartsStatusRejected PartsRequestStatus = "REJECTED"
)

// ValidPartsStatus reports set membership.
func ValidPartsStatus(s PartsRequestStatus) bool {
	switch s {
	case PartsStatusPending, PartsStatusApproved, PartsStatusRejected:
		return true
	}
	return false
}

// PartsRequest is a technician's material request against an issue,
// approved or rejected by a warden.
type PartsRequest struct {
	ID          string
	IssueID     string
	RequestedBy string
	PartName    string
	Quantity    int
	Description *string
	Status      PartsRequestStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PartsRequestDetail adds issue and requester context for warden listings.
type PartsRequestDetail struct {
	PartsRequest
	IssueTitle    string
	IssueStatus   IssueStatus
	RequesterName string
}
