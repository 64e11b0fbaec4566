package dto

import "github.com/spec-kit/repairhub/internal/domain"

// FromUser projects a domain user for responses.
func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		RoomNumber:  u.RoomNumber,
		Block:       u.Block,
		CreatedAt:   u.CreatedAt,
	}
}

// FromUsers projects a slice of users.
func FromUsers(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

// FromIssue projects a domain issue for responses.
func FromIssue(issue *domain.Issue) IssueResponse {
	images := make([]IssueImageResponse, 0, len(issue.Images))
	for _, img := range issue.Images {
		images = append(images, IssueImageResponse{ID: img.ID, URL: img.URL})
	}
	return IssueResponse{
		ID:            issue.ID,
		Title:         issue.Title,
		Description:   issue.Description,
		Category:      issue.Category,
		Priority:      issue.Priority,
		Status:        issue.Status,
		RoomNumber:    issue.RoomNumber,
		Block:         issue.Block,
		ReportedBy:    issue.ReportedBy,
		AssignedTo:    issue.AssignedTo,
		ScheduledDate: issue.ScheduledDate,
		Images:        images,
		CreatedAt:     issue.CreatedAt,
		UpdatedAt:     issue.UpdatedAt,
	}
}

// FromIssues projects a slice of issues.
func FromIssues(issues []domain.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		out = append(out, FromIssue(&issues[i]))
	}
	return out
}

// FromPartsRequest projects a parts request.
func FromPartsRequest(pr *domain.PartsRequest) PartsRequestResponse {
	return PartsRequestResponse{
		ID:          pr.ID,
		IssueID:     pr.IssueID,
		RequestedBy: pr.RequestedBy,
		PartName:    pr.PartName,
		Quantity:    pr.Quantity,
		Description: pr.Description,
		Status:      pr.Status,
		CreatedAt:   pr.CreatedAt,
	}
}

// FromPartsRequests projects a slice of parts requests.
func FromPartsRequests(prs []domain.PartsRequest) []PartsRequestResponse {
	out := make([]PartsRequestResponse, 0, len(prs))
	for i := range prs {
		out = append(out, FromPartsRequest(&prs[i]))
	}
	return out
}

// FromPartsRequestDetails projects warden-facing rows with joined context.
func FromPartsRequestDetails(details []domain.PartsRequestDetail) []PartsRequestDetailResponse {
	out := make([]PartsRequestDetailResponse, 0, len(details))
	for i := range details {
		d := &details[i]
		out = append(out, PartsRequestDetailResponse{
			PartsRequestResponse: FromPartsRequest(&d.PartsRequest),
			IssueTitle:           d.IssueTitle,
			IssueStatus:          d.IssueStatus,
			RequesterName:        d.RequesterName,
		})
	}
	return out
}

// FromTimeLog projects a time log.
func FromTimeLog(log *domain.TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:              log.ID,
		IssueID:         log.IssueID,
		TechnicianID:    log.TechnicianID,
		StartTime:       log.StartTime,
		EndTime:         log.EndTime,
		DurationMinutes: log.DurationMinutes,
		Notes:           log.Notes,
	}
}

// FromTimeLogs projects a slice of time logs.
func FromTimeLogs(logs []domain.TimeLog) []TimeLogResponse {
	out := make([]TimeLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, FromTimeLog(&logs[i]))
	}
	return out
}
