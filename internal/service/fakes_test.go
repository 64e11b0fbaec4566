package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	"github.com/spec-kit/repairhub/internal/repository"
)

// In-memory repository fakes. They assign sequential IDs on create and
// return pgx.ErrNoRows for absent rows, mirroring the real implementations.

type fakeUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ListByRoles(_ context.Context, roles []domain.Role) ([]domain.User, error) {
	var out []domain.User
	for _, user := range r.users {
		for _, role := range roles {
			if user.Role == role {
				out = append(out, *user)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

type fakeIssueRepo struct {
	issues map[string]*domain.Issue
	seq    int
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: map[string]*domain.Issue{}}
}

func (r *fakeIssueRepo) Create(_ context.Context, issue *domain.Issue) error {
	r.seq++
	issue.ID = fmt.Sprintf("issue-%d", r.seq)
	issue.CreatedAt = time.Now()
	issue.UpdatedAt = issue.CreatedAt
	clone := *issue
	r.issues[issue.ID] = &clone
	return nil
}

func (r *fakeIssueRepo) Update(_ context.Context, issue *domain.Issue) error {
	if _, ok := r.issues[issue.ID]; !ok {
		return pgx.ErrNoRows
	}
	issue.UpdatedAt = time.Now()
	clone := *issue
	r.issues[issue.ID] = &clone
	return nil
}

func (r *fakeIssueRepo) GetByID(_ context.Context, id string) (*domain.Issue, error) {
	issue, ok := r.issues[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *issue
	return &clone, nil
}

func (r *fakeIssueRepo) ListWithFilter(_ context.Context, filter repository.IssueFilter) ([]domain.Issue, error) {
	var out []domain.Issue
	for _, issue := range r.issues {
		if filter.ReportedBy != nil && issue.ReportedBy != *filter.ReportedBy {
			continue
		}
		if filter.AssignedTo != nil && (issue.AssignedTo == nil || *issue.AssignedTo != *filter.AssignedTo) {
			continue
		}
		if filter.Unassigned && issue.AssignedTo != nil {
			continue
		}
		if filter.RoomNumber != nil && issue.RoomNumber != *filter.RoomNumber {
			continue
		}
		if filter.Block != nil && issue.Block != *filter.Block {
			continue
		}
		if len(filter.Statuses) > 0 {
			match := false
			for _, status := range filter.Statuses {
				if issue.Status == status {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *issue)
	}
	return out, nil
}

type fakeImageRepo struct {
	images map[string][]domain.IssueImage
	seq    int
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[string][]domain.IssueImage{}}
}

func (r *fakeImageRepo) Create(_ context.Context, image *domain.IssueImage) error {
	r.seq++
	image.ID = fmt.Sprintf("image-%d", r.seq)
	image.CreatedAt = time.Now()
	r.images[image.IssueID] = append(r.images[image.IssueID], *image)
	return nil
}

func (r *fakeImageRepo) ListByIssue(_ context.Context, issueID string) ([]domain.IssueImage, error) {
	return r.images[issueID], nil
}

type fakePartsRepo struct {
	requests map[string]*domain.PartsRequest
	details  []domain.PartsRequestDetail
	seq      int
}

func newFakePartsRepo() *fakePartsRepo {
	return &fakePartsRepo{requests: map[string]*domain.PartsRequest{}}
}

func (r *fakePartsRepo) Create(_ context.Context, req *domain.PartsRequest) error {
	r.seq++
	req.ID = fmt.Sprintf("parts-%d", r.seq)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	clone := *req
	r.requests[req.ID] = &clone
	return nil
}

func (r *fakePartsRepo) GetByID(_ context.Context, id string) (*domain.PartsRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *req
	return &clone, nil
}

func (r *fakePartsRepo) UpdateStatus(_ context.Context, id string, status domain.PartsRequestStatus) (*domain.PartsRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	clone := *req
	return &clone, nil
}

func (r *fakePartsRepo) ListAll(_ context.Context) ([]domain.PartsRequestDetail, error) {
	return r.details, nil
}

func (r *fakePartsRepo) ListByRequester(_ context.Context, userID string) ([]domain.PartsRequest, error) {
	var out []domain.PartsRequest
	for _, req := range r.requests {
		if req.RequestedBy == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

type fakeTimeLogRepo struct {
	logs map[string]*domain.TimeLog
	seq  int
}

func newFakeTimeLogRepo() *fakeTimeLogRepo {
	return &fakeTimeLogRepo{logs: map[string]*domain.TimeLog{}}
}

func (r *fakeTimeLogRepo) StartForTechnician(_ context.Context, log *domain.TimeLog) error {
	for _, existing := range r.logs {
		if existing.TechnicianID == log.TechnicianID && existing.EndTime == nil {
			return repository.ErrOpenLogExists
		}
	}
	r.seq++
	log.ID = fmt.Sprintf("log-%d", r.seq)
	log.CreatedAt = time.Now()
	clone := *log
	r.logs[log.ID] = &clone
	return nil
}

func (r *fakeTimeLogRepo) GetByID(_ context.Context, id string) (*domain.TimeLog, error) {
	log, ok := r.logs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *log
	return &clone, nil
}

func (r *fakeTimeLogRepo) Stop(_ context.Context, log *domain.TimeLog) error {
	existing, ok := r.logs[log.ID]
	if !ok || existing.EndTime != nil {
		return pgx.ErrNoRows
	}
	clone := *log
	r.logs[log.ID] = &clone
	return nil
}

func (r *fakeTimeLogRepo) ListByTechnician(_ context.Context, technicianID string) ([]domain.TimeLog, error) {
	var out []domain.TimeLog
	for _, log := range r.logs {
		if log.TechnicianID == technicianID {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (r *fakeTimeLogRepo) GetActiveByTechnician(_ context.Context, technicianID string) (*domain.TimeLog, error) {
	for _, log := range r.logs {
		if log.TechnicianID == technicianID && log.EndTime == nil {
			clone := *log
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTimeLogRepo) ListByIssue(_ context.Context, issueID string) ([]domain.TimeLog, error) {
	var out []domain.TimeLog
	for _, log := range r.logs {
		if log.IssueID == issueID {
			out = append(out, *log)
		}
	}
	return out, nil
}

type fakeFeedbackRepo struct {
	records []domain.AppFeedback
	seq     int
}

func (r *fakeFeedbackRepo) Create(_ context.Context, feedback *domain.AppFeedback) error {
	r.seq++
	feedback.ID = fmt.Sprintf("feedback-%d", r.seq)
	feedback.CreatedAt = time.Now()
	r.records = append(r.records, *feedback)
	return nil
}

type fakeStatsRepo struct {
	countFn    func(filter repository.IssueCountFilter) int64
	byCategory []repository.GroupCount
	byStatus   []repository.GroupCount
	byPriority []repository.GroupCount
	calls      []repository.IssueCountFilter
}

func (r *fakeStatsRepo) CountIssues(_ context.Context, filter repository.IssueCountFilter) (int64, error) {
	r.calls = append(r.calls, filter)
	if r.countFn == nil {
		return 0, nil
	}
	return r.countFn(filter), nil
}

func (r *fakeStatsRepo) CountByCategory(_ context.Context) ([]repository.GroupCount, error) {
	return r.byCategory, nil
}

func (r *fakeStatsRepo) CountByStatus(_ context.Context) ([]repository.GroupCount, error) {
	return r.byStatus, nil
}

func (r *fakeStatsRepo) CountByPriority(_ context.Context) ([]repository.GroupCount, error) {
	return r.byPriority, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
