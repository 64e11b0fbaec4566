package service

import (
	"context"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/repository"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

// StatsService serves role-branched issue counts and warden dashboards.
type StatsService struct {
	stats repository.StatsRepository
}

// UserStats is the role-branched count summary.
type UserStats struct {
	Total    int64
	Resolved int64
	Pending  int64
}

// DetailedStats holds group-by counts shaped for charts.
type DetailedStats struct {
	ByCategory []repository.GroupCount
	ByStatus   []repository.GroupCount
	ByPriority []repository.GroupCount
}

// NewStatsService constructs the service.
func NewStatsService(stats repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

var openStatuses = []domain.IssueStatus{
	domain.IssueStatusPending,
	domain.IssueStatusAssigned,
	domain.IssueStatusInProgress,
}

// StatsForUser branches by role: wardens see global counts, maintenance
// personnel see counts over their assignments, everyone else over their own
// reports.
func (s *StatsService) StatsForUser(ctx context.Context, caller *domain.User) (*UserStats, error) {
	var scope repository.IssueCountFilter
	switch {
	case caller.Role == domain.RoleWarden:
		// unscoped
	case domain.IsStaffRole(caller.Role):
		scope.AssignedTo = &caller.ID
	default:
		scope.ReportedBy = &caller.ID
	}

	total, err := s.stats.CountIssues(ctx, scope)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	resolvedScope := scope
	resolvedScope.Statuses = []domain.IssueStatus{domain.IssueStatusCompleted}
	resolved, err := s.stats.CountIssues(ctx, resolvedScope)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	pendingScope := scope
	pendingScope.Statuses = openStatuses
	pending, err := s.stats.CountIssues(ctx, pendingScope)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	return &UserStats{Total: total, Resolved: resolved, Pending: pending}, nil
}

// Detailed returns group-by counts over category, status and priority.
func (s *StatsService) Detailed(ctx context.Context) (*DetailedStats, error) {
	byCategory, err := s.stats.CountByCategory(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byStatus, err := s.stats.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	byPriority, err := s.stats.CountByPriority(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &DetailedStats{
		ByCategory: byCategory,
		ByStatus:   byStatus,
		ByPriority: byPriority,
	}, nil
}
