package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/repository"
)

func TestStatsService_WardenSeesGlobalCounts(t *testing.T) {
	repo := &fakeStatsRepo{countFn: func(filter repository.IssueCountFilter) int64 {
		switch {
		case len(filter.Statuses) == 0:
			return 10
		case filter.Statuses[0] == domain.IssueStatusCompleted:
			return 4
		default:
			return 6
		}
	}}
	svc := NewStatsService(repo)

	warden := &domain.User{ID: "w-1", Role: domain.RoleWarden}
	stats, err := svc.StatsForUser(context.Background(), warden)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.Resolved)
	assert.Equal(t, int64(6), stats.Pending)

	require.Len(t, repo.calls, 3)
	for _, call := range repo.calls {
		assert.Nil(t, call.ReportedBy)
		assert.Nil(t, call.AssignedTo)
	}
}

func TestStatsService_StaffScopedToAssignments(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatsService(repo)

	staff := &domain.User{ID: "s-1", Role: domain.RoleStaff}
	_, err := svc.StatsForUser(context.Background(), staff)
	require.NoError(t, err)

	require.Len(t, repo.calls, 3)
	for _, call := range repo.calls {
		require.NotNil(t, call.AssignedTo)
		assert.Equal(t, "s-1", *call.AssignedTo)
		assert.Nil(t, call.ReportedBy)
	}
}

func TestStatsService_StudentScopedToReports(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatsService(repo)

	student := &domain.User{ID: "u-1", Role: domain.RoleStudent}
	_, err := svc.StatsForUser(context.Background(), student)
	require.NoError(t, err)

	require.Len(t, repo.calls, 3)
	for _, call := range repo.calls {
		require.NotNil(t, call.ReportedBy)
		assert.Equal(t, "u-1", *call.ReportedBy)
	}
}

func TestStatsService_PendingCoversAllOpenStatuses(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatsService(repo)

	student := &domain.User{ID: "u-1", Role: domain.RoleStudent}
	_, err := svc.StatsForUser(context.Background(), student)
	require.NoError(t, err)

	// Third call is the "pending" scope: every non-completed status counts.
	pendingCall := repo.calls[2]
	assert.ElementsMatch(t, []domain.IssueStatus{
		domain.IssueStatusPending,
		domain.IssueStatusAssigned,
		domain.IssueStatusInProgress,
	}, pendingCall.Statuses)
}

func TestStatsService_Detailed(t *testing.T) {
	repo := &fakeStatsRepo{
		byCategory: []repository.GroupCount{{Name: "PLUMBING", Count: 5}, {Name: "OTHER", Count: 2}},
		byStatus:   []repository.GroupCount{{Name: "PENDING", Count: 3}, {Name: "COMPLETED", Count: 4}},
		byPriority: []repository.GroupCount{{Name: "1", Count: 6}, {Name: "3", Count: 1}},
	}
	svc := NewStatsService(repo)

	stats, err := svc.Detailed(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.ByCategory, 2)
	assert.Len(t, stats.ByStatus, 2)
	assert.Len(t, stats.ByPriority, 2)
	assert.Equal(t, int64(5), stats.ByCategory[0].Count)
}
