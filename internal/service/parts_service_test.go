package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairhub/internal/domain"
	"github.com/spec-kit/repairhub/internal/events"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

func newTestPartsService(t *testing.T) (*PartsService, *fakePartsRepo, *fakeIssueRepo, *recordingDispatcher) {
	t.Helper()
	parts := newFakePartsRepo()
	issues := newFakeIssueRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewPartsService(PartsDependencies{
		PartsRepo:  parts,
		IssueRepo:  issues,
		Dispatcher: dispatcher,
	})
	return svc, parts, issues, dispatcher
}

func TestPartsService_RequestForcesPending(t *testing.T) {
	svc, _, issues, dispatcher := newTestPartsService(t)
	issue := seedIssue(t, issues)

	req, err := svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID:  issue.ID,
		PartName: "ceramic tap valve",
		Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PartsStatusPending, req.Status)
	assert.Equal(t, "tech-1", req.RequestedBy)

	require.Len(t, dispatcher.published, 1)
	assert.Equal(t, events.EventPartsRequestCreated, dispatcher.published[0].Type)
}

func TestPartsService_RequestRequiresTechnician(t *testing.T) {
	svc, _, issues, _ := newTestPartsService(t)
	issue := seedIssue(t, issues)

	staff := &domain.User{ID: "staff-1", Role: domain.RoleStaff}
	_, err := svc.RequestParts(context.Background(), staff, PartsRequestInput{
		IssueID:  issue.ID,
		PartName: "valve",
		Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestPartsService_RequestValidation(t *testing.T) {
	svc, _, issues, _ := newTestPartsService(t)
	issue := seedIssue(t, issues)

	_, err := svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID: issue.ID, PartName: " ", Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID: issue.ID, PartName: "valve", Quantity: 0,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID: "missing", PartName: "valve", Quantity: 1,
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestPartsService_UpdateStatusDecision(t *testing.T) {
	svc, _, issues, dispatcher := newTestPartsService(t)
	issue := seedIssue(t, issues)

	req, err := svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID: issue.ID, PartName: "valve", Quantity: 1,
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(context.Background(), "warden-1", req.ID, domain.PartsStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.PartsStatusApproved, approved.Status)

	last := dispatcher.published[len(dispatcher.published)-1]
	assert.Equal(t, events.EventPartsRequestDecided, last.Type)
}

func TestPartsService_UpdateStatusRejectsUnknownValue(t *testing.T) {
	svc, _, _, _ := newTestPartsService(t)

	_, err := svc.UpdateStatus(context.Background(), "warden-1", "parts-1", "ORDERED")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestPartsService_UpdateStatusUnknownRequest(t *testing.T) {
	svc, _, _, _ := newTestPartsService(t)

	_, err := svc.UpdateStatus(context.Background(), "warden-1", "missing", domain.PartsStatusRejected)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestPartsService_ListMineScopedToRequester(t *testing.T) {
	svc, _, issues, _ := newTestPartsService(t)
	issue := seedIssue(t, issues)

	_, err := svc.RequestParts(context.Background(), technician(), PartsRequestInput{
		IssueID: issue.ID, PartName: "valve", Quantity: 1,
	})
	require.NoError(t, err)

	peer := &domain.User{ID: "tech-2", Role: domain.RoleTechnician}
	_, err = svc.RequestParts(context.Background(), peer, PartsRequestInput{
		IssueID: issue.ID, PartName: "gasket", Quantity: 3,
	})
	require.NoError(t, err)

	mine, err := svc.ListMine(context.Background(), "tech-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "valve", mine[0].PartName)
}
