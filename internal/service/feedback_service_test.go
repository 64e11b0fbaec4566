package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairhub/internal/domain"
	apperrors "github.com/spec-kit/repairhub/pkg/util"
)

func intPtr(v int) *int { return &v }

func TestFeedbackService_Submit(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(repo, &recordingDispatcher{})

	fb, err := svc.Submit(context.Background(), "user-1", FeedbackInput{
		Category: domain.FeedbackSuggestion,
		Subject:  "  Dark mode  ",
		Message:  "please add one",
		Rating:   intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dark mode", fb.Subject)
	assert.Equal(t, "user-1", fb.UserID)
	assert.Len(t, repo.records, 1)
}

func TestFeedbackService_RatingBounds(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, nil)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), "user-1", FeedbackInput{
			Subject: "s", Message: "m", Rating: intPtr(rating),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	}

	// Absent rating is fine.
	_, err := svc.Submit(context.Background(), "user-1", FeedbackInput{Subject: "s", Message: "m"})
	require.NoError(t, err)
}

func TestFeedbackService_RequiresSubjectAndMessage(t *testing.T) {
	svc := NewFeedbackService(&fakeFeedbackRepo{}, nil)

	_, err := svc.Submit(context.Background(), "user-1", FeedbackInput{Subject: " ", Message: "m"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
