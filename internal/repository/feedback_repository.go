package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairhub/internal/domain"
)

// FeedbackRepository persists app feedback records.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.AppFeedback) error
}

type feedbackRepository struct {
	pool *pgxpool.Pool
}

// NewFeedbackRepository constructs repository.
func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &feedbackRepository{pool: pool}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.AppFeedback) error {
	const query = `
        INSERT INTO app_feedback (user_id, category, subject, message, rating)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		feedback.UserID,
		feedback.Category,
		feedback.Subject,
		feedback.Message,
		feedback.Rating,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}
