package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairhub/internal/domain"
)

// IssueImageRepository persists uploaded photo URLs.
type IssueImageRepository interface {
	Create(ctx context.Context, image *domain.IssueImage) error
	ListByIssue(ctx context.Context, issueID string) ([]domain.IssueImage, error)
}

type issueImageRepository struct {
	pool *pgxpool.Pool
}

// NewIssueImageRepository constructs repository.
func NewIssueImageRepository(pool *pgxpool.Pool) IssueImageRepository {
	return &issueImageRepository{pool: pool}
}

func (r *issueImageRepository) Create(ctx context.Context, image *domain.IssueImage) error {
	const query = `
        INSERT INTO issue_images (issue_id, url)
        VALUES ($1,$2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		image.IssueID,
		image.URL,
	).Scan(&image.ID, &image.CreatedAt)
}

func (r *issueImageRepository) ListByIssue(ctx context.Context, issueID string) ([]domain.IssueImage, error) {
	const query = `
        SELECT id, issue_id, url, created_at
        FROM issue_images WHERE issue_id=$1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.IssueImage
	for rows.Next() {
		var image domain.IssueImage
		if err := rows.Scan(
			&image.ID,
			&image.IssueID,
			&image.URL,
			&image.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}
