package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairhub/internal/domain"
)

// IssueCountFilter scopes count queries. Nil fields are ignored.
type IssueCountFilter struct {
	ReportedBy *string
	AssignedTo *string
	Statuses   []domain.IssueStatus
}

// GroupCount is a chart-friendly {name, count} pair.
type GroupCount struct {
	Name  string
	Count int64
}

// StatsRepository serves count and group-by aggregates. Aggregates are
// recomputed on every read; nothing is cached.
type StatsRepository interface {
	CountIssues(ctx context.Context, filter IssueCountFilter) (int64, error)
	CountByCategory(ctx context.Context) ([]GroupCount, error)
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountByPriority(ctx context.Context) ([]GroupCount, error)
}

type statsRepository struct {
	pool *pgxpool.Pool
}

// NewStatsRepository constructs repository.
func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) CountIssues(ctx context.Context, filter IssueCountFilter) (int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ReportedBy != nil {
		args = append(args, *filter.ReportedBy)
		clauses = append(clauses, fmt.Sprintf("reported_by=$%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		clauses = append(clauses, fmt.Sprintf("assigned_to=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM issues WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountByCategory(ctx context.Context) ([]GroupCount, error) {
	return r.groupBy(ctx, `SELECT category, COUNT(*) FROM issues GROUP BY category ORDER BY category`)
}

func (r *statsRepository) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	return r.groupBy(ctx, `SELECT status, COUNT(*) FROM issues GROUP BY status ORDER BY status`)
}

func (r *statsRepository) CountByPriority(ctx context.Context) ([]GroupCount, error) {
	return r.groupBy(ctx, `SELECT priority::text, COUNT(*) FROM issues GROUP BY priority ORDER BY priority`)
}

func (r *statsRepository) groupBy(ctx context.Context, query string) ([]GroupCount, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GroupCount
	for rows.Next() {
		var entry GroupCount
		if err := rows.Scan(&entry.Name, &entry.Count); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
