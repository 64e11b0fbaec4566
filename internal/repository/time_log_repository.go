package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairhub/internal/domain"
)

// ErrOpenLogExists signals that the technician already has a running timer.
var ErrOpenLogExists = errors.New("open time log exists")

// TimeLogRepository persists technician work sessions.
type TimeLogRepository interface {
	// StartForTechnician atomically verifies no open log exists for the
	// technician and inserts a new one. The check and insert run in a single
	// transaction; a partial unique index on (technician_id) WHERE end_time
	// IS NULL backs it against concurrent starts.
	StartForTechnician(ctx context.Context, log *domain.TimeLog) error
	GetByID(ctx context.Context, id string) (*domain.TimeLog, error)
	Stop(ctx context.Context, log *domain.TimeLog) error
	ListByTechnician(ctx context.Context, technicianID string) ([]domain.TimeLog, error)
	GetActiveByTechnician(ctx context.Context, technicianID string) (*domain.TimeLog, error)
	ListByIssue(ctx context.Context, issueID string) ([]domain.TimeLog, error)
}

type timeLogRepository struct {
	pool *pgxpool.Pool
}

// NewTimeLogRepository constructs repository.
func NewTimeLogRepository(pool *pgxpool.Pool) TimeLogRepository {
	return &timeLogRepository{pool: pool}
}

const timeLogColumns = `id, issue_id, technician_id, start_time, end_time, duration_minutes, notes, created_at`

func (r *timeLogRepository) StartForTechnician(ctx context.Context, log *domain.TimeLog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM time_logs WHERE technician_id=$1 AND end_time IS NULL FOR UPDATE`,
		log.TechnicianID,
	).Scan(&existingID)
	if err == nil {
		return ErrOpenLogExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	const insert = `
        INSERT INTO time_logs (issue_id, technician_id, start_time)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	if err := tx.QueryRow(ctx, insert,
		log.IssueID,
		log.TechnicianID,
		log.StartTime,
	).Scan(&log.ID, &log.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *timeLogRepository) GetByID(ctx context.Context, id string) (*domain.TimeLog, error) {
	const query = `SELECT ` + timeLogColumns + ` FROM time_logs WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *timeLogRepository) Stop(ctx context.Context, log *domain.TimeLog) error {
	const query = `
        UPDATE time_logs SET end_time=$1, duration_minutes=$2, notes=$3
        WHERE id=$4 AND end_time IS NULL`
	cmd, err := r.pool.Exec(ctx, query,
		log.EndTime,
		log.DurationMinutes,
		log.Notes,
		log.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *timeLogRepository) ListByTechnician(ctx context.Context, technicianID string) ([]domain.TimeLog, error) {
	const query = `SELECT ` + timeLogColumns + ` FROM time_logs WHERE technician_id=$1 ORDER BY start_time DESC`
	rows, err := r.pool.Query(ctx, query, technicianID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimeLogs(rows)
}

func (r *timeLogRepository) GetActiveByTechnician(ctx context.Context, technicianID string) (*domain.TimeLog, error) {
	const query = `SELECT ` + timeLogColumns + ` FROM time_logs WHERE technician_id=$1 AND end_time IS NULL`
	return r.fetchSingle(ctx, query, technicianID)
}

func (r *timeLogRepository) ListByIssue(ctx context.Context, issueID string) ([]domain.TimeLog, error) {
	const query = `SELECT ` + timeLogColumns + ` FROM time_logs WHERE issue_id=$1 ORDER BY start_time`
	rows, err := r.pool.Query(ctx, query, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTimeLogs(rows)
}

func (r *timeLogRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.TimeLog, error) {
	var log domain.TimeLog
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&log.ID,
		&log.IssueID,
		&log.TechnicianID,
		&log.StartTime,
		&log.EndTime,
		&log.DurationMinutes,
		&log.Notes,
		&log.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &log, nil
}

func scanTimeLogs(rows pgx.Rows) ([]domain.TimeLog, error) {
	var result []domain.TimeLog
	for rows.Next() {
		var log domain.TimeLog
		if err := rows.Scan(
			&log.ID,
			&log.IssueID,
			&log.TechnicianID,
			&log.StartTime,
			&log.EndTime,
			&log.DurationMinutes,
			&log.Notes,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, log)
	}
	return result, rows.Err()
}
