package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairhub/internal/domain"
)

// PartsRequestRepository persists technician material requests.
type PartsRequestRepository interface {
	Create(ctx context.Context, req *domain.PartsRequest) error
	GetByID(ctx context.Context, id string) (*domain.PartsRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.PartsRequestStatus) (*domain.PartsRequest, error)
	ListAll(ctx context.Context) ([]domain.PartsRequestDetail, error)
	ListByRequester(ctx context.Context, userID string) ([]domain.PartsRequest, error)
}

type partsRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPartsRequestRepository constructs repository.
func NewPartsRequestRepository(pool *pgxpool.Pool) PartsRequestRepository {
	return &partsRequestRepository{pool: pool}
}

const partsColumns = `id, issue_id, requested_by, part_name, quantity, description, status, created_at, updated_at`

func (r *partsRequestRepository) Create(ctx context.Context, req *domain.PartsRequest) error {
	const query = `
        INSERT INTO parts_requests (issue_id, requested_by, part_name, quantity, description, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		req.IssueID,
		req.RequestedBy,
		req.PartName,
		req.Quantity,
		req.Description,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *partsRequestRepository) GetByID(ctx context.Context, id string) (*domain.PartsRequest, error) {
	const query = `SELECT ` + partsColumns + ` FROM parts_requests WHERE id=$1`
	var req domain.PartsRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID,
		&req.IssueID,
		&req.RequestedBy,
		&req.PartName,
		&req.Quantity,
		&req.Description,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *partsRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.PartsRequestStatus) (*domain.PartsRequest, error) {
	const query = `
        UPDATE parts_requests SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + partsColumns
	var req domain.PartsRequest
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&req.ID,
		&req.IssueID,
		&req.RequestedBy,
		&req.PartName,
		&req.Quantity,
		&req.Description,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *partsRequestRepository) ListAll(ctx context.Context) ([]domain.PartsRequestDetail, error) {
	const query = `
        SELECT p.id, p.issue_id, p.requested_by, p.part_name, p.quantity, p.description, p.status,
               p.created_at, p.updated_at, i.title, i.status, u.name
        FROM parts_requests p
        JOIN issues i ON i.id = p.issue_id
        JOIN users u ON u.id = p.requested_by
        ORDER BY p.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PartsRequestDetail
	for rows.Next() {
		var detail domain.PartsRequestDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.IssueID,
			&detail.RequestedBy,
			&detail.PartName,
			&detail.Quantity,
			&detail.Description,
			&detail.Status,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.IssueTitle,
			&detail.IssueStatus,
			&detail.RequesterName,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}

func (r *partsRequestRepository) ListByRequester(ctx context.Context, userID string) ([]domain.PartsRequest, error) {
	const query = `SELECT ` + partsColumns + ` FROM parts_requests WHERE requested_by=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPartsRequests(rows)
}

func scanPartsRequests(rows pgx.Rows) ([]domain.PartsRequest, error) {
	var result []domain.PartsRequest
	for rows.Next() {
		var req domain.PartsRequest
		if err := rows.Scan(
			&req.ID,
			&req.IssueID,
			&req.RequestedBy,
			&req.PartName,
			&req.Quantity,
			&req.Description,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}
