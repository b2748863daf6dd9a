package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"
)

const requestColumns = `id, org_id, address, latitude, longitude, radius_meters, request_type,
	valid_from, valid_to, emergency, status, review_comments, created_on, reviewed_on, stopped_on, reactivated_on`

type locationRequestRepository struct {
	db *sql.DB
}

func NewLocationRequestRepository(db *sql.DB) repository.LocationRequestRepository {
	return &locationRequestRepository{db: db}
}

func (r *locationRequestRepository) Create(ctx context.Context, req *domain.LocationAccessRequest) error {
	query := `INSERT INTO location_access_requests
	          (org_id, address, latitude, longitude, radius_meters, request_type, valid_from, valid_to, emergency, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	req.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		req.OrgID, req.Address, req.Latitude, req.Longitude, req.RadiusMeters, req.RequestType,
		req.ValidFrom, req.ValidTo, req.Emergency, req.Status, req.CreatedOn,
	).Scan(&req.ID)
}

func (r *locationRequestRepository) GetByID(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM location_access_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *locationRequestRepository) ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.LocationAccessRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM location_access_requests WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.LocationAccessRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	return reqs, rows.Err()
}

func (r *locationRequestRepository) Delete(ctx context.Context, id int32) error {
	// Intentionally no cascade: a dependent allowed location survives the
	// deletion of its source request.
	result, err := r.db.ExecContext(ctx, `DELETE FROM location_access_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*domain.LocationAccessRequest, error) {
	req := &domain.LocationAccessRequest{}
	var comments sql.NullString
	err := row.Scan(
		&req.ID, &req.OrgID, &req.Address, &req.Latitude, &req.Longitude, &req.RadiusMeters, &req.RequestType,
		&req.ValidFrom, &req.ValidTo, &req.Emergency, &req.Status, &comments,
		&req.CreatedOn, &req.ReviewedOn, &req.StoppedOn, &req.ReactivatedOn,
	)
	if err != nil {
		return nil, err
	}
	req.ReviewComments = comments.String
	return req, nil
}
