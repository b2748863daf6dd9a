package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"
)

type workflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) repository.WorkflowRepository {
	return &workflowRepository{db: db}
}

// lockRequest loads the request inside tx with a row lock, serializing
// concurrent transitions on the same request id.
func lockRequest(ctx context.Context, tx *sql.Tx, id int32) (*domain.LocationAccessRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM location_access_requests WHERE id = $1 FOR UPDATE`
	req, err := scanRequest(tx.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return req, err
}

func (r *workflowRepository) Approve(ctx context.Context, id int32) (*domain.LocationAccessRequest, *domain.AllowedLocation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, nil, err
	}
	if req.Status != domain.RequestStatusPending {
		return nil, nil, domain.NewInvalidStateError(id, req.Status, "approve")
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE location_access_requests SET status = $1, reviewed_on = $2 WHERE id = $3`,
		domain.RequestStatusApproved, now, id)
	if err != nil {
		return nil, nil, err
	}

	loc := &domain.AllowedLocation{
		OrgID:           req.OrgID,
		SourceRequestID: req.ID,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		RadiusMeters:    req.RadiusMeters,
		IsActive:        true,
		CreatedOn:       now,
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO allowed_locations (org_id, source_request_id, latitude, longitude, radius_meters, is_active, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		loc.OrgID, loc.SourceRequestID, loc.Latitude, loc.Longitude, loc.RadiusMeters, loc.IsActive, loc.CreatedOn,
	).Scan(&loc.ID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	req.Status = domain.RequestStatusApproved
	req.ReviewedOn = &now
	return req, loc, nil
}

func (r *workflowRepository) Reject(ctx context.Context, id int32, comments string) (*domain.LocationAccessRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusPending {
		return nil, domain.NewInvalidStateError(id, req.Status, "reject")
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE location_access_requests SET status = $1, review_comments = $2, reviewed_on = $3 WHERE id = $4`,
		domain.RequestStatusRejected, comments, now, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatusRejected
	req.ReviewComments = comments
	req.ReviewedOn = &now
	return req, nil
}

func (r *workflowRepository) Stop(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusApproved {
		return nil, domain.NewInvalidStateError(id, req.Status, "stop")
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE location_access_requests SET status = $1, stopped_on = $2 WHERE id = $3`,
		domain.RequestStatusStopped, now, id)
	if err != nil {
		return nil, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE allowed_locations SET is_active = false, revoked_on = $1 WHERE source_request_id = $2 AND deleted_on IS NULL`,
		now, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatusStopped
	req.StoppedOn = &now
	return req, nil
}

func (r *workflowRepository) Start(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusStopped {
		return nil, domain.NewInvalidStateError(id, req.Status, "start")
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE location_access_requests SET status = $1, reactivated_on = $2 WHERE id = $3`,
		domain.RequestStatusApproved, now, id)
	if err != nil {
		return nil, err
	}
	// Reactivation restores the zone exactly as approved: lat/lon/radius are
	// untouched.
	_, err = tx.ExecContext(ctx,
		`UPDATE allowed_locations SET is_active = true, revoked_on = NULL WHERE source_request_id = $1 AND deleted_on IS NULL`,
		id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatusApproved
	req.ReactivatedOn = &now
	return req, nil
}
