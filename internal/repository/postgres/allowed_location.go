package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"
)

const locationColumns = `id, org_id, source_request_id, latitude, longitude, radius_meters, is_active, created_on, revoked_on, deleted_on`

type allowedLocationRepository struct {
	db *sql.DB
}

func NewAllowedLocationRepository(db *sql.DB) repository.AllowedLocationRepository {
	return &allowedLocationRepository{db: db}
}

func (r *allowedLocationRepository) GetByID(ctx context.Context, id int32) (*domain.AllowedLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM allowed_locations WHERE id = $1 AND deleted_on IS NULL`
	loc, err := scanLocation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return loc, err
}

func (r *allowedLocationRepository) ListByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM allowed_locations
	          WHERE org_id = $1 AND deleted_on IS NULL ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLocations(rows)
}

func (r *allowedLocationRepository) ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, []domain.LocationAccessRequest, error) {
	query := `SELECT l.id, l.org_id, l.source_request_id, l.latitude, l.longitude, l.radius_meters,
	                 l.is_active, l.created_on, l.revoked_on, l.deleted_on,
	                 q.request_type, q.valid_from, q.valid_to
	          FROM allowed_locations l
	          JOIN location_access_requests q ON q.id = l.source_request_id
	          WHERE l.org_id = $1 AND l.is_active = true AND l.deleted_on IS NULL`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var locs []domain.AllowedLocation
	var reqs []domain.LocationAccessRequest
	for rows.Next() {
		var loc domain.AllowedLocation
		var req domain.LocationAccessRequest
		err := rows.Scan(
			&loc.ID, &loc.OrgID, &loc.SourceRequestID, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters,
			&loc.IsActive, &loc.CreatedOn, &loc.RevokedOn, &loc.DeletedOn,
			&req.RequestType, &req.ValidFrom, &req.ValidTo,
		)
		if err != nil {
			return nil, nil, err
		}
		req.ID = loc.SourceRequestID
		locs = append(locs, loc)
		reqs = append(reqs, req)
	}
	return locs, reqs, rows.Err()
}

func (r *allowedLocationRepository) HasActiveByOrg(ctx context.Context, orgID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM allowed_locations WHERE org_id = $1 AND is_active = true AND deleted_on IS NULL)`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(&exists)
	return exists, err
}

func (r *allowedLocationRepository) Revoke(ctx context.Context, id int32) error {
	query := `UPDATE allowed_locations SET is_active = false, revoked_on = $1 WHERE id = $2 AND deleted_on IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return checkFound(result)
}

func (r *allowedLocationRepository) SoftDelete(ctx context.Context, id int32) error {
	// Does not touch the source request: the request's history survives the
	// removal of the derived zone.
	query := `UPDATE allowed_locations SET deleted_on = $1 WHERE id = $2 AND deleted_on IS NULL`
	result, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return checkFound(result)
}

func (r *allowedLocationRepository) PurgeDeletedBefore(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	result, err := r.db.ExecContext(ctx, `DELETE FROM allowed_locations WHERE deleted_on IS NOT NULL AND deleted_on < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func checkFound(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanLocation(row rowScanner) (*domain.AllowedLocation, error) {
	loc := &domain.AllowedLocation{}
	err := row.Scan(
		&loc.ID, &loc.OrgID, &loc.SourceRequestID, &loc.Latitude, &loc.Longitude, &loc.RadiusMeters,
		&loc.IsActive, &loc.CreatedOn, &loc.RevokedOn, &loc.DeletedOn,
	)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func collectLocations(rows *sql.Rows) ([]domain.AllowedLocation, error) {
	var locs []domain.AllowedLocation
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locs = append(locs, *loc)
	}
	return locs, rows.Err()
}
