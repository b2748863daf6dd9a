package postgres

import (
	"context"
	"database/sql"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"

	"github.com/lib/pq"
)

type summaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) repository.SummaryRepository {
	return &summaryRepository{db: db}
}

// Summarize rolls up request counts, active zone counts, and policy state for
// every organization that appears in any of the three tables.
func (r *summaryRepository) Summarize(ctx context.Context) ([]domain.OrgGeofenceSummary, error) {
	query := `
	WITH orgs AS (
		SELECT org_id FROM location_access_requests
		UNION
		SELECT org_id FROM allowed_locations
		UNION
		SELECT org_id FROM org_location_policies
	)
	SELECT o.org_id,
	       COALESCE((SELECT COUNT(*) FROM allowed_locations l
	                 WHERE l.org_id = o.org_id AND l.is_active = true AND l.deleted_on IS NULL), 0),
	       COALESCE((SELECT COUNT(*) FROM location_access_requests q
	                 WHERE q.org_id = o.org_id AND q.status = 'PENDING'), 0),
	       COALESCE((SELECT COUNT(*) FROM location_access_requests q
	                 WHERE q.org_id = o.org_id AND q.status = 'APPROVED'), 0),
	       COALESCE((SELECT COUNT(*) FROM location_access_requests q
	                 WHERE q.org_id = o.org_id AND q.status = 'STOPPED'), 0),
	       COALESCE(p.enforce, false),
	       COALESCE(p.roles, '{}')
	FROM orgs o
	LEFT JOIN org_location_policies p ON p.org_id = o.org_id
	ORDER BY o.org_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.OrgGeofenceSummary
	for rows.Next() {
		var s domain.OrgGeofenceSummary
		var roles []string
		err := rows.Scan(&s.OrgID, &s.ActiveAllowedCount, &s.PendingCount, &s.ApprovedCount, &s.StoppedCount,
			&s.Enforce, pq.Array(&roles))
		if err != nil {
			return nil, err
		}
		// An org with zones but no policy row still reports the default
		// enforced-roles set.
		if len(roles) == 0 {
			roles = append([]string(nil), domain.KnownPolicyRoles...)
		}
		s.RolesEnforced = roles
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
