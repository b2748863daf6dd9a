package postgres

import (
	"context"
	"database/sql"
	"errors"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"

	"github.com/lib/pq"
)

type policyRepository struct {
	db *sql.DB
}

func NewPolicyRepository(db *sql.DB) repository.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByOrg returns the persisted policy, or the defaults when no row exists
// yet ("no row = defaults" is the lazy-singleton contract).
func (r *policyRepository) GetByOrg(ctx context.Context, orgID int32) (*domain.OrgLocationPolicy, error) {
	policy := &domain.OrgLocationPolicy{}
	query := `SELECT org_id, enforce, default_radius_meters, roles FROM org_location_policies WHERE org_id = $1`
	err := r.db.QueryRowContext(ctx, query, orgID).Scan(
		&policy.OrgID, &policy.Enforce, &policy.DefaultRadiusMeters, pq.Array(&policy.Roles),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultPolicy(orgID), nil
	}
	if err != nil {
		return nil, err
	}
	return policy, nil
}

func (r *policyRepository) Upsert(ctx context.Context, policy *domain.OrgLocationPolicy) error {
	query := `INSERT INTO org_location_policies (org_id, enforce, default_radius_meters, roles)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (org_id) DO UPDATE
	          SET enforce = EXCLUDED.enforce,
	              default_radius_meters = EXCLUDED.default_radius_meters,
	              roles = EXCLUDED.roles`
	_, err := r.db.ExecContext(ctx, query, policy.OrgID, policy.Enforce, policy.DefaultRadiusMeters, pq.Array(policy.Roles))
	return err
}
