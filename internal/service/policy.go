package service

import (
	"context"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository"
)

type policyService struct {
	policyRepo repository.PolicyRepository
	locRepo    repository.AllowedLocationRepository
}

func NewPolicyService(policyRepo repository.PolicyRepository, locRepo repository.AllowedLocationRepository) PolicyService {
	return &policyService{policyRepo: policyRepo, locRepo: locRepo}
}

func (s *policyService) GetPolicy(ctx context.Context, orgID int32) (*domain.OrgLocationPolicy, error) {
	return s.policyRepo.GetByOrg(ctx, orgID)
}

// UpdatePolicy applies a partial update on top of the current (possibly
// default) policy and persists the merged row.
func (s *policyService) UpdatePolicy(ctx context.Context, orgID int32, update PolicyUpdate) (*domain.OrgLocationPolicy, error) {
	policy, err := s.policyRepo.GetByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if update.Enforce != nil {
		policy.Enforce = *update.Enforce
	}
	if update.DefaultRadiusMeters != nil {
		if *update.DefaultRadiusMeters <= 0 {
			return nil, domain.NewValidationError("default_radius_meters", "must be positive")
		}
		policy.DefaultRadiusMeters = *update.DefaultRadiusMeters
	}
	if update.Roles != nil {
		if len(update.Roles) == 0 {
			return nil, domain.NewValidationError("roles", "must not be empty")
		}
		for _, role := range update.Roles {
			if !domain.IsKnownPolicyRole(role) {
				return nil, domain.NewValidationError("roles", "unknown role "+role)
			}
		}
		policy.Roles = update.Roles
	}

	if err := s.policyRepo.Upsert(ctx, policy); err != nil {
		return nil, err
	}

	// Turning enforcement on with no active zone locks out every enforced
	// role until a request is approved. Worth a trace in the logs.
	if policy.Enforce {
		hasActive, err := s.locRepo.HasActiveByOrg(ctx, orgID)
		if err == nil && !hasActive {
			logger.Warn("Enforcement enabled for org with no active allowed locations", "org_id", orgID)
		}
	}
	return policy, nil
}
