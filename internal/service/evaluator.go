package service

import (
	"context"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/geo"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository"
)

type evaluatorService struct {
	policyRepo repository.PolicyRepository
	locRepo    repository.AllowedLocationRepository
	now        func() time.Time
}

func NewEvaluatorService(policyRepo repository.PolicyRepository, locRepo repository.AllowedLocationRepository) EvaluatorService {
	return &evaluatorService{
		policyRepo: policyRepo,
		locRepo:    locRepo,
		now:        time.Now,
	}
}

// Evaluate decides ALLOW/DENY for a login attempt. This is the hot
// authentication path: one policy read and one zone read, no locks shared
// with the workflow engine. A zone revoked microseconds after the read is an
// accepted race; the next login sees it.
func (s *evaluatorService) Evaluate(ctx context.Context, orgID int32, role string, lat, lon float64) (domain.Decision, error) {
	if !geo.ValidCoordinates(lat, lon) {
		return domain.Decision{}, domain.NewValidationError("coordinates", "latitude must be in [-90,90] and longitude in [-180,180]")
	}

	policy, err := s.policyRepo.GetByOrg(ctx, orgID)
	if err != nil {
		return domain.Decision{}, err
	}

	locs, reqs, err := s.locRepo.ListActiveByOrg(ctx, orgID)
	if err != nil {
		return domain.Decision{}, err
	}

	// Temporary zones past their validity window are inactive at evaluation
	// time; no sweeper flips rows.
	now := s.now()
	active := locs[:0:0]
	for i, loc := range locs {
		if reqs[i].Expired(now) {
			continue
		}
		active = append(active, loc)
	}

	// Agent/QA/TL always require location access once any active zone exists,
	// even when the policy's roles list excludes them.
	enforced := (policy.Enforce && policy.Covers(role)) ||
		(domain.IsAlwaysEnforcedRole(role) && len(active) > 0)

	decision := s.decide(enforced, active, lat, lon)
	logger.Debug("Geofence evaluation",
		"org_id", orgID, "role", role, "allow", decision.Allow, "reason", decision.Reason,
		"active_zones", len(active))
	return decision, nil
}

func (s *evaluatorService) decide(enforced bool, zones []domain.AllowedLocation, lat, lon float64) domain.Decision {
	if !enforced {
		return domain.Allow(domain.ReasonNotEnforced)
	}
	if len(zones) == 0 {
		return domain.Deny(domain.ReasonNoActiveZones)
	}
	for _, zone := range zones {
		if geo.WithinRadius(zone.Latitude, zone.Longitude, lat, lon, float64(zone.RadiusMeters)) {
			return domain.Allow(domain.ReasonInsideAllowedRadius)
		}
	}
	return domain.Deny(domain.ReasonOutsideAllowedRadius)
}
