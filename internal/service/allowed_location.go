package service

import (
	"context"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/repository"
)

type allowedLocationService struct {
	locRepo repository.AllowedLocationRepository
}

func NewAllowedLocationService(locRepo repository.AllowedLocationRepository) AllowedLocationService {
	return &allowedLocationService{locRepo: locRepo}
}

func (s *allowedLocationService) ListLocations(ctx context.Context, orgID int32) ([]domain.AllowedLocation, error) {
	return s.locRepo.ListByOrg(ctx, orgID)
}

// RevokeLocation deactivates the zone directly, without touching the source
// request's status. Operator escape hatch, distinct from StopAccess.
func (s *allowedLocationService) RevokeLocation(ctx context.Context, id int32) error {
	return s.locRepo.Revoke(ctx, id)
}

// DeleteLocation soft-deletes the zone. The source request keeps its status;
// the audit trail of how the zone came to exist survives the cleanup.
func (s *allowedLocationService) DeleteLocation(ctx context.Context, id int32) error {
	return s.locRepo.SoftDelete(ctx, id)
}
