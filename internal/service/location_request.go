package service

import (
	"context"
	"time"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/geo"
	"geoaccess-backend/internal/repository"
)

type locationRequestService struct {
	reqRepo    repository.LocationRequestRepository
	policyRepo repository.PolicyRepository
}

func NewLocationRequestService(
	reqRepo repository.LocationRequestRepository,
	policyRepo repository.PolicyRepository,
) LocationRequestService {
	return &locationRequestService{
		reqRepo:    reqRepo,
		policyRepo: policyRepo,
	}
}

func (s *locationRequestService) CreateRequest(ctx context.Context, in CreateLocationRequestInput) (*domain.LocationAccessRequest, error) {
	if !geo.ValidCoordinates(in.Latitude, in.Longitude) {
		return nil, domain.NewValidationError("coordinates", "latitude must be in [-90,90] and longitude in [-180,180]")
	}
	if in.RadiusMeters < 0 {
		return nil, domain.NewValidationError("radius_meters", "must be positive")
	}
	if in.RequestType != domain.RequestTypePermanent && in.RequestType != domain.RequestTypeTemporary {
		return nil, domain.NewValidationError("request_type", "must be PERMANENT or TEMPORARY")
	}

	radius := in.RadiusMeters
	if radius == 0 {
		policy, err := s.policyRepo.GetByOrg(ctx, in.OrgID)
		if err != nil {
			return nil, err
		}
		radius = policy.DefaultRadiusMeters
	}

	var validFrom, validTo *time.Time
	if in.RequestType == domain.RequestTypeTemporary {
		var err error
		validFrom, err = parseOptionalTime("valid_from", in.ValidFrom)
		if err != nil {
			return nil, err
		}
		validTo, err = parseOptionalTime("valid_to", in.ValidTo)
		if err != nil {
			return nil, err
		}
		if validFrom != nil && validTo != nil && !validFrom.Before(*validTo) {
			return nil, domain.NewValidationError("valid_to", "must be after valid_from")
		}
	}

	req := &domain.LocationAccessRequest{
		OrgID:        in.OrgID,
		Address:      in.Address,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		RadiusMeters: radius,
		RequestType:  in.RequestType,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
		Emergency:    in.Emergency,
		Status:       domain.RequestStatusPending,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *locationRequestService) GetRequest(ctx context.Context, id int32) (*domain.LocationAccessRequest, error) {
	return s.reqRepo.GetByID(ctx, id)
}

func (s *locationRequestService) ListRequests(ctx context.Context, orgID int32, status string) ([]domain.LocationAccessRequest, error) {
	var filter domain.RequestStatus
	if status != "" {
		filter = domain.RequestStatus(status)
		switch filter {
		case domain.RequestStatusPending, domain.RequestStatusApproved, domain.RequestStatusRejected, domain.RequestStatusStopped:
		default:
			return nil, domain.NewValidationError("status", "unknown status filter")
		}
	}
	return s.reqRepo.ListByOrg(ctx, orgID, filter)
}

// DeleteRequest removes the request permanently in any status. It never
// cascades: an allowed location created from an approved request stays in
// place until revoked or deleted on its own.
func (s *locationRequestService) DeleteRequest(ctx context.Context, id int32) error {
	return s.reqRepo.Delete(ctx, id)
}

func parseOptionalTime(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be an RFC 3339 timestamp")
	}
	return &t, nil
}
