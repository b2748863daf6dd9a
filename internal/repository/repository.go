package repository

import (
	"context"

	"geoaccess-backend/internal/domain"
)

type LocationRequestRepository interface {
	Create(ctx context.Context, req *domain.LocationAccessRequest) error
	GetByID(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
	ListByOrg(ctx context.Context, orgID int32, status domain.RequestStatus) ([]domain.LocationAccessRequest, error)
	Delete(ctx context.Context, id int32) error
}

type AllowedLocationRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.AllowedLocation, error)
	ListByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, error)
	// ListActiveByOrg returns non-revoked, non-soft-deleted locations together
	// with their source requests, so the caller can apply temporary-validity
	// windows.
	ListActiveByOrg(ctx context.Context, orgID int32) ([]domain.AllowedLocation, []domain.LocationAccessRequest, error)
	HasActiveByOrg(ctx context.Context, orgID int32) (bool, error)
	Revoke(ctx context.Context, id int32) error
	SoftDelete(ctx context.Context, id int32) error
	PurgeDeletedBefore(ctx context.Context, retentionDays int) (int64, error)
}

type PolicyRepository interface {
	GetByOrg(ctx context.Context, orgID int32) (*domain.OrgLocationPolicy, error)
	Upsert(ctx context.Context, policy *domain.OrgLocationPolicy) error
}

// WorkflowRepository executes the compound request/allowed-location
// transitions. Each method runs in a single transaction holding a row lock on
// the request, so a concurrent second transition observes the committed state
// and fails its guard with InvalidStateError.
type WorkflowRepository interface {
	Approve(ctx context.Context, id int32) (*domain.LocationAccessRequest, *domain.AllowedLocation, error)
	Reject(ctx context.Context, id int32, comments string) (*domain.LocationAccessRequest, error)
	Stop(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
	Start(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
}

type SummaryRepository interface {
	Summarize(ctx context.Context) ([]domain.OrgGeofenceSummary, error)
}
