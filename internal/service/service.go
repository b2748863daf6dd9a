package service

import (
	"context"

	"geoaccess-backend/internal/domain"
)

// CreateLocationRequestInput carries the org admin's submission. Radius zero
// means "use the org policy's default radius".
type CreateLocationRequestInput struct {
	OrgID        int32
	Address      string
	Latitude     float64
	Longitude    float64
	RadiusMeters int32
	RequestType  domain.RequestType
	ValidFrom    *string // RFC 3339, TEMPORARY requests only
	ValidTo      *string
	Emergency    bool
}

type LocationRequestService interface {
	CreateRequest(ctx context.Context, in CreateLocationRequestInput) (*domain.LocationAccessRequest, error)
	GetRequest(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
	ListRequests(ctx context.Context, orgID int32, status string) ([]domain.LocationAccessRequest, error)
	DeleteRequest(ctx context.Context, id int32) error
}

// WorkflowService drives the request lifecycle. It is the only writer that
// touches a request and its allowed location together.
type WorkflowService interface {
	Review(ctx context.Context, id int32, action, comments string) (*domain.LocationAccessRequest, error)
	StopAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
	StartAccess(ctx context.Context, id int32) (*domain.LocationAccessRequest, error)
}

type AllowedLocationService interface {
	ListLocations(ctx context.Context, orgID int32) ([]domain.AllowedLocation, error)
	RevokeLocation(ctx context.Context, id int32) error
	DeleteLocation(ctx context.Context, id int32) error
}

type PolicyUpdate struct {
	Enforce             *bool
	DefaultRadiusMeters *int32
	Roles               []string // nil means unchanged
}

type PolicyService interface {
	GetPolicy(ctx context.Context, orgID int32) (*domain.OrgLocationPolicy, error)
	UpdatePolicy(ctx context.Context, orgID int32, update PolicyUpdate) (*domain.OrgLocationPolicy, error)
}

// EvaluatorService is the authentication-time decision function. It never
// returns DENY as an error.
type EvaluatorService interface {
	Evaluate(ctx context.Context, orgID int32, role string, lat, lon float64) (domain.Decision, error)
}

type SummaryService interface {
	Summarize(ctx context.Context) ([]domain.OrgGeofenceSummary, error)
}

type EmailService interface {
	SendReviewDecision(ctx context.Context, toEmail string, req *domain.LocationAccessRequest) error
}
