package domain

import "time"

// AllowedLocation is the enforceable geofence materialized when a request is
// approved. It keeps a back-reference to its source request but survives that
// request's deletion; revoking or deleting a location likewise leaves the
// request untouched.
type AllowedLocation struct {
	ID              int32      `json:"id"`
	OrgID           int32      `json:"org_id"`
	SourceRequestID int32      `json:"source_request_id"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	RadiusMeters    int32      `json:"radius_meters"`
	IsActive        bool       `json:"is_active"`
	CreatedOn       time.Time  `json:"created_on"`
	RevokedOn       *time.Time `json:"revoked_on,omitempty"`
	DeletedOn       *time.Time `json:"deleted_on,omitempty"`
}
