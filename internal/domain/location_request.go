package domain

import "time"

// RequestStatus is the lifecycle state of a location access request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
	RequestStatusStopped  RequestStatus = "STOPPED"
)

// RequestType distinguishes open-ended grants from time-boxed ones.
type RequestType string

const (
	RequestTypePermanent RequestType = "PERMANENT"
	RequestTypeTemporary RequestType = "TEMPORARY"
)

// LocationAccessRequest is an org admin's petition to allow logins from a
// geographic point. Review transitions it to APPROVED or REJECTED; an approved
// request can later be stopped and reactivated.
type LocationAccessRequest struct {
	ID             int32         `json:"id"`
	OrgID          int32         `json:"org_id"`
	Address        string        `json:"address"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	RadiusMeters   int32         `json:"radius_meters"`
	RequestType    RequestType   `json:"request_type"`
	ValidFrom      *time.Time    `json:"valid_from,omitempty"`
	ValidTo        *time.Time    `json:"valid_to,omitempty"`
	Emergency      bool          `json:"emergency"`
	Status         RequestStatus `json:"status"`
	ReviewComments string        `json:"review_comments,omitempty"`
	CreatedOn      time.Time     `json:"created_on"`
	ReviewedOn     *time.Time    `json:"reviewed_on,omitempty"`
	StoppedOn      *time.Time    `json:"stopped_on,omitempty"`
	ReactivatedOn  *time.Time    `json:"reactivated_on,omitempty"`
}

// Expired reports whether a temporary request's validity window has passed.
// Permanent requests never expire.
func (r *LocationAccessRequest) Expired(now time.Time) bool {
	if r.RequestType != RequestTypeTemporary || r.ValidTo == nil {
		return false
	}
	return r.ValidTo.Before(now)
}
