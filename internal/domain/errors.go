package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a request, location, or policy id does not
// resolve to a row.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input before any state is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidStateError rejects a lifecycle action that the request's current
// status does not permit.
type InvalidStateError struct {
	RequestID int32
	Current   RequestStatus
	Attempted string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("request %d is %s, cannot %s", e.RequestID, e.Current, e.Attempted)
}

func NewInvalidStateError(id int32, current RequestStatus, attempted string) error {
	return &InvalidStateError{RequestID: id, Current: current, Attempted: attempted}
}
