package domain

// DecisionReason explains an evaluation outcome.
type DecisionReason string

const (
	ReasonNotEnforced         DecisionReason = "not_enforced"
	ReasonInsideAllowedRadius DecisionReason = "inside_allowed_radius"

	ReasonNoActiveZones        DecisionReason = "no_active_zones"
	ReasonOutsideAllowedRadius DecisionReason = "outside_allowed_radius"
)

// Decision is the outcome of a login-time geofence evaluation.
type Decision struct {
	Allow  bool           `json:"allow"`
	Reason DecisionReason `json:"reason"`
}

func Allow(reason DecisionReason) Decision {
	return Decision{Allow: true, Reason: reason}
}

func Deny(reason DecisionReason) Decision {
	return Decision{Allow: false, Reason: reason}
}
