package domain

// OrgGeofenceSummary is one row of the cross-org rollup shown to the
// superadmin dashboard.
type OrgGeofenceSummary struct {
	OrgID              int32    `json:"org_id"`
	ActiveAllowedCount int32    `json:"active_allowed_count"`
	PendingCount       int32    `json:"pending_count"`
	ApprovedCount      int32    `json:"approved_count"`
	StoppedCount       int32    `json:"stopped_count"`
	Enforce            bool     `json:"enforce"`
	RolesEnforced      []string `json:"roles_enforced"`
}
