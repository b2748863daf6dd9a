package domain

// Roles recognized by the access layer. SUPERADMIN reviews requests but is
// never itself subject to geofence enforcement.
const (
	RoleAdmin      = "ADMIN"
	RoleAgent      = "AGENT"
	RoleQA         = "QA"
	RoleTL         = "TL"
	RoleSuperAdmin = "SUPERADMIN"
)

// DefaultRadiusMeters is applied when a request omits its radius.
const DefaultRadiusMeters int32 = 100

// KnownPolicyRoles are the roles a policy's enforcement list may contain.
var KnownPolicyRoles = []string{RoleAdmin, RoleAgent, RoleQA, RoleTL}

// AlwaysEnforcedRoles require location access whenever the org has any active
// zone, regardless of the policy's configured roles list.
var AlwaysEnforcedRoles = []string{RoleAgent, RoleQA, RoleTL}

// OrgLocationPolicy configures geofence enforcement for one organization.
type OrgLocationPolicy struct {
	OrgID               int32    `json:"org_id"`
	Enforce             bool     `json:"enforce"`
	DefaultRadiusMeters int32    `json:"default_radius_meters"`
	Roles               []string `json:"roles"`
}

// DefaultPolicy is the policy an org without a stored row gets: enforcement
// off, the standard radius, all known roles listed.
func DefaultPolicy(orgID int32) *OrgLocationPolicy {
	return &OrgLocationPolicy{
		OrgID:               orgID,
		Enforce:             false,
		DefaultRadiusMeters: DefaultRadiusMeters,
		Roles:               append([]string(nil), KnownPolicyRoles...),
	}
}

// Covers reports whether the policy's roles list includes the given role.
func (p *OrgLocationPolicy) Covers(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func IsKnownPolicyRole(role string) bool {
	for _, r := range KnownPolicyRoles {
		if r == role {
			return true
		}
	}
	return false
}

func IsAlwaysEnforcedRole(role string) bool {
	for _, r := range AlwaysEnforcedRoles {
		if r == role {
			return true
		}
	}
	return false
}
