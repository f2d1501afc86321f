package user

// Role is the closed set of user roles. Comparisons are typed and exact;
// a claim that does not parse to one of these carries no privileges.
type Role string

const (
	RoleEmployee    Role = "employee"
	RoleManager     Role = "manager"
	RoleAdmin       Role = "admin"
	RoleSystemAdmin Role = "system_admin"
)

// ParseRole maps a raw claim to a Role. Unknown values degrade to
// RoleEmployee rather than erroring, matching the verifier's behavior of
// granting only base access to unrecognized claims.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleManager, RoleAdmin, RoleSystemAdmin:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// IsAdministrative reports whether the role can use admin endpoints
// (attendance overrides, site configuration, reports).
func (r Role) IsAdministrative() bool {
	switch r {
	case RoleAdmin, RoleSystemAdmin, RoleManager:
		return true
	default:
		return false
	}
}
