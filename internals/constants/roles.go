package constants

// Society roles. Stored uppercase on the user row and inside JWT claims.
const (
	RoleAdmin     = "ADMIN"
	RoleCommittee = "COMMITTEE"
	RoleResident  = "RESIDENT"
	RoleTenant    = "TENANT"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCommittee,
		RoleResident,
		RoleTenant,
	}

	CommitteeAndAbove = []string{
		RoleCommittee,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ResidentRoles = []string{
		RoleResident,
		RoleTenant,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsCommittee reports whether the role carries committee powers.
func IsCommittee(role string) bool {
	return role == RoleAdmin || role == RoleCommittee
}
