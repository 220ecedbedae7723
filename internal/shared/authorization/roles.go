// Package authorization holds the role model and the static role/action policy.
package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleRequestor  UserRole = "REQUESTOR"
	RoleTechnician UserRole = "TECHNICIAN"
	RoleHOD        UserRole = "HOD"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleRequestor, RoleTechnician, RoleHOD:
		return true
	}
	return false
}

// AllRoles returns the full role set in seed order.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleRequestor, RoleTechnician, RoleHOD}
}

// ParseUserRole returns the canonical role for s, or an empty role when unknown.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return ""
}

// HasRole reports whether the given role name set contains role.
func HasRole(roles []string, role UserRole) bool {
	for _, r := range roles {
		if UserRole(r) == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the given role name set contains at least one of wanted.
func HasAnyRole(roles []string, wanted ...UserRole) bool {
	for _, w := range wanted {
		if HasRole(roles, w) {
			return true
		}
	}
	return false
}
