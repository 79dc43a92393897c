package enums

import "fmt"

// Role is the actor role carried in session claims.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleTechnicien Role = "Technicien"
	RoleComptable  Role = "Comptable"
	RoleCommercant Role = "Commerçant"
	RoleVisiteur   Role = "Visiteur"
)

var validRoles = []Role{
	RoleAdmin,
	RoleTechnicien,
	RoleComptable,
	RoleCommercant,
	RoleVisiteur,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
