package access

import (
	"strings"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// rolePrefixes maps each operational role to the single path prefix it may
// write under. Admin and Visiteur are handled outside the table.
var rolePrefixes = map[enums.Role]string{
	enums.RoleTechnicien: "/techniciens",
	enums.RoleComptable:  "/comptabilite",
	enums.RoleCommercant: "/boutique",
}

// CanWrite resolves a role and path to a write permission. Deny by default:
// any combination not covered by an explicit rule is read-only. The result
// is advisory; enforcement belongs to the caller.
func CanWrite(path string, role enums.Role) bool {
	switch role {
	case enums.RoleAdmin:
		return true
	case enums.RoleVisiteur:
		return false
	}

	prefix, ok := rolePrefixes[role]
	if !ok {
		return false
	}
	return strings.HasPrefix(path, prefix)
}

// PrefixFor exposes the write prefix granted to a role, if any.
func PrefixFor(role enums.Role) (string, bool) {
	prefix, ok := rolePrefixes[role]
	return prefix, ok
}
