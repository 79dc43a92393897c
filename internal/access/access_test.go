package access

import (
	"testing"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

func TestCanWriteTable(t *testing.T) {
	cases := []struct {
		role enums.Role
		path string
		want bool
	}{
		{enums.RoleTechnicien, "/techniciens/rapports", true},
		{enums.RoleTechnicien, "/techniciens", true},
		{enums.RoleTechnicien, "/comptabilite", false},
		{enums.RoleComptable, "/comptabilite/transactions", true},
		{enums.RoleComptable, "/boutique", false},
		{enums.RoleCommercant, "/boutique/produits", true},
		{enums.RoleCommercant, "/techniciens", false},
		{enums.RoleVisiteur, "/techniciens/rapports", false},
		{enums.RoleVisiteur, "/", false},
		{enums.RoleAdmin, "/techniciens/rapports", true},
		{enums.RoleAdmin, "/nimporte/quoi", true},
		{enums.Role("Inconnu"), "/techniciens", false},
	}

	for _, tc := range cases {
		if got := CanWrite(tc.path, tc.role); got != tc.want {
			t.Fatalf("CanWrite(%q, %s) = %v, want %v", tc.path, tc.role, got, tc.want)
		}
	}
}

func TestPrefixFor(t *testing.T) {
	prefix, ok := PrefixFor(enums.RoleComptable)
	if !ok || prefix != "/comptabilite" {
		t.Fatalf("unexpected prefix %q ok=%v", prefix, ok)
	}
	if _, ok := PrefixFor(enums.RoleAdmin); ok {
		t.Fatalf("admin has no single prefix")
	}
}
