package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

func performWrite(t *testing.T, section string, role enums.Role) *httptest.ResponseRecorder {
	t.Helper()

	handler := RequireWrite(section, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(WithRole(req.Context(), string(role)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireWrite(t *testing.T) {
	cases := []struct {
		name    string
		section string
		role    enums.Role
		status  int
	}{
		{"admin writes anywhere", "/comptabilite/transactions", enums.RoleAdmin, http.StatusNoContent},
		{"technicien writes own section", "/techniciens/rapports", enums.RoleTechnicien, http.StatusNoContent},
		{"technicien blocked from accounting", "/comptabilite/transactions", enums.RoleTechnicien, http.StatusForbidden},
		{"comptable writes accounting", "/comptabilite/transactions", enums.RoleComptable, http.StatusNoContent},
		{"commercant writes boutique", "/boutique/produits", enums.RoleCommercant, http.StatusNoContent},
		{"visiteur never writes", "/boutique/produits", enums.RoleVisiteur, http.StatusForbidden},
		{"admin only section", "/administration", enums.RoleComptable, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := performWrite(t, tc.section, tc.role)
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}

func TestRequireWriteMissingRole(t *testing.T) {
	handler := RequireWrite("/techniciens/rapports", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
