package middleware

import (
	"net/http"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/internal/access"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

// RequireWrite guards mutating routes behind the role/section write rules.
// The section is the dashboard area the route belongs to, not the HTTP path.
func RequireWrite(section string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := enums.ParseRole(RoleFromContext(r.Context()))
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "unknown role"))
				return
			}
			if !access.CanWrite(section, role) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "write access denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
