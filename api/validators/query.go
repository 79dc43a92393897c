package validators

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

// ParseSiteQuery reads the "site" parameter, defaulting to the wildcard.
func ParseSiteQuery(r *http.Request) (enums.Site, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("site"))
	if raw == "" {
		return enums.SiteGlobal, nil
	}
	site, err := enums.ParseSite(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown site").WithDetails(map[string]any{"site": raw})
	}
	return site, nil
}

// ParsePeriodQuery reads the "period" parameter. An empty value means no
// period restriction.
func ParsePeriodQuery(r *http.Request) (enums.Period, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("period"))
	if raw == "" {
		return "", nil
	}
	period, err := enums.ParsePeriod(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "unknown period").WithDetails(map[string]any{"period": raw})
	}
	return period, nil
}

// ParseUUIDParam parses a UUID path parameter value.
func ParseUUIDParam(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid identifier").WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
