package controllers

import (
	"net/http"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/api/validators"
	reportsvc "github.com/ainnoce10/ebf-backend/internal/reports"
	statssvc "github.com/ainnoce10/ebf-backend/internal/stats"
	synthesissvc "github.com/ainnoce10/ebf-backend/internal/synthesis"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

// SynthesizeStats produces a natural-language reading of the aggregated
// statistics for the selected site and period. The response always carries a
// text; the source field tells callers whether it was generated or a
// degraded fallback.
func SynthesizeStats(stats statssvc.Service, synthesis synthesissvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if stats == nil || synthesis == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "synthesis service unavailable"))
			return
		}

		site, err := validators.ParseSiteQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		period, err := validators.ParsePeriodQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := stats.Summarize(r.Context(), statssvc.Query{Site: site, Period: period})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := synthesis.SummarizeStats(r.Context(), summary.Rows, string(site))
		responses.WriteSuccess(w, result)
	}
}

// SynthesizeReports produces a natural-language reading of the filed reports
// for the selected period.
func SynthesizeReports(reports reportsvc.Service, synthesis synthesissvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reports == nil || synthesis == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "synthesis service unavailable"))
			return
		}

		period, err := validators.ParsePeriodQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		records, err := reports.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := synthesis.SummarizeReports(r.Context(), records, string(period))
		responses.WriteSuccess(w, result)
	}
}
