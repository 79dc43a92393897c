package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/api/validators"
	reportsvc "github.com/ainnoce10/ebf-backend/internal/reports"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

type createReportRequest struct {
	Date         string           `json:"date" validate:"required"`
	Site         *string          `json:"site"`
	TechnicianID *uuid.UUID       `json:"technician_id"`
	Content      string           `json:"content" validate:"required"`
	Revenue      *decimal.Decimal `json:"revenue"`
	Expenses     *decimal.Decimal `json:"expenses"`
}

type updateReportRequest struct {
	Date         *string          `json:"date"`
	Site         *string          `json:"site"`
	TechnicianID *uuid.UUID       `json:"technician_id"`
	Content      *string          `json:"content"`
	Revenue      *decimal.Decimal `json:"revenue"`
	Expenses     *decimal.Decimal `json:"expenses"`
}

// ReportsList serves every filed report.
func ReportsList(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		records, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// ReportsCreate files a new report.
func ReportsCreate(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		var body createReportRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Create(r.Context(), reportsvc.CreateReportInput{
			Date:         body.Date,
			Site:         body.Site,
			TechnicianID: body.TechnicianID,
			Content:      body.Content,
			Revenue:      body.Revenue,
			Expenses:     body.Expenses,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// ReportsUpdate mutates a filed report.
func ReportsUpdate(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("reportId", chi.URLParam(r, "reportId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateReportRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Update(r.Context(), id, reportsvc.UpdateReportInput{
			Date:         body.Date,
			Site:         body.Site,
			TechnicianID: body.TechnicianID,
			Content:      body.Content,
			Revenue:      body.Revenue,
			Expenses:     body.Expenses,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// ReportsDelete removes a filed report.
func ReportsDelete(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("reportId", chi.URLParam(r, "reportId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
