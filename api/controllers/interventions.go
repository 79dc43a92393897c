package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/api/validators"
	interventionsvc "github.com/ainnoce10/ebf-backend/internal/interventions"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

type createInterventionRequest struct {
	Date         string     `json:"date" validate:"required"`
	Site         *string    `json:"site"`
	TechnicianID *uuid.UUID `json:"technician_id"`
	Client       string     `json:"client" validate:"required"`
	Description  *string    `json:"description"`
}

type updateInterventionRequest struct {
	Date         *string    `json:"date"`
	Site         *string    `json:"site"`
	TechnicianID *uuid.UUID `json:"technician_id"`
	Client       *string    `json:"client"`
	Description  *string    `json:"description"`
	Done         *bool      `json:"done"`
}

// InterventionsList serves the planned and completed jobs.
func InterventionsList(svc interventionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intervention service unavailable"))
			return
		}

		jobs, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, jobs)
	}
}

// InterventionsCreate plans a new job.
func InterventionsCreate(svc interventionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intervention service unavailable"))
			return
		}

		var body createInterventionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.Create(r.Context(), interventionsvc.CreateInterventionInput{
			Date:         body.Date,
			Site:         body.Site,
			TechnicianID: body.TechnicianID,
			Client:       body.Client,
			Description:  body.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, job)
	}
}

// InterventionsUpdate mutates a job.
func InterventionsUpdate(svc interventionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intervention service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("interventionId", chi.URLParam(r, "interventionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateInterventionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.Update(r.Context(), id, interventionsvc.UpdateInterventionInput{
			Date:         body.Date,
			Site:         body.Site,
			TechnicianID: body.TechnicianID,
			Client:       body.Client,
			Description:  body.Description,
			Done:         body.Done,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, job)
	}
}

// InterventionsMarkDone flags a job as completed.
func InterventionsMarkDone(svc interventionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intervention service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("interventionId", chi.URLParam(r, "interventionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.MarkDone(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, job)
	}
}

// InterventionsDelete removes a job.
func InterventionsDelete(svc interventionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "intervention service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("interventionId", chi.URLParam(r, "interventionId"))
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
