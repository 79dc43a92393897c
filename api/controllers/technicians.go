package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/api/validators"
	techsvc "github.com/ainnoce10/ebf-backend/internal/technicians"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

type createTechnicianRequest struct {
	FullName  string  `json:"full_name" validate:"required"`
	Phone     *string `json:"phone"`
	Site      *string `json:"site"`
	Specialty *string `json:"specialty"`
}

type updateTechnicianRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	Site      *string `json:"site"`
	Specialty *string `json:"specialty"`
}

// TechniciansList serves the technician roster.
func TechniciansList(svc techsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "technician service unavailable"))
			return
		}

		techs, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, techs)
	}
}

// TechniciansCreate registers a new technician.
func TechniciansCreate(svc techsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "technician service unavailable"))
			return
		}

		var body createTechnicianRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tech, err := svc.Create(r.Context(), techsvc.CreateTechnicianInput{
			FullName:  body.FullName,
			Phone:     body.Phone,
			Site:      body.Site,
			Specialty: body.Specialty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, tech)
	}
}

// TechniciansUpdate mutates a technician.
func TechniciansUpdate(svc techsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "technician service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("technicianId", chi.URLParam(r, "technicianId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateTechnicianRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tech, err := svc.Update(r.Context(), id, techsvc.UpdateTechnicianInput{
			FullName:  body.FullName,
			Phone:     body.Phone,
			Site:      body.Site,
			Specialty: body.Specialty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tech)
	}
}

// TechniciansDelete removes a technician from the roster.
func TechniciansDelete(svc techsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "technician service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("technicianId", chi.URLParam(r, "technicianId"))
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
