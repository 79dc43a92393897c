package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/api/responses"
	"github.com/ainnoce10/ebf-backend/api/validators"
	transactionsvc "github.com/ainnoce10/ebf-backend/internal/transactions"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
	"github.com/ainnoce10/ebf-backend/pkg/logger"
)

type createTransactionRequest struct {
	Date   string          `json:"date" validate:"required"`
	Site   *string         `json:"site"`
	Type   string          `json:"type" validate:"required"`
	Label  string          `json:"label" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type updateTransactionRequest struct {
	Date   *string          `json:"date"`
	Site   *string          `json:"site"`
	Type   *string          `json:"type"`
	Label  *string          `json:"label"`
	Amount *decimal.Decimal `json:"amount"`
}

// TransactionsList serves every accounting entry.
func TransactionsList(svc transactionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
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

// TransactionsCreate books a new accounting entry.
func TransactionsCreate(svc transactionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		var body createTransactionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		txnType, err := enums.ParseTransactionType(body.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown transaction type"))
			return
		}

		record, err := svc.Create(r.Context(), transactionsvc.CreateTransactionInput{
			Date:   body.Date,
			Site:   body.Site,
			Type:   txnType,
			Label:  body.Label,
			Amount: body.Amount,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// TransactionsUpdate mutates an accounting entry.
func TransactionsUpdate(svc transactionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("transactionId", chi.URLParam(r, "transactionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateTransactionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := transactionsvc.UpdateTransactionInput{
			Date:   body.Date,
			Site:   body.Site,
			Label:  body.Label,
			Amount: body.Amount,
		}
		if body.Type != nil {
			txnType, err := enums.ParseTransactionType(*body.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unknown transaction type"))
				return
			}
			input.Type = &txnType
		}

		record, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// TransactionsDelete removes an accounting entry.
func TransactionsDelete(svc transactionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "transaction service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam("transactionId", chi.URLParam(r, "transactionId"))
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
