package controllers

import (
	"net/http"

	"github.com/siddharthverma1208/Compare/api/responses"
	"github.com/siddharthverma1208/Compare/api/validators"
	"github.com/siddharthverma1208/Compare/internal/groceries"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/logger"
	"github.com/siddharthverma1208/Compare/pkg/pagination"
)

// GroceriesCompare runs a grocery comparison and returns the stored result.
func GroceriesCompare(svc groceries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "grocery service unavailable"))
			return
		}

		var req groceries.CompareRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		comparison, err := svc.Compare(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, comparison)
	}
}

// GroceriesHistory lists recent grocery comparisons, optionally for one user.
func GroceriesHistory(svc groceries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "grocery service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		comparisons, err := svc.History(ctx, validators.OptionalUserID(r), limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, comparisons)
	}
}
