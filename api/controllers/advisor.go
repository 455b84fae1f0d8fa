package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/api/responses"
	"github.com/siddharthverma1208/Compare/api/validators"
	"github.com/siddharthverma1208/Compare/internal/advisor"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/logger"
)

// AdvisorAnalyzeRide narrates a stored ride comparison. The body is optional;
// an empty request means no preference context.
func AdvisorAnalyzeRide(svc advisor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor service unavailable"))
			return
		}

		comparisonID, err := uuid.Parse(chi.URLParam(r, "comparisonId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid comparison id"))
			return
		}

		var req advisor.RideAnalysisRequest
		if err := decodeOptionalBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		analysis, err := svc.AnalyzeRide(ctx, comparisonID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, analysis)
	}
}

// AdvisorAnalyzeGrocery narrates a stored grocery comparison.
func AdvisorAnalyzeGrocery(svc advisor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor service unavailable"))
			return
		}

		comparisonID, err := uuid.Parse(chi.URLParam(r, "comparisonId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid comparison id"))
			return
		}

		var req advisor.GroceryAnalysisRequest
		if err := decodeOptionalBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		analysis, err := svc.AnalyzeGrocery(ctx, comparisonID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, analysis)
	}
}

// AdvisorRecommendations generates personalized advice from recent history.
func AdvisorRecommendations(svc advisor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor service unavailable"))
			return
		}

		var req advisor.RecommendationsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		analysis, err := svc.Recommendations(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, analysis)
	}
}

func decodeOptionalBody(r *http.Request, dest any) error {
	err := validators.DecodeJSONBody(r, dest)
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
