package controllers

import (
	"net/http"

	"github.com/siddharthverma1208/Compare/api/responses"
	"github.com/siddharthverma1208/Compare/api/validators"
	"github.com/siddharthverma1208/Compare/internal/analytics"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/logger"
	"github.com/siddharthverma1208/Compare/pkg/pagination"
)

// AnalyticsPopularRoutes returns the most compared ride routes.
func AnalyticsPopularRoutes(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 10, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		routes, err := svc.PopularRoutes(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, routes)
	}
}

// AnalyticsPopularProducts returns the most compared grocery products.
func AnalyticsPopularProducts(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "analytics service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 10, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		products, err := svc.PopularProducts(ctx, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
