package controllers

import (
	"net/http"

	"github.com/siddharthverma1208/Compare/api/responses"
	"github.com/siddharthverma1208/Compare/pkg/config"
	"github.com/siddharthverma1208/Compare/pkg/db"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/logger"
	"github.com/siddharthverma1208/Compare/pkg/redis"
)

const envHeader = "X-Comparify-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setEnvHeader(w, cfg)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// Config is optional for the health surface; without it the env header is
// simply omitted.
func setEnvHeader(w http.ResponseWriter, cfg *config.Config) {
	if cfg == nil {
		return
	}
	w.Header().Set(envHeader, cfg.App.Env)
}

// HealthReady verifies the backing stores. Redis is optional; a nil pinger is
// skipped rather than reported unhealthy.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		setEnvHeader(w, cfg)

		if dbP == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database not wired"))
			return
		}
		if err := dbP.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
