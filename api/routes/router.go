package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siddharthverma1208/Compare/api/controllers"
	"github.com/siddharthverma1208/Compare/api/middleware"
	"github.com/siddharthverma1208/Compare/internal/advisor"
	"github.com/siddharthverma1208/Compare/internal/alerts"
	"github.com/siddharthverma1208/Compare/internal/analytics"
	"github.com/siddharthverma1208/Compare/internal/groceries"
	"github.com/siddharthverma1208/Compare/internal/preferences"
	"github.com/siddharthverma1208/Compare/internal/providers"
	"github.com/siddharthverma1208/Compare/internal/rides"
	"github.com/siddharthverma1208/Compare/internal/savings"
	"github.com/siddharthverma1208/Compare/pkg/config"
	"github.com/siddharthverma1208/Compare/pkg/db"
	"github.com/siddharthverma1208/Compare/pkg/logger"
	"github.com/siddharthverma1208/Compare/pkg/redis"
)

// Params collects everything the router needs. Nil optional dependencies
// (Redis, advisor) degrade the matching routes instead of failing startup.
type Params struct {
	Config *config.Config
	Logger *logger.Logger

	DBPinger    db.Pinger
	RedisClient *redis.Client
	Registry    *prometheus.Registry

	Source      providers.Source
	Rides       rides.Service
	Groceries   groceries.Service
	Preferences preferences.Service
	Savings     savings.Service
	Alerts      alerts.Service
	Analytics   analytics.Service
	Advisor     advisor.Service
}

// NewRouter wires every endpoint of the comparison API.
func NewRouter(p Params) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.DBPinger, redisPinger(p.RedisClient)))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/rides", func(r chi.Router) {
			r.Post("/compare", controllers.RidesCompare(p.Rides, p.Logger))
			r.Get("/history", controllers.RidesHistory(p.Rides, p.Logger))
		})
		r.Route("/groceries", func(r chi.Router) {
			r.Post("/compare", controllers.GroceriesCompare(p.Groceries, p.Logger))
			r.Get("/history", controllers.GroceriesHistory(p.Groceries, p.Logger))
		})

		r.Route("/users/{userId}", func(r chi.Router) {
			r.Put("/preferences", controllers.PreferencesUpsert(p.Preferences, p.Logger))
			r.Get("/preferences", controllers.PreferencesGet(p.Preferences, p.Logger))
		})

		r.Route("/savings", func(r chi.Router) {
			r.Post("/record", controllers.SavingsRecord(p.Savings, p.Logger))
			r.Get("/user/{userId}", controllers.SavingsHistory(p.Savings, p.Logger))
			r.Get("/summary/{userId}", controllers.SavingsSummary(p.Savings, p.Logger))
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Post("/", controllers.AlertsCreate(p.Alerts, p.Logger))
			r.Get("/user/{userId}", controllers.AlertsList(p.Alerts, p.Logger))
			r.Delete("/{alertId}", controllers.AlertsDelete(p.Alerts, p.Logger))
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/popular-routes", controllers.AnalyticsPopularRoutes(p.Analytics, p.Logger))
			r.Get("/popular-products", controllers.AnalyticsPopularProducts(p.Analytics, p.Logger))
		})

		r.Get("/providers", controllers.ProvidersList(p.Source, p.Logger))

		r.Route("/ai", func(r chi.Router) {
			if p.Config != nil {
				r.Use(middleware.AdvisorRateLimit(
					advisorLimiter(p.RedisClient),
					p.Config.Advisor.RateLimitPerKey,
					p.Config.Advisor.RateLimitWindow,
					p.Logger,
				))
			}
			r.Post("/rides/{comparisonId}/analysis", controllers.AdvisorAnalyzeRide(p.Advisor, p.Logger))
			r.Post("/groceries/{comparisonId}/analysis", controllers.AdvisorAnalyzeGrocery(p.Advisor, p.Logger))
			r.Post("/recommendations", controllers.AdvisorRecommendations(p.Advisor, p.Logger))
		})
	})

	return r
}

// redisPinger avoids handing a typed-nil interface to the health check.
func redisPinger(client *redis.Client) redis.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func advisorLimiter(client *redis.Client) redis.Limiter {
	if client == nil {
		return nil
	}
	return client
}
