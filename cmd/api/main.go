package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/siddharthverma1208/Compare/api/routes"
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
	"github.com/siddharthverma1208/Compare/pkg/metrics"
	"github.com/siddharthverma1208/Compare/pkg/migrate"
	"github.com/siddharthverma1208/Compare/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags.UseSQLite, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Address != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, advisor rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	apiMetrics := metrics.NewAPIMetrics(registry)

	source := providers.NewMock()

	ridesService, err := rides.NewService(rides.ServiceParams{
		Repo:    rides.NewRepository(dbClient.DB()),
		Source:  source,
		Metrics: apiMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create ride service", err)
		os.Exit(1)
	}

	groceriesService, err := groceries.NewService(groceries.ServiceParams{
		Repo:    groceries.NewRepository(dbClient.DB()),
		Source:  source,
		Metrics: apiMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create grocery service", err)
		os.Exit(1)
	}

	preferencesService, err := preferences.NewService(preferences.ServiceParams{
		Repo: preferences.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create preferences service", err)
		os.Exit(1)
	}

	savingsService, err := savings.NewService(savings.ServiceParams{
		Repo:    savings.NewRepository(dbClient.DB()),
		Metrics: apiMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create savings service", err)
		os.Exit(1)
	}

	alertsService, err := alerts.NewService(alerts.ServiceParams{
		Repo: alerts.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create alerts service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		Repo: analytics.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	var advisorService advisor.Service
	if cfg.OpenAI.APIKey != "" {
		chatClient, err := advisor.NewOpenAIClient(cfg.OpenAI)
		if err != nil {
			logg.Error(context.Background(), "failed to create chat client", err)
			os.Exit(1)
		}
		advisorService, err = advisor.NewService(advisor.ServiceParams{
			Repo:          advisor.NewRepository(dbClient.DB()),
			Chat:          chatClient,
			Rides:         ridesService,
			Groceries:     groceriesService,
			Preferences:   preferencesService,
			Metrics:       apiMetrics,
			HistorySample: cfg.Advisor.HistorySample,
		})
		if err != nil {
			logg.Error(context.Background(), "failed to create advisor service", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "openai key not configured, advisor routes disabled")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			DBPinger:    dbClient,
			RedisClient: redisClient,
			Registry:    registry,
			Source:      source,
			Rides:       ridesService,
			Groceries:   groceriesService,
			Preferences: preferencesService,
			Savings:     savingsService,
			Alerts:      alertsService,
			Analytics:   analyticsService,
			Advisor:     advisorService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
