package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/siddharthverma1208/Compare/internal/advisor"
	"github.com/siddharthverma1208/Compare/internal/alerts"
	"github.com/siddharthverma1208/Compare/internal/analytics"
	"github.com/siddharthverma1208/Compare/internal/groceries"
	"github.com/siddharthverma1208/Compare/internal/preferences"
	"github.com/siddharthverma1208/Compare/internal/providers"
	"github.com/siddharthverma1208/Compare/internal/rides"
	"github.com/siddharthverma1208/Compare/internal/savings"
	"github.com/siddharthverma1208/Compare/pkg/config"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/logger"
	"github.com/siddharthverma1208/Compare/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSource struct{}

func (stubSource) RideOffers(ctx context.Context, query providers.RideQuery) ([]types.RideOffer, error) {
	return nil, nil
}

func (stubSource) GroceryOffers(ctx context.Context, query providers.GroceryQuery) ([]types.GroceryOffer, error) {
	return nil, nil
}

func (stubSource) Catalog(ctx context.Context) (providers.Catalog, error) {
	return providers.Catalog{RideProviders: []string{"Uber"}}, nil
}

type stubRidesService struct{}

func (stubRidesService) Compare(ctx context.Context, req rides.CompareRequest) (models.RideComparison, error) {
	return models.RideComparison{ID: uuid.New()}, nil
}

func (stubRidesService) History(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error) {
	return nil, nil
}

func (stubRidesService) Get(ctx context.Context, id uuid.UUID) (models.RideComparison, error) {
	return models.RideComparison{ID: id}, nil
}

type stubGroceriesService struct{}

func (stubGroceriesService) Compare(ctx context.Context, req groceries.CompareRequest) (models.GroceryComparison, error) {
	return models.GroceryComparison{ID: uuid.New()}, nil
}

func (stubGroceriesService) History(ctx context.Context, userID *string, limit int) ([]models.GroceryComparison, error) {
	return nil, nil
}

func (stubGroceriesService) Get(ctx context.Context, id uuid.UUID) (models.GroceryComparison, error) {
	return models.GroceryComparison{ID: id}, nil
}

type stubPreferencesService struct{}

func (stubPreferencesService) Upsert(ctx context.Context, userID string, req preferences.UpsertRequest) (models.UserPreference, error) {
	return models.UserPreference{UserID: userID}, nil
}

func (stubPreferencesService) Get(ctx context.Context, userID string) (models.UserPreference, error) {
	return models.UserPreference{UserID: userID}, nil
}

type stubSavingsService struct{}

func (stubSavingsService) Record(ctx context.Context, req savings.RecordRequest) (models.SavingsRecord, error) {
	return models.SavingsRecord{ID: uuid.New()}, nil
}

func (stubSavingsService) History(ctx context.Context, userID string, limit int) ([]models.SavingsRecord, error) {
	return nil, nil
}

func (stubSavingsService) Summary(ctx context.Context, userID string) (savings.SummaryDTO, error) {
	return savings.SummaryDTO{}, nil
}

type stubAlertsService struct{}

func (stubAlertsService) Create(ctx context.Context, req alerts.CreateRequest) (models.PriceAlert, error) {
	return models.PriceAlert{ID: uuid.New()}, nil
}

func (stubAlertsService) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error) {
	return nil, nil
}

func (stubAlertsService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) PopularRoutes(ctx context.Context, limit int) ([]analytics.PopularRoute, error) {
	return nil, nil
}

func (stubAnalyticsService) PopularProducts(ctx context.Context, limit int) ([]analytics.PopularProduct, error) {
	return nil, nil
}

type stubAdvisorService struct{}

func (stubAdvisorService) AnalyzeRide(ctx context.Context, comparisonID uuid.UUID, req advisor.RideAnalysisRequest) (advisor.AnalysisDTO, error) {
	return advisor.AnalysisDTO{AnalysisID: uuid.New()}, nil
}

func (stubAdvisorService) AnalyzeGrocery(ctx context.Context, comparisonID uuid.UUID, req advisor.GroceryAnalysisRequest) (advisor.AnalysisDTO, error) {
	return advisor.AnalysisDTO{AnalysisID: uuid.New()}, nil
}

func (stubAdvisorService) Recommendations(ctx context.Context, req advisor.RecommendationsRequest) (advisor.AnalysisDTO, error) {
	return advisor.AnalysisDTO{AnalysisID: uuid.New()}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		Advisor: config.AdvisorConfig{
			RateLimitWindow: time.Minute,
			RateLimitPerKey: 10,
			HistorySample:   10,
		},
	}
}

func newTestRouter(registry *prometheus.Registry) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Params{
		Config:      testConfig(),
		Logger:      logg,
		DBPinger:    stubPinger{},
		RedisClient: nil,
		Registry:    registry,
		Source:      stubSource{},
		Rides:       stubRidesService{},
		Groceries:   stubGroceriesService{},
		Preferences: stubPreferencesService{},
		Savings:     stubSavingsService{},
		Alerts:      stubAlertsService{},
		Analytics:   stubAnalyticsService{},
		Advisor:     stubAdvisorService{},
	})
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/health/live", "/health/ready"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestCompareRoutesAcceptValidPayloads(t *testing.T) {
	router := newTestRouter(nil)

	rideBody := `{"pickup_location":"Koramangala","drop_location":"Indiranagar","distance_km":8.5,"estimated_duration_mins":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rides/compare", strings.NewReader(rideBody))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("rides compare: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	groceryBody := `{"product_name":"Basmati Rice","category":"staples","search_query":"basmati rice 5kg"}`
	req = httptest.NewRequest(http.MethodPost, "/api/v1/groceries/compare", strings.NewReader(groceryBody))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("groceries compare: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCompareRouteRejectsMalformedJSON(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rides/compare", strings.NewReader("{"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestUserScopedRoutes(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPut, "/api/v1/users/u-1/preferences", `{"preferred_providers":{"ride":["Uber"]}}`, http.StatusOK},
		{http.MethodGet, "/api/v1/users/u-1/preferences", "", http.StatusOK},
		{http.MethodGet, "/api/v1/savings/user/u-1", "", http.StatusOK},
		{http.MethodGet, "/api/v1/savings/summary/u-1", "", http.StatusOK},
		{http.MethodGet, "/api/v1/alerts/user/u-1", "", http.StatusOK},
	}
	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = strings.NewReader(tc.body)
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(tc.method, tc.path, body))
		if resp.Code != tc.want {
			t.Fatalf("%s %s: expected %d got %d: %s", tc.method, tc.path, tc.want, resp.Code, resp.Body.String())
		}
	}
}

func TestAnalyticsAndProvidersRoutes(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{
		"/api/v1/analytics/popular-routes",
		"/api/v1/analytics/popular-products",
		"/api/v1/providers",
	} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d: %s", path, resp.Code, resp.Body.String())
		}
	}
}

func TestAdvisorRoutesServeWithoutRedis(t *testing.T) {
	router := newTestRouter(nil)

	comparisonID := uuid.NewString()
	for _, path := range []string{
		"/api/v1/ai/rides/" + comparisonID + "/analysis",
		"/api/v1/ai/groceries/" + comparisonID + "/analysis",
	} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, path, nil))
		if resp.Code != http.StatusCreated {
			t.Fatalf("%s: expected 201 got %d: %s", path, resp.Code, resp.Body.String())
		}
	}

	body := `{"user_id":"u-1","comparison_type":"ride"}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/ai/recommendations", strings.NewReader(body)))
	if resp.Code != http.StatusCreated {
		t.Fatalf("recommendations: expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMetricsRouteOnlyWithRegistry(t *testing.T) {
	withRegistry := newTestRouter(prometheus.NewRegistry())
	resp := httptest.NewRecorder()
	withRegistry.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics got %d", resp.Code)
	}

	without := newTestRouter(nil)
	resp = httptest.NewRecorder()
	without.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without registry got %d", resp.Code)
	}
}
