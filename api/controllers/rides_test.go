package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/internal/rides"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
)

type testRidesService struct {
	compareFn func(ctx context.Context, req rides.CompareRequest) (models.RideComparison, error)
	historyFn func(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error)
	getFn     func(ctx context.Context, id uuid.UUID) (models.RideComparison, error)
}

func (s *testRidesService) Compare(ctx context.Context, req rides.CompareRequest) (models.RideComparison, error) {
	if s.compareFn != nil {
		return s.compareFn(ctx, req)
	}
	return models.RideComparison{}, nil
}

func (s *testRidesService) History(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error) {
	if s.historyFn != nil {
		return s.historyFn(ctx, userID, limit)
	}
	return nil, nil
}

func (s *testRidesService) Get(ctx context.Context, id uuid.UUID) (models.RideComparison, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return models.RideComparison{}, nil
}

func TestRidesCompareSuccess(t *testing.T) {
	called := false
	svc := &testRidesService{
		compareFn: func(ctx context.Context, req rides.CompareRequest) (models.RideComparison, error) {
			called = true
			if req.PickupLocation != "Indiranagar" || req.DropLocation != "Koramangala" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return models.RideComparison{
				ID:                uuid.New(),
				PickupLocation:    req.PickupLocation,
				DropLocation:      req.DropLocation,
				BestPriceProvider: "Rapido",
				BestTimeProvider:  "Uber",
			}, nil
		},
	}

	body := `{"pickup_location":"Indiranagar","drop_location":"Koramangala","distance_km":6.5,"estimated_duration_mins":20}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rides/compare", strings.NewReader(body))
	resp := httptest.NewRecorder()
	RidesCompare(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if !called {
		t.Fatal("expected service called")
	}
	var envelope struct {
		Data models.RideComparison `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.BestPriceProvider != "Rapido" {
		t.Fatalf("unexpected winner %q", envelope.Data.BestPriceProvider)
	}
}

func TestRidesCompareValidation(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rides/compare", strings.NewReader(`{"pickup_location":"A"}`))
	resp := httptest.NewRecorder()
	RidesCompare(&testRidesService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code %q", envelope.Error.Code)
	}
	if _, ok := envelope.Error.Details["drop_location"]; !ok {
		t.Fatalf("expected drop_location detail, got %v", envelope.Error.Details)
	}
}

func TestRidesHistoryScopesUser(t *testing.T) {
	svc := &testRidesService{
		historyFn: func(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error) {
			if userID == nil || *userID != "u-42" {
				t.Fatalf("unexpected user filter %v", userID)
			}
			if limit != 5 {
				t.Fatalf("unexpected limit %d", limit)
			}
			return []models.RideComparison{{BestPriceProvider: "Rapido"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/history?user_id=u-42&limit=5", nil)
	resp := httptest.NewRecorder()
	RidesHistory(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestRidesHistoryRejectsBadLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rides/history?limit=abc", nil)
	resp := httptest.NewRecorder()
	RidesHistory(&testRidesService{}, testLogger())(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
