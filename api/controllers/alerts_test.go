package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/internal/alerts"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
)

type testAlertsService struct {
	createFn func(ctx context.Context, req alerts.CreateRequest) (models.PriceAlert, error)
	listFn   func(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *testAlertsService) Create(ctx context.Context, req alerts.CreateRequest) (models.PriceAlert, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return models.PriceAlert{}, nil
}

func (s *testAlertsService) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID, activeOnly)
	}
	return nil, nil
}

func (s *testAlertsService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func TestAlertsCreateSuccess(t *testing.T) {
	svc := &testAlertsService{
		createFn: func(ctx context.Context, req alerts.CreateRequest) (models.PriceAlert, error) {
			if req.UserID != "u-1" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return models.PriceAlert{ID: uuid.New(), UserID: req.UserID}, nil
		},
	}

	body := `{"user_id":"u-1","comparison_type":"grocery","product_name":"Basmati Rice","target_price":500}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AlertsCreate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAlertsListDefaultsToActive(t *testing.T) {
	svc := &testAlertsService{
		listFn: func(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error) {
			if !activeOnly {
				t.Fatal("expected active_only default true")
			}
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts/user/u-1", nil)
	req = addRouteParam(req, "userId", "u-1")
	resp := httptest.NewRecorder()
	AlertsList(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestAlertsDeleteNotFound(t *testing.T) {
	svc := &testAlertsService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return pkgerrors.New(pkgerrors.CodeNotFound, "alert not found")
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/"+uuid.NewString(), nil)
	req = addRouteParam(req, "alertId", uuid.NewString())
	resp := httptest.NewRecorder()
	AlertsDelete(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAlertsDeleteInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/not-a-uuid", nil)
	req = addRouteParam(req, "alertId", "not-a-uuid")
	resp := httptest.NewRecorder()
	AlertsDelete(&testAlertsService{}, testLogger())(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
