package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/siddharthverma1208/Compare/pkg/config"
)

type stubDBPinger struct {
	pingFn func(ctx context.Context) error
}

func (s stubDBPinger) Ping(ctx context.Context) error { return s.pingFn(ctx) }

func TestHealthLiveSetsEnvHeader(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"

	rec := httptest.NewRecorder()
	HealthLive(cfg)(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Comparify-Env"); got != "test" {
		t.Fatalf("env header = %q, want %q", got, "test")
	}
}

func TestHealthLiveWithoutConfig(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Comparify-Env"); got != "" {
		t.Fatalf("env header should be omitted without config, got %q", got)
	}
}

func TestHealthReadyWithoutConfig(t *testing.T) {
	handler := HealthReady(nil, testLogger(), stubDBPinger{
		pingFn: func(ctx context.Context) error { return nil },
	}, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestHealthReadyReportsDatabaseFailure(t *testing.T) {
	handler := HealthReady(nil, testLogger(), stubDBPinger{
		pingFn: func(ctx context.Context) error { return errors.New("connection refused") },
	}, nil)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "dependency unavailable") {
		t.Fatalf("body missing failure message: %s", rec.Body.String())
	}
}
