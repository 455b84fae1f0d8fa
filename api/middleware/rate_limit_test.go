package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/siddharthverma1208/Compare/pkg/logger"
)

type stubLimiter struct {
	allowFn func(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

func (s *stubLimiter) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	return s.allowFn(ctx, scope, limit, window)
}

func testLogg() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdvisorRateLimitAllows(t *testing.T) {
	limiter := &stubLimiter{
		allowFn: func(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
			if scope != "advisor:10.0.0.1" {
				t.Fatalf("unexpected scope %q", scope)
			}
			return true, 1, nil
		},
	}

	called := false
	handler := AdvisorRateLimit(limiter, 10, time.Minute, testLogg())(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/recommendations", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if !called {
		t.Fatal("expected next handler called")
	}
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
}

func TestAdvisorRateLimitBlocks(t *testing.T) {
	limiter := &stubLimiter{
		allowFn: func(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
			return false, limit + 1, nil
		},
	}

	called := false
	handler := AdvisorRateLimit(limiter, 10, time.Minute, testLogg())(okHandler(&called))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/recommendations", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if called {
		t.Fatal("next handler should not run when blocked")
	}
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", resp.Code)
	}
}

func TestAdvisorRateLimitDisabledWithoutLimiter(t *testing.T) {
	called := false
	handler := AdvisorRateLimit(nil, 10, time.Minute, testLogg())(okHandler(&called))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/ai/recommendations", nil))

	if !called {
		t.Fatal("expected passthrough when limiter is absent")
	}
}
