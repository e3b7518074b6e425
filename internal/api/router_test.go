// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/itemrec/internal/config"
)

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)

	rec, resp := doRequest(t, srv, "/api/v1/nope")
	if rec.Code != http.StatusNotFound || resp.Error == nil || resp.Error.Code != CodeNotFound {
		t.Errorf("unknown route: status = %d, error = %+v", rec.Code, resp.Error)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/strategies", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestRouter_SamplesRouteWinsOverItemID(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)

	rec, resp := doRequest(t, srv, "/api/v1/items/samples?limit=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[[]SampleItem](t, resp); len(got) != 1 {
		t.Errorf("samples = %+v", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)
	doRequest(t, srv, "/api/v1/strategies")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "itemrec_http_requests_total") {
		t.Error("metrics output missing itemrec_http_requests_total")
	}
}

func TestRouter_SecurityHeadersAndCompression(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
		"Content-Encoding":       "gzip",
		"Content-Type":           "application/json",
	}
	for k, want := range headers {
		if got := rec.Header().Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	handler := NewHandler(newTestEngine(t, &staticProvider{items: testItems}), nil, HandlerConfig{})
	mw := NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
		CORSOrigins:       []string{"https://shop.example.com"},
		RateLimitDisabled: true,
	}))
	srv := NewRouter(handler, mw).SetupChi()

	tests := []struct {
		origin string
		want   string
	}{
		{"https://shop.example.com", "https://shop.example.com"},
		{"https://evil.example.com", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/strategies", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	handler := NewHandler(newTestEngine(t, &staticProvider{items: testItems}), nil, HandlerConfig{})
	mw := NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	}))
	srv := NewRouter(handler, mw).SetupChi()

	for i := 0; i < 2; i++ {
		rec, _ := doRequest(t, srv, "/api/v1/strategies")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec, resp := doRequest(t, srv, "/api/v1/strategies")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != CodeRateLimited {
		t.Errorf("error = %+v", resp.Error)
	}

	// Health probes are outside the limited group.
	if rec, _ := doRequest(t, srv, "/api/v1/health/live"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFromSecurity(nil)
	if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute || len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("nil security config = %+v", cfg)
	}

	cfg = ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
		CORSOrigins:       []string{"*"},
		RateLimitRequests: 7,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
	})
	if cfg.RateLimitRequests != 7 || cfg.RateLimitWindow != time.Second || !cfg.RateLimitDisabled {
		t.Errorf("config = %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
	}
}
