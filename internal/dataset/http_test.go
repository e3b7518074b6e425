// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/itemrec/internal/recommend"
)

func fastHTTPConfig(srv *httptest.Server) HTTPConfig {
	return HTTPConfig{
		ItemsURL:      srv.URL + "/products.json",
		RatingsURL:    srv.URL + "/reviews.json",
		CleanTitles:   true,
		MaxAttempts:   3,
		RetryInterval: time.Millisecond,
	}
}

func TestHTTPProvider(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products.json":
			_, _ = w.Write([]byte(productsJSON))
		case "/reviews.json":
			_, _ = w.Write([]byte(reviewsJSONL))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	p := NewHTTPProvider(fastHTTPConfig(srv), srv.Client(), zerolog.Nop())

	items, err := p.GetItems(context.Background())
	if err != nil {
		t.Fatalf("GetItems() error = %v", err)
	}
	if len(items) != 3 || items[1].Title != "wireless keyboard  mouse combo" {
		t.Errorf("GetItems() = %+v", items)
	}

	ratings, err := p.GetRatings(context.Background())
	if err != nil {
		t.Fatalf("GetRatings() error = %v", err)
	}
	if len(ratings) != 3 {
		t.Errorf("GetRatings() = %+v", ratings)
	}
}

func TestHTTPProvider_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	p := NewHTTPProvider(fastHTTPConfig(srv), srv.Client(), zerolog.Nop())

	items, err := p.GetItems(context.Background())
	if err != nil {
		t.Fatalf("GetItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Errorf("GetItems() = %d items, want 3", len(items))
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3", got)
	}
}

func TestHTTPProvider_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := NewHTTPProvider(fastHTTPConfig(srv), srv.Client(), zerolog.Nop())

	_, err := p.GetItems(context.Background())
	var se *statusError
	if !errors.As(err, &se) || se.code != http.StatusNotFound {
		t.Fatalf("error = %v, want 404 statusError", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestHTTPProvider_CircuitOpens(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPProvider(fastHTTPConfig(srv), srv.Client(), zerolog.Nop())

	if _, err := p.GetItems(context.Background()); err == nil {
		t.Fatal("first GetItems() should fail")
	}
	_, err := p.GetItems(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("second GetItems() error = %v, want ErrOpenState", err)
	}
	if got := hits.Load(); got != 5 {
		t.Errorf("server hits = %d, want 5", got)
	}
	if p.State() != gobreaker.StateOpen {
		t.Errorf("State() = %v, want open", p.State())
	}
}

func TestHTTPProvider_BodyLimit(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(productsJSON))
	}))
	defer srv.Close()

	cfg := fastHTTPConfig(srv)
	cfg.MaxBodyBytes = 16
	cfg.MaxAttempts = 1
	p := NewHTTPProvider(cfg, srv.Client(), zerolog.Nop())

	if _, err := p.GetItems(context.Background()); !errors.Is(err, recommend.ErrInvalidData) {
		t.Errorf("error = %v, want ErrInvalidData", err)
	}
}
