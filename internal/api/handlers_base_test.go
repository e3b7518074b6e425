// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/itemrec/internal/database"
	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/recommend/algorithms"
)

var (
	testItems = []recommend.Item{
		{ID: "B001", Title: "wireless bluetooth headphones"},
		{ID: "B002", Title: "bluetooth speaker portable"},
		{ID: "B003", Title: "usb charging cable"},
		{ID: "B004", Title: "stainless steel insulated water bottle with carrying handle and straw lid"},
	}
	testRatings = []recommend.Rating{
		{ItemID: "B001", RaterID: "u1", Score: 5},
		{ItemID: "B002", RaterID: "u1", Score: 5},
		{ItemID: "B001", RaterID: "u2", Score: 4},
		{ItemID: "B003", RaterID: "u2", Score: 5},
		{ItemID: "B004", RaterID: "u3", Score: 2},
	}
)

type staticProvider struct {
	items   []recommend.Item
	ratings []recommend.Rating
	err     error
	gate    chan struct{}
}

func (p *staticProvider) GetItems(ctx context.Context) ([]recommend.Item, error) {
	if p.gate != nil {
		select {
		case <-p.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.items, nil
}

func (p *staticProvider) GetRatings(_ context.Context) ([]recommend.Rating, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.ratings, nil
}

type fakeStats struct {
	stats database.Stats
	err   error
	got   float64
}

func (f *fakeStats) Stats(_ context.Context, likeThreshold float64) (database.Stats, error) {
	f.got = likeThreshold
	return f.stats, f.err
}

func newTestEngine(t *testing.T, provider recommend.DataProvider) *recommend.Engine {
	t.Helper()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Dependencies{
		Provider:      provider,
		Content:       algorithms.NewContentBased(),
		Collaborative: algorithms.NewCoRating(algorithms.CoRatingConfig{}),
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestServer returns a router backed by the fixture catalog.
func newTestServer(t *testing.T, provider recommend.DataProvider, stats DatasetStats) http.Handler {
	t.Helper()

	if provider == nil {
		provider = &staticProvider{items: testItems, ratings: testRatings}
	}
	handler := NewHandler(newTestEngine(t, provider), stats, HandlerConfig{MaxLimit: 20})

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	return NewRouter(handler, NewChiMiddleware(mwCfg)).SetupChi()
}

type testResponse struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func doRequest(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var resp testResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s: %v\n%s", target, err, rec.Body.String())
		}
	}
	return rec, resp
}

func decodeData[T any](t *testing.T, resp testResponse) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(resp.Data, &v); err != nil {
		t.Fatalf("decode data: %v\n%s", err, resp.Data)
	}
	return v
}
