// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// mockProvider is a DataProvider that counts loads and can block or fail.
type mockProvider struct {
	items   []Item
	ratings []Rating
	err     error
	gate    chan struct{}
	calls   atomic.Int32
}

func (m *mockProvider) GetItems(ctx context.Context) ([]Item, error) {
	m.calls.Add(1)
	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockProvider) GetRatings(context.Context) ([]Rating, error) {
	return m.ratings, nil
}

// mockScorer returns a fixed list and records the limits it was asked for.
type mockScorer struct {
	name   string
	result []Recommendation
	mu     sync.Mutex
	limits []int
}

func (m *mockScorer) Name() string { return m.name }

func (m *mockScorer) Score(_ *Dataset, ref Item, limit int) []Recommendation {
	m.mu.Lock()
	m.limits = append(m.limits, limit)
	m.mu.Unlock()

	out := make([]Recommendation, 0, min(limit, len(m.result)))
	for _, r := range m.result {
		if r.Item.ID == ref.ID || len(out) == limit {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (m *mockScorer) lastLimit() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.limits) == 0 {
		return -1
	}
	return m.limits[len(m.limits)-1]
}

func testItems() []Item {
	return []Item{
		{ID: "a", Title: "alpha"},
		{ID: "b", Title: "beta"},
		{ID: "c", Title: "gamma"},
		{ID: "d", Title: "delta"},
	}
}

type engineFixture struct {
	engine        *Engine
	provider      *mockProvider
	content       *mockScorer
	collaborative *mockScorer
}

func newFixture(t *testing.T, cfg *Config, provider *mockProvider) *engineFixture {
	t.Helper()

	if provider == nil {
		provider = &mockProvider{items: testItems()}
	}
	content := &mockScorer{name: "content", result: []Recommendation{
		{Item: Item{ID: "b", Title: "beta"}, Score: 0.5, Reason: "content b"},
		{Item: Item{ID: "c", Title: "gamma"}, Score: 0.25, Reason: "content c"},
	}}
	collaborative := &mockScorer{name: "collaborative", result: []Recommendation{
		{Item: Item{ID: "d", Title: "delta"}, Score: 1.0, Reason: "collab d"},
		{Item: Item{ID: "b", Title: "beta"}, Score: 0.5, Reason: "collab b"},
	}}

	engine, err := NewEngine(cfg, Dependencies{
		Provider:      provider,
		Content:       content,
		Collaborative: collaborative,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	return &engineFixture{engine: engine, provider: provider, content: content, collaborative: collaborative}
}

func TestNewEngine_Errors(t *testing.T) {
	scorer := &mockScorer{name: "s"}
	provider := &mockProvider{}

	tests := []struct {
		name string
		cfg  *Config
		deps Dependencies
	}{
		{name: "missing provider", deps: Dependencies{Content: scorer, Collaborative: scorer}},
		{name: "missing content", deps: Dependencies{Provider: provider, Collaborative: scorer}},
		{name: "missing collaborative", deps: Dependencies{Provider: provider, Content: scorer}},
		{
			name: "invalid config",
			cfg:  &Config{Limits: LimitsConfig{DefaultLimit: 0}},
			deps: Dependencies{Provider: provider, Content: scorer, Collaborative: scorer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.cfg, tt.deps, zerolog.Nop()); err == nil {
				t.Error("NewEngine() should fail")
			}
		})
	}
}

func TestEngine_Recommend_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		strategy         Strategy
		limit            int
		wantIDs          []string
		wantContentLimit int
		wantCollabLimit  int
	}{
		{
			name:             "content",
			strategy:         StrategyContent,
			limit:            3,
			wantIDs:          []string{"b", "c"},
			wantContentLimit: 3,
			wantCollabLimit:  -1,
		},
		{
			name:             "collaborative",
			strategy:         StrategyCollaborative,
			limit:            1,
			wantIDs:          []string{"d"},
			wantContentLimit: -1,
			wantCollabLimit:  1,
		},
		{
			name:     "hybrid requests twice the limit",
			strategy: StrategyHybrid,
			limit:    2,
			// b: 0.6*0.5 + 0.4*0.5 = 0.5, d: 0.4, c: 0.15
			wantIDs:          []string{"b", "d"},
			wantContentLimit: 4,
			wantCollabLimit:  4,
		},
		{
			name:             "zero limit uses default",
			strategy:         StrategyHybrid,
			limit:            0,
			wantIDs:          []string{"b", "d", "c"},
			wantContentLimit: 10,
			wantCollabLimit:  10,
		},
		{
			name:             "hybrid pool saturates for huge limit",
			strategy:         StrategyHybrid,
			limit:            math.MaxInt,
			wantIDs:          []string{"b", "d", "c"},
			wantContentLimit: math.MaxInt,
			wantCollabLimit:  math.MaxInt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil, nil)
			resp, err := f.engine.Recommend(context.Background(), Request{
				ItemID:   "a",
				Strategy: tt.strategy,
				Limit:    tt.limit,
			})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}

			if len(resp.Items) != len(tt.wantIDs) {
				t.Fatalf("len = %d, want %d: %+v", len(resp.Items), len(tt.wantIDs), resp.Items)
			}
			for i, id := range tt.wantIDs {
				if resp.Items[i].Item.ID != id {
					t.Errorf("[%d] item = %q, want %q", i, resp.Items[i].Item.ID, id)
				}
			}
			if got := f.content.lastLimit(); got != tt.wantContentLimit {
				t.Errorf("content limit = %d, want %d", got, tt.wantContentLimit)
			}
			if got := f.collaborative.lastLimit(); got != tt.wantCollabLimit {
				t.Errorf("collaborative limit = %d, want %d", got, tt.wantCollabLimit)
			}
			if resp.Metadata.Strategy != tt.strategy.String() {
				t.Errorf("metadata strategy = %q", resp.Metadata.Strategy)
			}
			if resp.Metadata.RequestID == "" {
				t.Error("metadata request id should be generated")
			}
		})
	}
}

func TestEngine_Recommend_InvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
	}{
		{name: "empty item id", req: Request{}},
		{name: "negative limit", req: Request{ItemID: "a", Limit: -1}},
		{name: "unknown strategy", req: Request{ItemID: "a", Strategy: Strategy(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil, nil)
			_, err := f.engine.Recommend(context.Background(), tt.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("error = %v, want ErrInvalidRequest", err)
			}
			if f.provider.calls.Load() != 0 {
				t.Error("invalid request should not trigger a data load")
			}
		})
	}
}

func TestEngine_Recommend_NotFound(t *testing.T) {
	f := newFixture(t, nil, nil)

	resp, err := f.engine.Recommend(context.Background(), Request{ItemID: "missing-id", Limit: 5})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("error = %v, want ErrItemNotFound", err)
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil", resp)
	}
	if f.content.lastLimit() != -1 || f.collaborative.lastLimit() != -1 {
		t.Error("scorers should not run for a missing reference")
	}
	if got := f.engine.GetMetrics().NotFound; got != 1 {
		t.Errorf("NotFound metric = %d, want 1", got)
	}
}

func TestEngine_LoadsOnceConcurrently(t *testing.T) {
	provider := &mockProvider{items: testItems(), gate: make(chan struct{})}
	f := newFixture(t, nil, provider)

	const callers = 20
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.engine.Recommend(context.Background(), Request{ItemID: "a"})
			errs <- err
		}()
	}

	// Let the callers pile up on the load gate.
	time.Sleep(20 * time.Millisecond)
	if f.engine.Ready() {
		t.Error("engine should not be ready while loading")
	}
	close(provider.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Recommend() error = %v", err)
		}
	}
	if got := provider.calls.Load(); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}
	if !f.engine.Ready() {
		t.Error("engine should be ready after load")
	}
	status := f.engine.Status()
	if !status.Loaded || status.ItemCount != 4 {
		t.Errorf("Status() = %+v", status)
	}
}

func TestEngine_LoadFailureIsCached(t *testing.T) {
	loadErr := errors.New("catalog file missing")
	provider := &mockProvider{err: loadErr}
	f := newFixture(t, nil, provider)

	for i := 0; i < 3; i++ {
		_, err := f.engine.Recommend(context.Background(), Request{ItemID: "a"})
		if !errors.Is(err, ErrDataUnavailable) {
			t.Fatalf("call %d: error = %v, want ErrDataUnavailable", i, err)
		}
		if !errors.Is(err, loadErr) {
			t.Errorf("call %d: error = %v, want wrapped cause", i, err)
		}
	}

	if got := provider.calls.Load(); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}
	if f.engine.Ready() {
		t.Error("engine should not be ready after a failed load")
	}
	if status := f.engine.Status(); !status.Failed || status.LastError == "" {
		t.Errorf("Status() = %+v, want failed with error", status)
	}
	if err := f.engine.Warm(context.Background()); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Warm() error = %v, want ErrDataUnavailable", err)
	}
}

func TestEngine_InvalidDataIsUnavailable(t *testing.T) {
	provider := &mockProvider{items: []Item{{ID: "a"}, {ID: "a"}}}
	f := newFixture(t, nil, provider)

	_, err := f.engine.Recommend(context.Background(), Request{ItemID: "a"})
	if !errors.Is(err, ErrDataUnavailable) || !errors.Is(err, ErrInvalidData) {
		t.Errorf("error = %v, want ErrDataUnavailable wrapping ErrInvalidData", err)
	}
}

func TestEngine_CallerCancellationDoesNotPoisonLoad(t *testing.T) {
	provider := &mockProvider{items: testItems(), gate: make(chan struct{})}
	f := newFixture(t, nil, provider)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := f.engine.Recommend(ctx, Request{ItemID: "a"})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(provider.gate)

	resp, err := f.engine.Recommend(context.Background(), Request{ItemID: "a"})
	if err != nil {
		t.Fatalf("second caller error = %v", err)
	}
	if len(resp.Items) == 0 {
		t.Error("second caller should get results")
	}
	if got := provider.calls.Load(); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}
}

func TestEngine_Cache(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	req := Request{ItemID: "a", Strategy: StrategyContent, Limit: 2}

	first, err := f.engine.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if first.Metadata.CacheHit {
		t.Error("first call should miss the cache")
	}

	// Callers own the returned slice.
	first.Items[0].Score = 99

	second, err := f.engine.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !second.Metadata.CacheHit {
		t.Error("second call should hit the cache")
	}
	if second.Items[0].Score != 0.5 {
		t.Errorf("cached score = %v, want 0.5", second.Items[0].Score)
	}
	if len(f.content.limits) != 1 {
		t.Errorf("content scorer ran %d times, want 1", len(f.content.limits))
	}

	m := f.engine.GetMetrics()
	if m.CacheHits != 1 || m.CacheMisses != 1 || m.RequestCount != 2 {
		t.Errorf("GetMetrics() = %+v", m)
	}
}

func TestEngine_CacheDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	f := newFixture(t, cfg, nil)

	for i := 0; i < 2; i++ {
		resp, err := f.engine.Recommend(context.Background(), Request{ItemID: "a", Strategy: StrategyContent})
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if resp.Metadata.CacheHit {
			t.Error("cache hit with cache disabled")
		}
	}
	if len(f.content.limits) != 2 {
		t.Errorf("content scorer ran %d times, want 2", len(f.content.limits))
	}
}

func TestEngine_ItemAndSamples(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()

	item, err := f.engine.Item(ctx, "c")
	if err != nil || item.Title != "gamma" {
		t.Errorf("Item(c) = %+v, %v", item, err)
	}
	if _, err := f.engine.Item(ctx, "zzz"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Item(zzz) error = %v, want ErrItemNotFound", err)
	}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{}},
		{2, []string{"a", "b"}},
		{10, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		got, err := f.engine.Samples(ctx, tt.n)
		if err != nil {
			t.Fatalf("Samples(%d) error = %v", tt.n, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Samples(%d) len = %d, want %d", tt.n, len(got), len(tt.want))
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("Samples(%d)[%d] = %q, want %q", tt.n, i, got[i].ID, id)
			}
		}
	}

	if _, err := f.engine.Samples(ctx, -1); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Samples(-1) error = %v, want ErrInvalidRequest", err)
	}
}

func TestEngine_GetConfigReturnsCopy(t *testing.T) {
	f := newFixture(t, nil, nil)

	cfg := f.engine.GetConfig()
	cfg.Limits.DefaultLimit = 100

	if got := f.engine.GetConfig().Limits.DefaultLimit; got != 5 {
		t.Errorf("engine config modified through copy: default limit = %d", got)
	}
}

func TestHybridPoolSize(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{1, 2},
		{5, 10},
		{math.MaxInt / 2, math.MaxInt / 2 * 2},
		{math.MaxInt/2 + 1, math.MaxInt},
		{math.MaxInt, math.MaxInt},
	}
	for _, tt := range tests {
		if got := hybridPoolSize(tt.limit); got != tt.want {
			t.Errorf("hybridPoolSize(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
