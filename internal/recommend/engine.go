// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/itemrec/internal/cache"
	"github.com/tomtom215/itemrec/internal/metrics"
)

// Dependencies holds the collaborators an Engine needs.
type Dependencies struct {
	// Provider loads the catalog and rating log. Required.
	Provider DataProvider

	// Content ranks by title similarity. Required.
	Content Scorer

	// Collaborative ranks by co-rating affinity. Required.
	Collaborative Scorer
}

// Engine resolves requests against a lazily loaded Dataset and dispatches
// them to the configured scorers. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	provider      DataProvider
	content       Scorer
	collaborative Scorer

	// One-time load gate. loaded is closed once data/loadErr/status are final.
	loadOnce sync.Once
	loaded   chan struct{}
	data     *Dataset
	loadErr  error
	status   LoadStatus

	cache *cache.LRU[*Response]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
	notFound     atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, deps Dependencies, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch {
	case deps.Provider == nil:
		return nil, errors.New("data provider is required")
	case deps.Content == nil:
		return nil, errors.New("content scorer is required")
	case deps.Collaborative == nil:
		return nil, errors.New("collaborative scorer is required")
	}

	e := &Engine{
		config:        cfg.Clone(),
		logger:        logger.With().Str("component", "recommend").Logger(),
		provider:      deps.Provider,
		content:       deps.Content,
		collaborative: deps.Collaborative,
		loaded:        make(chan struct{}),
	}

	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.logger.Info().
		Str("content", deps.Content.Name()).
		Str("collaborative", deps.Collaborative.Name()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("recommendation engine created")

	return e, nil
}

// Recommend returns up to req.Limit items related to req.ItemID.
//
// Errors: ErrInvalidRequest for malformed requests, ErrDataUnavailable when
// the one-time load failed, ErrItemNotFound when the reference item is not
// in the catalog. An empty result is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(req)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(req.Strategy.String(), metrics.OutcomeInvalid, time.Since(start), 0)
		return nil, err
	}

	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	data, err := e.Dataset(ctx)
	if err != nil {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(req.Strategy.String(), metrics.OutcomeUnavailable, time.Since(start), 0)
		return nil, err
	}

	ref, ok := data.Catalog.FindItem(req.ItemID)
	if !ok {
		e.notFound.Add(1)
		metrics.RecordRecommendation(req.Strategy.String(), metrics.OutcomeNotFound, time.Since(start), 0)
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, req.ItemID)
	}

	if resp := e.tryGetCachedResponse(req, start, logger); resp != nil {
		metrics.RecordRecommendation(req.Strategy.String(), metrics.OutcomeSuccess, time.Since(start), len(resp.Items))
		return resp, nil
	}

	items := e.score(data, ref, req.Strategy, req.Limit)

	resp := &Response{
		Reference: ref,
		Items:     items,
		Metadata:  e.buildResponseMetadata(req, start, false),
	}
	e.cacheResponse(req, resp)

	metrics.RecordRecommendation(req.Strategy.String(), metrics.OutcomeSuccess, time.Since(start), len(items))

	logger.Debug().
		Int("returned", len(items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return e.copyResponse(resp), nil
}

// score dispatches to the scorer(s) for strategy.
// Hybrid requests twice the limit from each scorer before fusing.
func (e *Engine) score(data *Dataset, ref Item, strategy Strategy, limit int) []Recommendation {
	var items []Recommendation
	switch strategy {
	case StrategyContent:
		items = e.content.Score(data, ref, limit)
	case StrategyCollaborative:
		items = e.collaborative.Score(data, ref, limit)
	default:
		pool := hybridPoolSize(limit)
		contentRecs := e.content.Score(data, ref, pool)
		collabRecs := e.collaborative.Score(data, ref, pool)
		items = Fuse(contentRecs, collabRecs, e.config.Weights, limit)
	}

	if items == nil {
		items = []Recommendation{}
	}
	return items
}

// hybridPoolSize returns twice limit, saturating at math.MaxInt.
func hybridPoolSize(limit int) int {
	if limit > math.MaxInt/2 {
		return math.MaxInt
	}
	return limit * 2
}

// prepareRequest validates the request and applies defaults.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, error) {
	switch req.Strategy {
	case StrategyHybrid, StrategyContent, StrategyCollaborative:
	default:
		return req, fmt.Errorf("%w: unknown strategy %d", ErrInvalidRequest, req.Strategy)
	}

	if req.ItemID == "" {
		return req, fmt.Errorf("%w: item id is required", ErrInvalidRequest)
	}
	if req.Limit < 0 {
		return req, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidRequest, req.Limit)
	}
	if req.Limit == 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	return req, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("item_id", req.ItemID).
		Str("strategy", req.Strategy.String()).
		Int("limit", req.Limit).
		Logger()
}

// tryGetCachedResponse returns a copy of a cached response with fresh metadata.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCachedResponse(req Request, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}

	cached, ok := e.cache.Get(cacheKey(req))
	metrics.RecordCacheLookup(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}

	e.cacheHits.Add(1)
	resp := e.copyResponse(cached)
	resp.Metadata = e.buildResponseMetadata(req, start, true)
	logger.Debug().Msg("cache hit")
	return resp
}

// cacheResponse stores the response in cache if enabled.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cacheResponse(req Request, resp *Response) {
	if e.cache != nil {
		e.cache.Add(cacheKey(req), resp)
	}
}

// copyResponse returns a copy whose Items slice callers may modify.
func (e *Engine) copyResponse(resp *Response) *Response {
	items := make([]Recommendation, len(resp.Items))
	copy(items, resp.Items)

	return &Response{
		Reference: resp.Reference,
		Items:     items,
		Metadata:  resp.Metadata,
	}
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponseMetadata(req Request, start time.Time, cacheHit bool) ResponseMetadata {
	status := e.Status()
	return ResponseMetadata{
		RequestID: req.RequestID,
		Strategy:  req.Strategy.String(),
		Limit:     req.Limit,
		LatencyMS: time.Since(start).Milliseconds(),
		CacheHit:  cacheHit,
		LoadedAt:  status.LoadedAt,
		Timestamp: time.Now(),
	}
}

// cacheKey generates a cache key for a request.
//
//nolint:gocritic // hugeParam: req passed by value for simplicity
func cacheKey(req Request) string {
	return fmt.Sprintf("rec:%s:%s:%d", req.Strategy.String(), req.ItemID, req.Limit)
}

// Dataset returns the loaded data, triggering the one-time load if needed.
// Concurrent callers share a single load. The load runs detached from the
// caller's cancellation; a caller whose ctx ends first gets ctx.Err()
// while the load keeps going for everyone else.
func (e *Engine) Dataset(ctx context.Context) (*Dataset, error) {
	e.loadOnce.Do(func() {
		go e.load(context.WithoutCancel(ctx))
	})

	select {
	case <-e.loaded:
	case <-ctx.Done():
		return nil, fmt.Errorf("wait for data load: %w", ctx.Err())
	}

	if e.loadErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, e.loadErr)
	}
	return e.data, nil
}

// Warm triggers the one-time load and waits for it to finish.
func (e *Engine) Warm(ctx context.Context) error {
	_, err := e.Dataset(ctx)
	return err
}

// Ready reports whether data has been loaded successfully.
func (e *Engine) Ready() bool {
	select {
	case <-e.loaded:
		return e.loadErr == nil
	default:
		return false
	}
}

// load fetches items and ratings once and publishes the result.
func (e *Engine) load(ctx context.Context) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.config.Load.Timeout)
	defer cancel()

	e.logger.Info().Msg("loading catalog and rating log")

	data, err := e.fetch(ctx)

	duration := time.Since(start)
	status := LoadStatus{
		Loaded:     err == nil,
		Failed:     err != nil,
		DurationMS: duration.Milliseconds(),
	}

	if err != nil {
		status.LastError = err.Error()
		metrics.RecordDataLoad(duration, 0, 0, err)
		e.logger.Error().Err(err).Dur("duration", duration).Msg("data load failed")
	} else {
		status.ItemCount = data.Catalog.Len()
		status.RatingCount = data.Ratings.Len()
		status.LoadedAt = time.Now()
		metrics.RecordDataLoad(duration, status.ItemCount, status.RatingCount, nil)
		e.logger.Info().
			Int("items", status.ItemCount).
			Int("ratings", status.RatingCount).
			Dur("duration", duration).
			Msg("data loaded")
	}

	e.data = data
	e.loadErr = err
	e.status = status
	close(e.loaded)
}

func (e *Engine) fetch(ctx context.Context) (*Dataset, error) {
	var (
		items   []Item
		ratings []Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if items, err = e.provider.GetItems(gctx); err != nil {
			return fmt.Errorf("get items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ratings, err = e.provider.GetRatings(gctx); err != nil {
			return fmt.Errorf("get ratings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data, err := NewDataset(items, ratings)
	if err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}
	return data, nil
}

// Item returns the catalog item with the given ID.
func (e *Engine) Item(ctx context.Context, id string) (Item, error) {
	data, err := e.Dataset(ctx)
	if err != nil {
		return Item{}, err
	}

	item, ok := data.Catalog.FindItem(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	return item, nil
}

// Samples returns the first n catalog items in catalog order.
func (e *Engine) Samples(ctx context.Context, n int) ([]Item, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample size must not be negative, got %d", ErrInvalidRequest, n)
	}

	data, err := e.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	all := data.Catalog.AllItems()
	if n > len(all) {
		n = len(all)
	}
	out := make([]Item, n)
	copy(out, all[:n])
	return out, nil
}

// Status returns the state of the one-time data load.
func (e *Engine) Status() LoadStatus {
	select {
	case <-e.loaded:
		return e.status
	default:
		return LoadStatus{}
	}
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		ErrorCount:   e.errorCount.Load(),
		NotFound:     e.notFound.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}
