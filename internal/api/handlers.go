// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/itemrec/internal/database"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// Recommender is the engine surface the handlers depend on.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	Item(ctx context.Context, id string) (recommend.Item, error)
	Samples(ctx context.Context, n int) ([]recommend.Item, error)
	Ready() bool
	Status() recommend.LoadStatus
	GetMetrics() recommend.Metrics
}

// DatasetStats reports counts over the stored dataset.
type DatasetStats interface {
	Stats(ctx context.Context, likeThreshold float64) (database.Stats, error)
}

// HandlerConfig contains request limits for the handlers.
type HandlerConfig struct {
	// DefaultStrategy is used when a request has no strategy parameter.
	DefaultStrategy recommend.Strategy

	// MaxLimit caps the limit query parameter.
	MaxLimit int

	// SampleSize is the default number of sample items.
	SampleSize int

	// SampleTitleLength is how many runes of a sample title are shown.
	SampleTitleLength int

	// LikeThreshold is passed to DatasetStats.
	LikeThreshold float64

	// RequestTimeout bounds each engine call.
	RequestTimeout time.Duration

	// Version is reported by the liveness probe.
	Version string
}

// DefaultHandlerConfig returns the limits used when none are configured.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		DefaultStrategy:   recommend.StrategyHybrid,
		MaxLimit:          100,
		SampleSize:        8,
		SampleTitleLength: 50,
		LikeThreshold:     recommend.LikedThreshold,
		RequestTimeout:    10 * time.Second,
		Version:           "dev",
	}
}

// Handler serves the recommendation API.
type Handler struct {
	engine    Recommender
	stats     DatasetStats
	cfg       HandlerConfig
	startTime time.Time
}

// NewHandler creates a Handler. stats may be nil when no analytical store
// is configured.
func NewHandler(engine Recommender, stats DatasetStats, cfg HandlerConfig) *Handler {
	defaults := DefaultHandlerConfig()
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = defaults.MaxLimit
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = defaults.SampleSize
	}
	if cfg.SampleTitleLength <= 0 {
		cfg.SampleTitleLength = defaults.SampleTitleLength
	}
	if cfg.LikeThreshold <= 0 {
		cfg.LikeThreshold = defaults.LikeThreshold
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	return &Handler{
		engine:    engine,
		stats:     stats,
		cfg:       cfg,
		startTime: time.Now(),
	}
}
