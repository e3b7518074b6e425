// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/itemrec/internal/recommend"
)

// DataEngine is the engine surface used by WarmupService.
type DataEngine interface {
	// Dataset triggers the one-time load and waits for it.
	Dataset(ctx context.Context) (*recommend.Dataset, error)
}

// SnapshotSink persists a loaded dataset, e.g. to Badger or DuckDB.
type SnapshotSink interface {
	Save(ctx context.Context, items []recommend.Item, ratings []recommend.Rating) error
}

// NamedSink labels a SnapshotSink for logs.
type NamedSink struct {
	Name string
	Sink SnapshotSink
}

// WarmupConfig holds configuration for the warm-up service.
type WarmupConfig struct {
	// Sinks receive a copy of the dataset after a successful load.
	Sinks []NamedSink

	// SnapshotTimeout bounds each sink write.
	// Default: 5m.
	SnapshotTimeout time.Duration
}

// WarmupService triggers the engine's one-time data load at startup so the
// first request does not pay for it, then writes the loaded dataset to the
// configured sinks. It runs once: a load failure is permanent for the
// engine, so restarting would not help.
type WarmupService struct {
	engine DataEngine
	config WarmupConfig
	logger zerolog.Logger
}

// NewWarmupService creates a warm-up service.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewWarmupService(engine DataEngine, cfg WarmupConfig, logger zerolog.Logger) *WarmupService {
	if cfg.SnapshotTimeout <= 0 {
		cfg.SnapshotTimeout = 5 * time.Minute
	}
	return &WarmupService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "data-warmup").Logger(),
	}
}

// Serve implements suture.Service. It returns suture.ErrDoNotRestart once
// the load has finished, whatever its outcome.
func (s *WarmupService) Serve(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().Msg("warming recommendation data")

	data, err := s.engine.Dataset(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Error().Err(err).Msg("data warm-up failed; recommendations unavailable")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().
		Int("items", data.Catalog.Len()).
		Int("ratings", data.Ratings.Len()).
		Dur("duration", time.Since(start)).
		Msg("recommendation data ready")

	if err := s.snapshot(ctx, data); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn().Err(err).Msg("dataset snapshot incomplete")
	}

	return suture.ErrDoNotRestart
}

// snapshot writes data to every sink. One failing sink does not stop the others.
func (s *WarmupService) snapshot(ctx context.Context, data *recommend.Dataset) error {
	if len(s.config.Sinks) == 0 {
		return nil
	}

	items := data.Catalog.AllItems()
	ratings := data.Ratings.All()

	var errs []error
	for _, sink := range s.config.Sinks {
		start := time.Now()
		sinkCtx, cancel := context.WithTimeout(ctx, s.config.SnapshotTimeout)
		err := sink.Sink.Save(sinkCtx, items, ratings)
		cancel()

		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name, err))
			continue
		}
		s.logger.Info().
			Str("sink", sink.Name).
			Dur("duration", time.Since(start)).
			Msg("dataset snapshot written")
	}
	return errors.Join(errs...)
}

// String implements fmt.Stringer for suture logs.
func (s *WarmupService) String() string {
	return "data-warmup"
}
