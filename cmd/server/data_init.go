// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/itemrec/internal/config"
	"github.com/tomtom215/itemrec/internal/database"
	"github.com/tomtom215/itemrec/internal/dataset"
	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/supervisor/services"
)

// DataComponents holds the data source and the optional stores.
type DataComponents struct {
	Provider recommend.DataProvider

	// DB is set when DuckDB is the source or an import target.
	DB *database.DB

	// Badger is set when Badger is the source or a snapshot target.
	Badger *dataset.BadgerStore

	// Sinks receive the dataset after a successful load.
	Sinks []services.NamedSink

	closers []func() error
}

// Close releases every store that was opened.
func (d *DataComponents) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

// initData opens the configured source and snapshot targets.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func initData(cfg *config.Config, logger zerolog.Logger) (_ *DataComponents, err error) {
	d := &DataComponents{}
	defer func() {
		if err != nil {
			_ = d.Close()
		}
	}()

	src := cfg.Data.Source

	if src == config.SourceDuckDB || cfg.Data.ImportToDuckDB {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("open duckdb: %w", err)
		}
		d.DB = db
		d.closers = append(d.closers, db.Close)
	}

	if src == config.SourceBadger || cfg.Data.SnapshotToBadger {
		bdb, err := dataset.OpenBadger(cfg.Data.BadgerPath)
		if err != nil {
			return nil, fmt.Errorf("open badger: %w", err)
		}
		d.Badger = dataset.NewBadgerStore(bdb, logger)
		d.closers = append(d.closers, bdb.Close)
	}

	switch src {
	case config.SourceJSON:
		d.Provider = dataset.NewFileProvider(dataset.FileConfig{
			ItemsPath:   cfg.Data.ItemsPath,
			RatingsPath: cfg.Data.RatingsPath,
			CleanTitles: cfg.Data.CleanTitles,
		}, logger)
	case config.SourceHTTP:
		d.Provider = dataset.NewHTTPProvider(dataset.HTTPConfig{
			ItemsURL:    cfg.Data.ItemsURL,
			RatingsURL:  cfg.Data.RatingsURL,
			CleanTitles: cfg.Data.CleanTitles,
			Timeout:     cfg.Data.HTTPTimeout,
			MaxAttempts: cfg.Data.HTTPMaxAttempts,
		}, &http.Client{Timeout: cfg.Data.HTTPTimeout}, logger)
	case config.SourceDuckDB:
		d.Provider = d.DB
	case config.SourceBadger:
		d.Provider = d.Badger
	default:
		return nil, fmt.Errorf("unknown data source %q", src)
	}

	// Never write a snapshot back into the store it was read from.
	if cfg.Data.ImportToDuckDB && src != config.SourceDuckDB {
		d.Sinks = append(d.Sinks, services.NamedSink{Name: "duckdb", Sink: d.DB})
	}
	if cfg.Data.SnapshotToBadger && src != config.SourceBadger {
		d.Sinks = append(d.Sinks, services.NamedSink{Name: "badger", Sink: d.Badger})
	}

	logger.Info().
		Str("source", src).
		Bool("duckdb", d.DB != nil).
		Bool("badger", d.Badger != nil).
		Int("snapshot_sinks", len(d.Sinks)).
		Msg("data layer initialized")

	return d, nil
}
