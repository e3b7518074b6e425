// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/itemrec/internal/logging"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateSecurity()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server read and write timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateData() error {
	d := &c.Data
	switch d.Source {
	case SourceJSON:
		if d.ItemsPath == "" || d.RatingsPath == "" {
			return fmt.Errorf("DATA_ITEMS_PATH and DATA_RATINGS_PATH are required when DATA_SOURCE=json")
		}
	case SourceHTTP:
		if err := validateHTTPURL(d.ItemsURL, "DATA_ITEMS_URL"); err != nil {
			return err
		}
		if err := validateHTTPURL(d.RatingsURL, "DATA_RATINGS_URL"); err != nil {
			return err
		}
		if d.HTTPMaxAttempts < 1 {
			return fmt.Errorf("DATA_HTTP_MAX_ATTEMPTS must be at least 1, got %d", d.HTTPMaxAttempts)
		}
	case SourceDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATA_SOURCE=duckdb")
		}
		if d.ImportToDuckDB {
			return fmt.Errorf("DATA_IMPORT_TO_DUCKDB cannot be used when DATA_SOURCE=duckdb")
		}
	case SourceBadger:
		if d.BadgerPath == "" {
			return fmt.Errorf("DATA_BADGER_PATH is required when DATA_SOURCE=badger")
		}
		if d.SnapshotToBadger {
			return fmt.Errorf("DATA_SNAPSHOT_TO_BADGER cannot be used when DATA_SOURCE=badger")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of json, http, duckdb, badger, got %q", d.Source)
	}

	if d.SnapshotToBadger && d.BadgerPath == "" {
		return fmt.Errorf("DATA_BADGER_PATH is required when DATA_SNAPSHOT_TO_BADGER=true")
	}
	if d.ImportToDuckDB && c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when DATA_IMPORT_TO_DUCKDB=true")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if _, err := recommend.ParseStrategy(r.DefaultStrategy); err != nil {
		return fmt.Errorf("RECOMMEND_DEFAULT_STRATEGY: %w", err)
	}
	if r.DefaultLimit < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_LIMIT must be at least 1, got %d", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("RECOMMEND_MAX_LIMIT (%d) must not be below RECOMMEND_DEFAULT_LIMIT (%d)", r.MaxLimit, r.DefaultLimit)
	}
	if r.ContentWeight < 0 || r.CollaborativeWeight < 0 {
		return fmt.Errorf("recommendation weights must not be negative")
	}
	if r.ReasonTitleLength < 0 {
		return fmt.Errorf("RECOMMEND_REASON_TITLE_LENGTH must not be negative")
	}
	if r.SampleSize < 1 {
		return fmt.Errorf("RECOMMEND_SAMPLE_SIZE must be at least 1, got %d", r.SampleSize)
	}
	if r.LoadTimeout <= 0 {
		return fmt.Errorf("RECOMMEND_LOAD_TIMEOUT must be positive")
	}
	if r.CacheEnabled && (r.CacheTTL <= 0 || r.CacheMaxEntries < 1) {
		return fmt.Errorf("RECOMMEND_CACHE_TTL and RECOMMEND_CACHE_MAX_ENTRIES must be positive when caching is enabled")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitRequests)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func validateHTTPURL(raw, name string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", name)
	}
	return nil
}
