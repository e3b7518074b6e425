// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package config

import (
	"fmt"
	"time"
)

// Data sources accepted by DataConfig.Source.
const (
	SourceJSON   = "json"
	SourceHTTP   = "http"
	SourceDuckDB = "duckdb"
	SourceBadger = "badger"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Data      DataConfig      `koanf:"data"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig maps onto logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DataConfig selects and locates the dataset.
type DataConfig struct {
	// Source is one of json, http, duckdb, badger.
	Source string `koanf:"source"`

	ItemsPath   string `koanf:"items_path"`
	RatingsPath string `koanf:"ratings_path"`

	ItemsURL        string        `koanf:"items_url"`
	RatingsURL      string        `koanf:"ratings_url"`
	HTTPTimeout     time.Duration `koanf:"http_timeout"`
	HTTPMaxAttempts int           `koanf:"http_max_attempts"`

	// CleanTitles derives title_clean from title when a record lacks it.
	CleanTitles bool `koanf:"clean_titles"`

	// BadgerPath is the snapshot directory for the badger source and for
	// SnapshotToBadger.
	BadgerPath string `koanf:"badger_path"`

	// SnapshotToBadger writes every successful load to BadgerPath.
	SnapshotToBadger bool `koanf:"snapshot_to_badger"`

	// ImportToDuckDB writes every successful load into the DuckDB database.
	ImportToDuckDB bool `koanf:"import_to_duckdb"`
}

// DatabaseConfig configures DuckDB.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// RecommendConfig maps onto recommend.Config and the scorer settings.
type RecommendConfig struct {
	DefaultStrategy     string        `koanf:"default_strategy"`
	DefaultLimit        int           `koanf:"default_limit"`
	MaxLimit            int           `koanf:"max_limit"`
	ContentWeight       float64       `koanf:"content_weight"`
	CollaborativeWeight float64       `koanf:"collaborative_weight"`
	LikeThreshold       float64       `koanf:"like_threshold"`
	ReasonTitleLength   int           `koanf:"reason_title_length"`
	SampleSize          int           `koanf:"sample_size"`
	LoadTimeout         time.Duration `koanf:"load_timeout"`
	CacheEnabled        bool          `koanf:"cache_enabled"`
	CacheTTL            time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries     int           `koanf:"cache_max_entries"`
}

// SecurityConfig configures CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// defaultConfig returns the values applied before file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Data: DataConfig{
			Source:          SourceJSON,
			ItemsPath:       "data/products.json",
			RatingsPath:     "data/reviews.json",
			HTTPTimeout:     30 * time.Second,
			HTTPMaxAttempts: 3,
			CleanTitles:     true,
			BadgerPath:      "data/snapshot",
		},
		Database: DatabaseConfig{
			Path:      "data/itemrec.duckdb",
			MaxMemory: "1GB",
		},
		Recommend: RecommendConfig{
			DefaultStrategy:     "hybrid",
			DefaultLimit:        5,
			MaxLimit:            100,
			ContentWeight:       0.6,
			CollaborativeWeight: 0.4,
			LikeThreshold:       4.0,
			ReasonTitleLength:   30,
			SampleSize:          8,
			LoadTimeout:         2 * time.Minute,
			CacheEnabled:        true,
			CacheTTL:            5 * time.Minute,
			CacheMaxEntries:     10000,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
		},
	}
}

// Default returns a copy of the built-in defaults.
func Default() *Config {
	return defaultConfig()
}
