// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights defines the hybrid fusion weights.
	Weights FusionWeights `json:"weights"`

	// Limits contains request limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`

	// Load contains data loading parameters.
	Load LoadConfig `json:"load"`
}

// FusionWeights defines how the hybrid strategy combines the two scorers.
// Unlike a normalized blend, the weights are applied as-is.
type FusionWeights struct {
	// Content is the multiplier for content scores.
	// Default: 0.6.
	Content float64 `json:"content"`

	// Collaborative is the multiplier for collaborative scores.
	// Default: 0.4.
	Collaborative float64 `json:"collaborative"`
}

// LimitsConfig contains request limits.
type LimitsConfig struct {
	// DefaultLimit is the number of results returned when a request leaves
	// the limit unset.
	// Default: 5.
	DefaultLimit int `json:"default_limit"`
}

// CacheConfig contains response caching parameters.
type CacheConfig struct {
	// Enabled controls whether responses are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached responses.
	// Default: 10000.
	MaxEntries int `json:"max_entries"`
}

// LoadConfig contains data loading parameters.
type LoadConfig struct {
	// Timeout bounds the one-time catalog and rating log load.
	// Default: 2m.
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: FusionWeights{
			Content:       0.6,
			Collaborative: 0.4,
		},
		Limits: LimitsConfig{
			DefaultLimit: 5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
		},
		Load: LoadConfig{
			Timeout: 2 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Content < 0 {
		return fmt.Errorf("weights.content must be non-negative, got %f", c.Weights.Content)
	}
	if c.Weights.Collaborative < 0 {
		return fmt.Errorf("weights.collaborative must be non-negative, got %f", c.Weights.Collaborative)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be positive, got %d", c.Limits.DefaultLimit)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	if c.Load.Timeout <= 0 {
		return fmt.Errorf("load.timeout must be positive, got %v", c.Load.Timeout)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
