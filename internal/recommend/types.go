// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// LikedThreshold is the minimum rating score that counts as "liked".
// Ratings use a 1-5 scale.
const LikedThreshold = 4.0

// Strategy selects how recommendations are produced.
type Strategy int

const (
	// StrategyHybrid fuses content and collaborative scores. It is the default.
	StrategyHybrid Strategy = iota
	// StrategyContent ranks by title keyword overlap.
	StrategyContent
	// StrategyCollaborative ranks by co-rating affinity.
	StrategyCollaborative
)

// String returns the wire name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyHybrid:
		return "hybrid"
	case StrategyContent:
		return "content"
	case StrategyCollaborative:
		return "collaborative"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable label for the strategy.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategyHybrid:
		return "Hybrid (Best)"
	case StrategyContent:
		return "Content-Based"
	case StrategyCollaborative:
		return "Collaborative"
	default:
		return s.String()
	}
}

// AllStrategies lists the supported strategies in display order.
func AllStrategies() []Strategy {
	return []Strategy{StrategyHybrid, StrategyContent, StrategyCollaborative}
}

// ParseStrategy converts a wire name into a Strategy.
// The empty string selects the default hybrid strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hybrid":
		return StrategyHybrid, nil
	case "content":
		return StrategyContent, nil
	case "collaborative":
		return StrategyCollaborative, nil
	default:
		return StrategyHybrid, fmt.Errorf("%w: unknown strategy %q", ErrInvalidRequest, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Item is one catalog product.
type Item struct {
	// ID is the stable catalog key.
	ID string `json:"id"`

	// Title is the free-text title; the only content signal.
	Title string `json:"title"`
}

// Rating is one rater's evaluation of one item.
// ItemID may reference an item that is not in the catalog.
type Rating struct {
	ItemID  string  `json:"item_id"`
	RaterID string  `json:"rater_id"`
	Score   float64 `json:"score"`
}

// Liked reports whether the rating's score is at least threshold.
func (r Rating) Liked(threshold float64) bool {
	return r.Score >= threshold
}

// Recommendation is one ranked result.
type Recommendation struct {
	// Item is the recommended catalog item.
	Item Item `json:"item"`

	// Score is the relative confidence. Higher is better; the list does
	// not sum to 1.
	Score float64 `json:"score"`

	// Reason explains which signal(s) produced the score.
	Reason string `json:"reason"`
}

// Request describes a single recommendation call.
type Request struct {
	// ItemID is the reference item. Required.
	ItemID string `json:"item_id"`

	// Strategy selects the scorer. Zero value is hybrid.
	Strategy Strategy `json:"strategy"`

	// Limit caps the number of results. Zero selects the configured default.
	Limit int `json:"limit"`

	// RequestID is propagated to logs and response metadata.
	RequestID string `json:"request_id,omitempty"`
}

// Response holds the ranked recommendations for a request.
type Response struct {
	// Reference is the resolved reference item.
	Reference Item `json:"reference"`

	// Items are the ranked recommendations, best first.
	Items []Recommendation `json:"items"`

	// Metadata describes how the response was produced.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains diagnostics for a response.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Strategy  string    `json:"strategy"`
	Limit     int       `json:"limit"`
	LatencyMS int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	LoadedAt  time.Time `json:"loaded_at"`
	Timestamp time.Time `json:"timestamp"`
}

// Scorer produces a ranked list of recommendations for a reference item.
// Implementations must be pure: they read data and never modify it.
type Scorer interface {
	// Name returns the scorer identifier used in logs and metrics.
	Name() string

	// Score returns at most limit recommendations for ref, best first.
	// ref has already been resolved against data.Catalog.
	Score(data *Dataset, ref Item, limit int) []Recommendation
}

// DataProvider loads the catalog and the rating log.
// This is typically implemented by a file, HTTP, or database source.
type DataProvider interface {
	// GetItems returns catalog items in their stable catalog order.
	GetItems(ctx context.Context) ([]Item, error)

	// GetRatings returns every rating record in log order.
	GetRatings(ctx context.Context) ([]Rating, error)
}

// LoadStatus reports the state of the one-time data load.
type LoadStatus struct {
	Loaded      bool      `json:"loaded"`
	Failed      bool      `json:"failed"`
	LastError   string    `json:"last_error,omitempty"`
	ItemCount   int       `json:"item_count"`
	RatingCount int       `json:"rating_count"`
	LoadedAt    time.Time `json:"loaded_at"`
	DurationMS  int64     `json:"duration_ms"`
}

// Metrics contains engine counters.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ErrorCount   int64 `json:"error_count"`
	NotFound     int64 `json:"not_found"`
}

// Ellipsis marks a truncated title.
const Ellipsis = "..."

// TruncateTitle returns the first n runes of title followed by Ellipsis,
// or title unchanged when it is not longer than n runes.
func TruncateTitle(title string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(title)
	if len(runes) <= n {
		return title
	}
	return string(runes[:n]) + Ellipsis
}
