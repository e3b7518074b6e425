// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/itemrec/internal/metrics"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// DefaultMaxBodyBytes caps a single dataset download.
const DefaultMaxBodyBytes = 512 << 20

// HTTPConfig configures HTTPProvider.
type HTTPConfig struct {
	ItemsURL    string
	RatingsURL  string
	CleanTitles bool

	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration

	// MaxAttempts is the number of tries per file. Zero means 3.
	MaxAttempts int

	// RetryInterval spaces attempts. Zero means 1s.
	RetryInterval time.Duration

	// MaxBodyBytes caps response size. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

func (c *HTTPConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = time.Second
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// statusError is returned for non-2xx responses.
type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.url, e.code)
}

// HTTPProvider downloads the dataset files. Requests go through a circuit
// breaker so a dead origin fails fast after repeated errors.
type HTTPProvider struct {
	cfg     HTTPConfig
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewHTTPProvider returns a provider for cfg. A nil client uses a client with cfg.Timeout.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPProvider(cfg HTTPConfig, client *http.Client, logger zerolog.Logger) *HTTPProvider {
	cfg.applyDefaults()
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	logger = logger.With().Str("component", "dataset").Str("source", "http").Logger()

	const cbName = "dataset-http"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("from", from.String()).Str("to", to.String()).Msg("Circuit breaker state change")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), int(to))
		},
	})

	return &HTTPProvider{
		cfg:     cfg,
		client:  client,
		cb:      cb,
		limiter: rate.NewLimiter(rate.Every(cfg.RetryInterval), 2),
		logger:  logger,
	}
}

// GetItems implements recommend.DataProvider.
func (p *HTTPProvider) GetItems(ctx context.Context) ([]recommend.Item, error) {
	body, err := p.fetch(ctx, p.cfg.ItemsURL)
	if err != nil {
		return nil, err
	}
	records, err := decodeRecords[ItemRecord](bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.ItemsURL, err)
	}
	return ToItems(records, p.cfg.CleanTitles)
}

// GetRatings implements recommend.DataProvider.
func (p *HTTPProvider) GetRatings(ctx context.Context) ([]recommend.Rating, error) {
	body, err := p.fetch(ctx, p.cfg.RatingsURL)
	if err != nil {
		return nil, err
	}
	records, err := decodeRecords[RatingRecord](bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.RatingsURL, err)
	}
	return ToRatings(records)
}

// State reports the circuit breaker state.
func (p *HTTPProvider) State() gobreaker.State {
	return p.cb.State()
}

func (p *HTTPProvider) fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w (last error: %w)", err, lastErr)
			}
			return nil, err
		}

		body, err := p.cb.Execute(func() ([]byte, error) {
			return p.get(ctx, url)
		})
		if err == nil {
			p.logger.Debug().Str("url", url).Int("bytes", len(body)).Int("attempt", attempt).Msg("Dataset downloaded")
			return body, nil
		}

		lastErr = err
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) || ctx.Err() != nil {
			break
		}
		var se *statusError
		if errors.As(err, &se) && se.code >= 400 && se.code < 500 {
			break
		}
		p.logger.Warn().Err(err).Str("url", url).Int("attempt", attempt).Msg("Dataset download failed")
	}
	return nil, fmt.Errorf("download %s: %w", url, lastErr)
}

func (p *HTTPProvider) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &statusError{url: url, code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.cfg.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > p.cfg.MaxBodyBytes {
		return nil, fmt.Errorf("%w: response larger than %d bytes", recommend.ErrInvalidData, p.cfg.MaxBodyBytes)
	}
	return body, nil
}
