// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/itemrec/internal/logging"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// Recommendations handles GET /api/v1/recommendations/{itemID}.
//
// Query parameters:
//   - strategy: hybrid, content or collaborative (default: configured strategy)
//   - limit: number of results, 0 selects the configured default
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", 0)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	req := RecommendationsRequest{
		ItemID:   chi.URLParam(r, "itemID"),
		Strategy: strategyQueryParam(r),
		Limit:    limit,
	}
	if err := validateRequest(&req, req.Limit, h.cfg.MaxLimit); err != nil {
		respondEngineError(w, r, err)
		return
	}

	strategy := h.cfg.DefaultStrategy
	if req.Strategy != "" {
		if strategy, err = recommend.ParseStrategy(req.Strategy); err != nil {
			respondEngineError(w, r, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		ItemID:    req.ItemID,
		Strategy:  strategy,
		Limit:     req.Limit,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data:   resp,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			RequestID:   resp.Metadata.RequestID,
			QueryTimeMS: resp.Metadata.LatencyMS,
			Cached:      resp.Metadata.CacheHit,
		},
	})
}

// StrategyInfo describes one supported strategy.
type StrategyInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Default     bool   `json:"default"`
}

// Strategies handles GET /api/v1/strategies.
func (h *Handler) Strategies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defaultStrategy := h.cfg.DefaultStrategy

	all := recommend.AllStrategies()
	out := make([]StrategyInfo, 0, len(all))
	for _, s := range all {
		out = append(out, StrategyInfo{
			Name:        s.String(),
			DisplayName: s.DisplayName(),
			Default:     s == defaultStrategy,
		})
	}

	respondSuccess(w, r, out, start)
}
