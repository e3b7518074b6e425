// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/itemrec/internal/database"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// HealthLive handles liveness probes. It never touches the data layer.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data: map[string]any{
			"alive":      true,
			"version":    h.cfg.Version,
			"go_version": runtime.Version(),
			"uptime":     time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probes. It returns 503 until the catalog
// and rating log have been loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	ready := h.engine.Ready()

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &APIResponse{
		Status: status,
		Data: map[string]any{
			"ready_to_serve": ready,
			"data":           h.engine.Status(),
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: Metadata{Timestamp: time.Now()},
	})
}

// StatsResponse combines engine counters with load state and, when an
// analytical store is configured, dataset counts.
type StatsResponse struct {
	Engine  recommend.Metrics    `json:"engine"`
	Load    recommend.LoadStatus `json:"load"`
	Dataset *database.Stats      `json:"dataset,omitempty"`
}

// Stats handles GET /api/v1/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp := StatsResponse{
		Engine: h.engine.GetMetrics(),
		Load:   h.engine.Status(),
	}

	if h.stats != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()

		stats, err := h.stats.Stats(ctx, h.cfg.LikeThreshold)
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		resp.Dataset = &stats
	}

	respondSuccess(w, r, resp, start)
}
