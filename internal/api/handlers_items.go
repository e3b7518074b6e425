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

	"github.com/tomtom215/itemrec/internal/recommend"
)

// SampleItem is a catalog item with a display-length name.
type SampleItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item handles GET /api/v1/items/{itemID}.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := ItemRequest{ItemID: chi.URLParam(r, "itemID")}
	if err := validateRequest(&req, 0, h.cfg.MaxLimit); err != nil {
		respondEngineError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	item, err := h.engine.Item(ctx, req.ItemID)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, item, start)
}

// Samples handles GET /api/v1/items/samples. It returns the first limit
// catalog items with names shortened for display.
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, err := intQueryParam(r, "limit", h.cfg.SampleSize)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	req := SamplesRequest{Limit: limit}
	if err := validateRequest(&req, req.Limit, h.cfg.MaxLimit); err != nil {
		respondEngineError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	items, err := h.engine.Samples(ctx, req.Limit)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	out := make([]SampleItem, len(items))
	for i, item := range items {
		out[i] = SampleItem{
			ID:   item.ID,
			Name: recommend.TruncateTitle(item.Title, h.cfg.SampleTitleLength),
		}
	}

	respondSuccess(w, r, out, start)
}
