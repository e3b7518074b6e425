// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/validation"
)

// RecommendationsRequest holds the parameters of GET /recommendations/{itemID}.
type RecommendationsRequest struct {
	ItemID   string `json:"item_id" validate:"required,itemid"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=hybrid content collaborative"`
	Limit    int    `json:"limit" validate:"gte=0"`
}

// ItemRequest holds the parameters of GET /items/{itemID}.
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required,itemid"`
}

// SamplesRequest holds the parameters of GET /items/samples.
type SamplesRequest struct {
	Limit int `json:"limit" validate:"gte=0"`
}

// validateRequest runs struct validation and the configured limit cap.
func validateRequest(v any, limit, maxLimit int) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr
	}
	if limit > maxLimit {
		return fmt.Errorf("%w: limit must be at most %d", recommend.ErrInvalidRequest, maxLimit)
	}
	return nil
}

// intQueryParam parses an integer query parameter. A missing parameter
// yields defaultValue; a malformed one is an error.
func intQueryParam(r *http.Request, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultValue, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", recommend.ErrInvalidRequest, key)
	}
	return v, nil
}

// strategyQueryParam normalizes the strategy parameter for validation.
func strategyQueryParam(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.URL.Query().Get("strategy")))
}
