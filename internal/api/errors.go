// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeItemNotFound     = "ITEM_NOT_FOUND"
	CodeDataUnavailable  = "DATA_UNAVAILABLE"
	CodeTimeout          = "TIMEOUT"
	CodeRateLimited      = "RATE_LIMITED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
)

// errorStatus maps an engine or validation error to an HTTP status and payload.
func errorStatus(err error) (int, *APIError) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		return http.StatusBadRequest, &APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
	case errors.Is(err, recommend.ErrInvalidRequest):
		return http.StatusBadRequest, &APIError{Code: CodeValidation, Message: err.Error()}
	case errors.Is(err, recommend.ErrItemNotFound):
		return http.StatusNotFound, &APIError{Code: CodeItemNotFound, Message: "Item not found"}
	case errors.Is(err, recommend.ErrDataUnavailable):
		return http.StatusServiceUnavailable, &APIError{Code: CodeDataUnavailable, Message: "Recommendation data is unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, &APIError{Code: CodeTimeout, Message: "Request timed out"}
	default:
		return http.StatusInternalServerError, &APIError{Code: CodeInternal, Message: "Internal server error"}
	}
}

// respondEngineError writes the error response for err.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := errorStatus(err)
	respondError(w, r, status, apiErr, err)
}
