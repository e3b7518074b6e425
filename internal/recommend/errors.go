// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import "errors"

var (
	// ErrItemNotFound is returned when the reference item is not in the catalog.
	ErrItemNotFound = errors.New("reference item not found")

	// ErrDataUnavailable is returned when the catalog or rating log could not be loaded.
	ErrDataUnavailable = errors.New("recommendation data unavailable")

	// ErrInvalidRequest is returned for malformed requests (empty item ID,
	// negative limit, unknown strategy).
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrInvalidData is returned when loaded records violate catalog invariants.
	ErrInvalidData = errors.New("invalid recommendation data")
)
