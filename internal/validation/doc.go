// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

// Package validation wraps go-playground/validator with a shared instance and
// error messages shaped for the VALIDATION_ERROR API response.
//
// It validates HTTP query parameters in the api package and raw records at the
// dataset boundary. The custom "itemid" tag accepts printable identifiers
// without whitespace, which covers ASINs and the synthetic IDs used in tests.
//
//	type query struct {
//	    ItemID string `validate:"required,itemid"`
//	    Limit  int    `validate:"min=0,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
