// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package api exposes the recommendation engine over HTTP.

Endpoints:

	GET /api/v1/recommendations/{itemID}?strategy=hybrid&limit=5
	GET /api/v1/items/samples?limit=8
	GET /api/v1/items/{itemID}
	GET /api/v1/strategies
	GET /api/v1/stats
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

Every JSON response uses the APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 3}
	}

Errors set status to "error" and carry an APIError with one of the Code*
constants. Engine errors map to HTTP status codes as follows:

	recommend.ErrInvalidRequest, validation failures  400 VALIDATION_ERROR
	recommend.ErrItemNotFound                          404 ITEM_NOT_FOUND
	recommend.ErrDataUnavailable                       503 DATA_UNAVAILABLE
	context.DeadlineExceeded                           504 TIMEOUT
	anything else                                      500 INTERNAL_ERROR

The /api/v1 group is rate limited per client IP with go-chi/httprate and
gzip-compressed. Health probes are not rate limited.
*/
package api
