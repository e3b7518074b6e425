// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package middleware provides chi-compatible HTTP middleware for the API.

Key Components:

  - RequestID: preserves or generates X-Request-ID and stores it where both
    chi's GetReqID and logging.Ctx can find it
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip responses via klauspost/compress

Middleware Stack:

The API router installs them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(...))
	r.Use(middleware.PrometheusMetrics)

	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(httprate.LimitByIP(...))
	    r.Use(middleware.Compression)
	    ...
	})

All middleware is safe for concurrent use.
*/
package middleware
