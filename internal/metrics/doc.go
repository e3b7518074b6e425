// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API server at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendation Metrics:
  - itemrec_recommend_requests_total: Requests by outcome (counter)
    Labels: strategy, outcome (success, not_found, invalid, unavailable, error)
  - itemrec_recommend_duration_seconds: Scoring latency (histogram)
    Labels: strategy
  - itemrec_recommend_results: Result list sizes (histogram)
    Labels: strategy

Data Load Metrics:
  - itemrec_data_load_duration_seconds: Load duration (histogram)
  - itemrec_data_load_total: Load attempts (counter)
    Labels: outcome
  - itemrec_catalog_items: Items in the loaded catalog (gauge)
  - itemrec_rating_records: Records in the loaded rating log (gauge)

Cache Metrics:
  - itemrec_cache_hits_total, itemrec_cache_misses_total (counters)

Database Metrics:
  - itemrec_duckdb_query_duration_seconds (histogram)
    Labels: operation, table
  - itemrec_duckdb_query_errors_total (counter)
    Labels: operation, table

HTTP Metrics:
  - itemrec_http_requests_total (counter)
    Labels: method, route, status
  - itemrec_http_request_duration_seconds (histogram)
    Labels: method, route
  - itemrec_http_active_requests (gauge)

Circuit Breaker Metrics:
  - itemrec_circuit_breaker_state (gauge)
    Labels: name. Values: 0=closed, 1=half-open, 2=open
  - itemrec_circuit_breaker_state_transitions_total (counter)
    Labels: name, from_state, to_state

# Thread Safety

All recording helpers are safe for concurrent use.
*/
package metrics
