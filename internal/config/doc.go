// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package config loads itemrec configuration with Koanf v2.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/itemrec/config.yaml
 3. Environment variables listed in envMappings

Only mapped environment variables are read, so unrelated variables in the
process environment never leak into configuration.

# Sections

	server     HTTP listener and timeouts
	logging    zerolog level and format
	data       where the catalog and reviews come from (json, http, duckdb, badger)
	database   DuckDB file used by the duckdb source and by import_to_duckdb
	recommend  default strategy, fusion weights, caching
	security   CORS and per-IP rate limiting

# Example

	data:
	  source: json
	  items_path: /data/products.json
	  ratings_path: /data/reviews.json.gz
	recommend:
	  default_limit: 5
	  content_weight: 0.6
	  collaborative_weight: 0.4

Equivalent environment:

	DATA_SOURCE=json
	DATA_ITEMS_PATH=/data/products.json
	RECOMMEND_CONTENT_WEIGHT=0.6
*/
package config
