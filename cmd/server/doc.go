// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package main is the entry point for the itemrec server.

itemrec serves "related item" recommendations for a product catalog. For a
reference item it ranks other items by title keyword overlap (content),
by how often people who liked the reference also liked them
(collaborative), or by a weighted fusion of both (hybrid).

# Application Architecture

	RootSupervisor ("itemrec")
	├── DataSupervisor ("data-layer")
	│   └── WarmupService (one-time load, optional Badger/DuckDB snapshot)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: koanf v2 (defaults, YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Data layer: JSON files, HTTP, DuckDB or Badger source
 4. Engine: content and co-rating scorers, hybrid fusion, response cache
 5. HTTP: chi router with CORS, rate limiting, metrics
 6. Supervisor tree: suture v4, stopped by SIGINT or SIGTERM

# Configuration

See package config for every key. Common environment variables:

	HTTP_PORT=8080
	DATA_SOURCE=json            # json, http, duckdb, badger
	DATA_ITEMS_PATH=data/products.json
	DATA_RATINGS_PATH=data/reviews.json
	RECOMMEND_DEFAULT_STRATEGY=hybrid
	LOG_LEVEL=info
*/
package main
