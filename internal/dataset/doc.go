// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package dataset reads product catalogs and review logs into the recommend types.

Three recommend.DataProvider implementations are provided:

  - FileProvider: local JSON files, either a single array or one object per
    line, optionally gzip compressed (".gz" suffix)
  - HTTPProvider: the same formats fetched over HTTP behind a circuit breaker
  - BadgerProvider: a snapshot previously written with BadgerStore.Save

The DuckDB-backed provider lives in internal/database.

# Record Format

Records use the field names of the public Amazon review datasets:

	{"asin": "B000123", "title_clean": "usb c charging cable"}
	{"asin": "B000123", "reviewerID": "A2SUAM1J3GNN3B", "overall": 5.0}

When title_clean is absent and a raw "title" is present, the providers derive
the clean title with CleanTitle unless title cleaning is disabled.

Every record is validated before conversion. A record with a missing or
malformed identifier fails the whole load with recommend.ErrInvalidData.
*/
package dataset
