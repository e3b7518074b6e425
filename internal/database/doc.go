// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package database stores the catalog and review log in DuckDB.

Two tables hold the dataset. Each row keeps its position in the source file so
reads return records in their original order, which the scorers depend on for
tie-breaking:

	items   (position, item_id, title)
	ratings (position, item_id, rater_id, score)

DB implements recommend.DataProvider, so a DuckDB file can serve as the
primary data source (data.source: duckdb). ImportDataset replaces both tables
in a single transaction and is used to mirror a JSON or HTTP load into DuckDB
for ad-hoc SQL analysis.

Every query is timed through metrics.RecordDBQuery.
*/
package database
