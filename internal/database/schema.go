// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package database

import (
	"context"
	"fmt"
)

// Tables carry no key constraints: ImportDataset deletes and re-inserts the
// same keys inside one transaction, which DuckDB's index checks reject.
// Duplicate item IDs are caught by recommend.NewCatalog on load.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		position BIGINT NOT NULL,
		item_id  VARCHAR NOT NULL,
		title    VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		position BIGINT NOT NULL,
		item_id  VARCHAR NOT NULL,
		rater_id VARCHAR NOT NULL,
		score    DOUBLE NOT NULL
	)`,
}

func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
