// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/itemrec/internal/metrics"
	"github.com/tomtom215/itemrec/internal/recommend"
)

// ImportDataset replaces the items and ratings tables with the given records.
// The replacement is atomic: readers see either the old or the new dataset.
func (db *DB) ImportDataset(ctx context.Context, items []recommend.Item, ratings []recommend.Rating) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("import", "items,ratings", time.Since(start), err)
	}()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM ratings`); err != nil {
		return fmt.Errorf("clear ratings: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	if err = insertItems(ctx, tx, items); err != nil {
		return err
	}
	if err = insertRatings(ctx, tx, ratings); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	db.logger.Info().
		Int("items", len(items)).
		Int("ratings", len(ratings)).
		Dur("duration", time.Since(start)).
		Msg("Dataset imported into DuckDB")
	return nil
}

// Save satisfies the snapshot sink interface used by the supervisor.
func (db *DB) Save(ctx context.Context, items []recommend.Item, ratings []recommend.Rating) error {
	return db.ImportDataset(ctx, items, ratings)
}

func insertItems(ctx context.Context, tx *sql.Tx, items []recommend.Item) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (position, item_id, title) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare item insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx, i, it.ID, it.Title); err != nil {
			return fmt.Errorf("insert item %q: %w", it.ID, err)
		}
	}
	return nil
}

func insertRatings(ctx context.Context, tx *sql.Tx, ratings []recommend.Rating) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ratings (position, item_id, rater_id, score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rating insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range ratings {
		if _, err := stmt.ExecContext(ctx, i, r.ItemID, r.RaterID, r.Score); err != nil {
			return fmt.Errorf("insert rating %d: %w", i, err)
		}
	}
	return nil
}

// GetItems implements recommend.DataProvider.
func (db *DB) GetItems(ctx context.Context) (items []recommend.Item, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("select", "items", time.Since(start), err)
	}()

	rows, err := db.conn.QueryContext(ctx, `SELECT item_id, title FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items = []recommend.Item{}
	for rows.Next() {
		var it recommend.Item
		if err = rows.Scan(&it.ID, &it.Title); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetRatings implements recommend.DataProvider.
func (db *DB) GetRatings(ctx context.Context) (ratings []recommend.Rating, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("select", "ratings", time.Since(start), err)
	}()

	rows, err := db.conn.QueryContext(ctx, `SELECT item_id, rater_id, score FROM ratings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()

	ratings = []recommend.Rating{}
	for rows.Next() {
		var r recommend.Rating
		if err = rows.Scan(&r.ItemID, &r.RaterID, &r.Score); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// Stats summarises the stored dataset.
type Stats struct {
	Items        int64 `json:"items"`
	Ratings      int64 `json:"ratings"`
	Raters       int64 `json:"raters"`
	LikedRatings int64 `json:"liked_ratings"`
	// DanglingRatings reference an item that is not in the catalog.
	DanglingRatings int64 `json:"dangling_ratings"`
}

// Stats computes dataset counts. likeThreshold is the minimum liked score.
func (db *DB) Stats(ctx context.Context, likeThreshold float64) (stats Stats, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("stats", "items,ratings", time.Since(start), err)
	}()

	const q = `
		SELECT
			(SELECT COUNT(*) FROM items),
			COUNT(*),
			COUNT(DISTINCT rater_id),
			COUNT(*) FILTER (WHERE score >= ?),
			COUNT(*) FILTER (WHERE item_id NOT IN (SELECT item_id FROM items))
		FROM ratings`

	err = db.conn.QueryRowContext(ctx, q, likeThreshold).Scan(
		&stats.Items, &stats.Ratings, &stats.Raters, &stats.LikedRatings, &stats.DanglingRatings)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}
