// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/itemrec/internal/recommend"
)

// Key layout. Zero padded positions keep iteration in original order.
const (
	itemKeyPrefix   = "item/"
	ratingKeyPrefix = "rating/"
	snapshotMetaKey = "meta/snapshot"
)

// ErrNoSnapshot is returned when the store has never been written.
var ErrNoSnapshot = errors.New("no dataset snapshot")

// SnapshotInfo describes the last successful Save.
type SnapshotInfo struct {
	Items   int       `json:"items"`
	Ratings int       `json:"ratings"`
	SavedAt time.Time `json:"saved_at"`
}

// BadgerStore persists a dataset snapshot in BadgerDB and serves it back as a
// recommend.DataProvider.
type BadgerStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

// OpenBadger opens (or creates) a database at path. An empty path opens an
// in-memory database.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return db, nil
}

// NewBadgerStore wraps db. The caller owns db and closes it.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBadgerStore(db *badger.DB, logger zerolog.Logger) *BadgerStore {
	return &BadgerStore{
		db:     db,
		logger: logger.With().Str("component", "dataset").Str("source", "badger").Logger(),
	}
}

// Save replaces the stored snapshot with items and ratings.
func (s *BadgerStore) Save(ctx context.Context, items []recommend.Item, ratings []recommend.Rating) error {
	start := time.Now()

	if err := s.db.DropPrefix([]byte(itemKeyPrefix), []byte(ratingKeyPrefix), []byte(snapshotMetaKey)); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i, rec := range FromItems(items) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := setJSON(wb, itemKey(i), rec); err != nil {
			return fmt.Errorf("write item %d: %w", i, err)
		}
	}
	for i, rec := range FromRatings(ratings) {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := setJSON(wb, ratingKey(i), rec); err != nil {
			return fmt.Errorf("write rating %d: %w", i, err)
		}
	}

	info := SnapshotInfo{Items: len(items), Ratings: len(ratings), SavedAt: time.Now().UTC()}
	if err := setJSON(wb, []byte(snapshotMetaKey), info); err != nil {
		return fmt.Errorf("write snapshot info: %w", err)
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}

	s.logger.Info().
		Int("items", info.Items).
		Int("ratings", info.Ratings).
		Dur("duration", time.Since(start)).
		Msg("Dataset snapshot saved")
	return nil
}

// Info returns metadata about the stored snapshot.
func (s *BadgerStore) Info() (SnapshotInfo, error) {
	var info SnapshotInfo
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotMetaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("get snapshot info: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &info)
		})
	})
	return info, err
}

// GetItems implements recommend.DataProvider.
func (s *BadgerStore) GetItems(ctx context.Context) ([]recommend.Item, error) {
	if _, err := s.Info(); err != nil {
		return nil, err
	}
	records, err := scanPrefix[ItemRecord](ctx, s.db, itemKeyPrefix)
	if err != nil {
		return nil, err
	}
	return ToItems(records, false)
}

// GetRatings implements recommend.DataProvider.
func (s *BadgerStore) GetRatings(ctx context.Context) ([]recommend.Rating, error) {
	if _, err := s.Info(); err != nil {
		return nil, err
	}
	records, err := scanPrefix[RatingRecord](ctx, s.db, ratingKeyPrefix)
	if err != nil {
		return nil, err
	}
	return ToRatings(records)
}

func scanPrefix[T any](ctx context.Context, db *badger.DB, prefix string) ([]T, error) {
	out := []T{}
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var rec T
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("%w: decode %s: %w", recommend.ErrInvalidData, it.Item().Key(), err)
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}
	return out, nil
}

func setJSON(wb *badger.WriteBatch, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return wb.Set(key, data)
}

func itemKey(i int) []byte {
	return []byte(fmt.Sprintf("%s%010d", itemKeyPrefix, i))
}

func ratingKey(i int) []byte {
	return []byte(fmt.Sprintf("%s%012d", ratingKeyPrefix, i))
}
