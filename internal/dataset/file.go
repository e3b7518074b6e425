// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/tomtom215/itemrec/internal/recommend"
)

// FileConfig locates the catalog and review files.
type FileConfig struct {
	ItemsPath   string
	RatingsPath string
	CleanTitles bool
}

// FileProvider reads the dataset from local files on every call.
type FileProvider struct {
	cfg    FileConfig
	logger zerolog.Logger
}

// NewFileProvider returns a provider for cfg. Paths are checked on first read.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewFileProvider(cfg FileConfig, logger zerolog.Logger) *FileProvider {
	return &FileProvider{
		cfg:    cfg,
		logger: logger.With().Str("component", "dataset").Str("source", "file").Logger(),
	}
}

// GetItems implements recommend.DataProvider.
func (p *FileProvider) GetItems(ctx context.Context) ([]recommend.Item, error) {
	records, err := readFile[ItemRecord](ctx, p.cfg.ItemsPath)
	if err != nil {
		return nil, err
	}
	items, err := ToItems(records, p.cfg.CleanTitles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.ItemsPath, err)
	}
	p.logger.Debug().Str("path", p.cfg.ItemsPath).Int("items", len(items)).Msg("Catalog file read")
	return items, nil
}

// GetRatings implements recommend.DataProvider.
func (p *FileProvider) GetRatings(ctx context.Context) ([]recommend.Rating, error) {
	records, err := readFile[RatingRecord](ctx, p.cfg.RatingsPath)
	if err != nil {
		return nil, err
	}
	ratings, err := ToRatings(records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.RatingsPath, err)
	}
	p.logger.Debug().Str("path", p.cfg.RatingsPath).Int("ratings", len(ratings)).Msg("Review file read")
	return ratings, nil
}

func readFile[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := decodeRecords[T](rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gerr
}

// openFile opens path, transparently decompressing ".gz" files.
func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open gzip %s: %w", path, err)
	}
	return gzipFile{Reader: zr, f: f}, nil
}
