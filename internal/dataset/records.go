// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/validation"
)

// ItemRecord is one catalog entry as stored on disk.
type ItemRecord struct {
	ASIN       string `json:"asin" validate:"required,itemid"`
	TitleClean string `json:"title_clean"`
	Title      string `json:"title,omitempty"`
}

// RatingRecord is one review as stored on disk.
type RatingRecord struct {
	ASIN       string  `json:"asin" validate:"required,itemid"`
	ReviewerID string  `json:"reviewerID" validate:"required"`
	Overall    float64 `json:"overall"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)

// CleanTitle lowercases s and removes everything except ASCII letters, digits
// and whitespace.
func CleanTitle(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

// ToItems validates records and converts them in order.
func ToItems(records []ItemRecord, cleanTitles bool) ([]recommend.Item, error) {
	items := make([]recommend.Item, len(records))
	for i := range records {
		r := &records[i]
		if verr := validation.ValidateStruct(r); verr != nil {
			return nil, fmt.Errorf("%w: item record %d: %s", recommend.ErrInvalidData, i, verr.Error())
		}

		title := r.TitleClean
		if title == "" && r.Title != "" {
			title = r.Title
			if cleanTitles {
				title = CleanTitle(r.Title)
			}
		}
		items[i] = recommend.Item{ID: r.ASIN, Title: title}
	}
	return items, nil
}

// ToRatings validates records and converts them in order.
func ToRatings(records []RatingRecord) ([]recommend.Rating, error) {
	ratings := make([]recommend.Rating, len(records))
	for i := range records {
		r := &records[i]
		if verr := validation.ValidateStruct(r); verr != nil {
			return nil, fmt.Errorf("%w: rating record %d: %s", recommend.ErrInvalidData, i, verr.Error())
		}
		ratings[i] = recommend.Rating{ItemID: r.ASIN, RaterID: r.ReviewerID, Score: r.Overall}
	}
	return ratings, nil
}

// FromItems is the inverse of ToItems, used when writing snapshots.
func FromItems(items []recommend.Item) []ItemRecord {
	records := make([]ItemRecord, len(items))
	for i, it := range items {
		records[i] = ItemRecord{ASIN: it.ID, TitleClean: it.Title}
	}
	return records
}

// FromRatings is the inverse of ToRatings.
func FromRatings(ratings []recommend.Rating) []RatingRecord {
	records := make([]RatingRecord, len(ratings))
	for i, r := range ratings {
		records[i] = RatingRecord{ASIN: r.ItemID, ReviewerID: r.RaterID, Overall: r.Score}
	}
	return records
}

// decodeRecords reads either a JSON array or a stream of JSON objects.
func decodeRecords[T any](r io.Reader) ([]T, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if errors.Is(err, io.EOF) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		var out []T
		if err := dec.Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: decode array: %w", recommend.ErrInvalidData, err)
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}

	out := []T{}
	for line := 1; ; line++ {
		var rec T
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: decode record %d: %w", recommend.ErrInvalidData, line, err)
		}
		out = append(out, rec)
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		if !bytes.ContainsAny(b, " \t\r\n") {
			return b[0], nil
		}
		if _, err := br.Discard(1); err != nil {
			return 0, err
		}
	}
}
