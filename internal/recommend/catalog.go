// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"fmt"
)

// Catalog is an immutable, ordered collection of items with unique IDs.
type Catalog struct {
	items []Item
	index map[string]int
}

// NewCatalog builds a Catalog from items in their stable catalog order.
// Items with an empty ID or a repeated ID are rejected with ErrInvalidData.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, item := range c.items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: item at position %d has empty id", ErrInvalidData, i)
		}
		if prev, dup := c.index[item.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q at positions %d and %d",
				ErrInvalidData, item.ID, prev, i)
		}
		c.index[item.ID] = i
	}

	return c, nil
}

// FindItem returns the item with the given ID.
func (c *Catalog) FindItem(id string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// AllItems returns every item in catalog order.
// The returned slice must not be modified.
func (c *Catalog) AllItems() []Item {
	if c == nil {
		return nil
	}
	return c.items
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// RatingLog is an immutable, ordered sequence of ratings indexed by item
// and by rater. Duplicate (rater, item) pairs are kept as separate records.
type RatingLog struct {
	ratings []Rating
	byItem  map[string][]int
	byRater map[string][]int
}

// NewRatingLog builds a RatingLog from ratings in log order.
// Ratings without an item or rater ID are rejected with ErrInvalidData.
// Ratings referencing items absent from the catalog are accepted.
func NewRatingLog(ratings []Rating) (*RatingLog, error) {
	l := &RatingLog{
		ratings: make([]Rating, len(ratings)),
		byItem:  make(map[string][]int),
		byRater: make(map[string][]int),
	}
	copy(l.ratings, ratings)

	for i, r := range l.ratings {
		if r.ItemID == "" || r.RaterID == "" {
			return nil, fmt.Errorf("%w: rating at position %d is missing item or rater id", ErrInvalidData, i)
		}
		l.byItem[r.ItemID] = append(l.byItem[r.ItemID], i)
		l.byRater[r.RaterID] = append(l.byRater[r.RaterID], i)
	}

	return l, nil
}

// RatingsFor returns every rating of the given item in log order.
func (l *RatingLog) RatingsFor(itemID string) []Rating {
	if l == nil {
		return nil
	}
	return l.collect(l.byItem[itemID])
}

// RatingsBy returns every rating made by the given rater in log order.
func (l *RatingLog) RatingsBy(raterID string) []Rating {
	if l == nil {
		return nil
	}
	return l.collect(l.byRater[raterID])
}

// All returns a copy of the log in its original order.
func (l *RatingLog) All() []Rating {
	if l == nil {
		return nil
	}
	out := make([]Rating, len(l.ratings))
	copy(out, l.ratings)
	return out
}

// Len returns the number of rating records.
func (l *RatingLog) Len() int {
	if l == nil {
		return 0
	}
	return len(l.ratings)
}

func (l *RatingLog) collect(positions []int) []Rating {
	if len(positions) == 0 {
		return nil
	}
	out := make([]Rating, len(positions))
	for i, pos := range positions {
		out[i] = l.ratings[pos]
	}
	return out
}

// Dataset bundles the catalog and rating log a scorer reads from.
type Dataset struct {
	Catalog *Catalog
	Ratings *RatingLog
}

// NewDataset validates items and ratings and builds a Dataset.
func NewDataset(items []Item, ratings []Rating) (*Dataset, error) {
	catalog, err := NewCatalog(items)
	if err != nil {
		return nil, err
	}
	log, err := NewRatingLog(ratings)
	if err != nil {
		return nil, err
	}
	return &Dataset{Catalog: catalog, Ratings: log}, nil
}
