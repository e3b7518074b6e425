// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"errors"
	"testing"
)

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		wantErr bool
	}{
		{name: "empty catalog", items: nil},
		{name: "valid items", items: []Item{{ID: "a", Title: "A"}, {ID: "b"}}},
		{name: "empty id", items: []Item{{ID: "a"}, {ID: "", Title: "nameless"}}, wantErr: true},
		{name: "duplicate id", items: []Item{{ID: "a"}, {ID: "b"}, {ID: "a"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.items)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidData) {
					t.Errorf("error = %v, want ErrInvalidData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Len() != len(tt.items) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.items))
			}
		})
	}
}

func TestCatalog_FindItemAndOrder(t *testing.T) {
	input := []Item{
		{ID: "z", Title: "last letter"},
		{ID: "a", Title: "first letter"},
		{ID: "m", Title: "middle letter"},
	}
	c, err := NewCatalog(input)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	// Mutating the input must not affect the catalog.
	input[0].Title = "changed"

	item, ok := c.FindItem("z")
	if !ok || item.Title != "last letter" {
		t.Errorf("FindItem(z) = %+v, %v", item, ok)
	}
	if _, ok := c.FindItem("missing"); ok {
		t.Error("FindItem(missing) should fail")
	}

	all := c.AllItems()
	for i, want := range []string{"z", "a", "m"} {
		if all[i].ID != want {
			t.Errorf("AllItems()[%d] = %q, want %q", i, all[i].ID, want)
		}
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.AllItems() != nil {
		t.Error("nil catalog should be empty")
	}
	if _, ok := c.FindItem("a"); ok {
		t.Error("nil catalog should not find items")
	}

	var l *RatingLog
	if l.Len() != 0 || l.RatingsFor("a") != nil || l.RatingsBy("u") != nil {
		t.Error("nil rating log should be empty")
	}
}

func TestNewRatingLog(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		wantErr bool
	}{
		{name: "empty log", ratings: nil},
		{name: "dangling item accepted", ratings: []Rating{{ItemID: "ghost", RaterID: "u1", Score: 5}}},
		{name: "missing item id", ratings: []Rating{{RaterID: "u1", Score: 5}}, wantErr: true},
		{name: "missing rater id", ratings: []Rating{{ItemID: "a", Score: 5}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewRatingLog(tt.ratings)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidData) {
					t.Errorf("error = %v, want ErrInvalidData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.Len() != len(tt.ratings) {
				t.Errorf("Len() = %d, want %d", l.Len(), len(tt.ratings))
			}
		})
	}
}

func TestRatingLog_Indexes(t *testing.T) {
	l, err := NewRatingLog([]Rating{
		{ItemID: "a", RaterID: "u1", Score: 5},
		{ItemID: "b", RaterID: "u2", Score: 3},
		{ItemID: "a", RaterID: "u2", Score: 4},
		{ItemID: "a", RaterID: "u1", Score: 5},
		{ItemID: "c", RaterID: "u1", Score: 1},
	})
	if err != nil {
		t.Fatalf("NewRatingLog() error = %v", err)
	}

	forA := l.RatingsFor("a")
	wantRaters := []string{"u1", "u2", "u1"}
	if len(forA) != len(wantRaters) {
		t.Fatalf("RatingsFor(a) len = %d, want %d", len(forA), len(wantRaters))
	}
	for i, r := range forA {
		if r.RaterID != wantRaters[i] {
			t.Errorf("RatingsFor(a)[%d].RaterID = %q, want %q", i, r.RaterID, wantRaters[i])
		}
	}

	byU1 := l.RatingsBy("u1")
	wantItems := []string{"a", "a", "c"}
	if len(byU1) != len(wantItems) {
		t.Fatalf("RatingsBy(u1) len = %d, want %d", len(byU1), len(wantItems))
	}
	for i, r := range byU1 {
		if r.ItemID != wantItems[i] {
			t.Errorf("RatingsBy(u1)[%d].ItemID = %q, want %q", i, r.ItemID, wantItems[i])
		}
	}

	all := l.All()
	if len(all) != 5 || all[4].ItemID != "c" {
		t.Errorf("All() = %+v", all)
	}
	all[0].Score = 1
	if l.RatingsFor("a")[0].Score != 5 {
		t.Error("All() returned shared storage")
	}

	if got := l.RatingsFor("none"); got != nil {
		t.Errorf("RatingsFor(none) = %+v, want nil", got)
	}
}

func TestRating_Liked(t *testing.T) {
	tests := []struct {
		score     float64
		threshold float64
		want      bool
	}{
		{5, LikedThreshold, true},
		{4, LikedThreshold, true},
		{3.99, LikedThreshold, false},
		{1, LikedThreshold, false},
		{3, 3, true},
		{4.5, 5, false},
	}
	for _, tt := range tests {
		if got := (Rating{Score: tt.score}).Liked(tt.threshold); got != tt.want {
			t.Errorf("Liked(%v) at %v = %v, want %v", tt.score, tt.threshold, got, tt.want)
		}
	}
}

func TestNewDataset(t *testing.T) {
	if _, err := NewDataset([]Item{{ID: "a"}, {ID: "a"}}, nil); !errors.Is(err, ErrInvalidData) {
		t.Errorf("duplicate items: error = %v, want ErrInvalidData", err)
	}
	if _, err := NewDataset([]Item{{ID: "a"}}, []Rating{{ItemID: "a"}}); !errors.Is(err, ErrInvalidData) {
		t.Errorf("bad rating: error = %v, want ErrInvalidData", err)
	}

	data, err := NewDataset([]Item{{ID: "a"}}, []Rating{{ItemID: "a", RaterID: "u", Score: 4}})
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	if data.Catalog.Len() != 1 || data.Ratings.Len() != 1 {
		t.Errorf("dataset sizes = %d/%d, want 1/1", data.Catalog.Len(), data.Ratings.Len())
	}
}
