// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package recommend

import (
	"sort"
	"strings"
)

// ReasonSeparator joins the content and collaborative reasons of an item
// recommended by both signals.
const ReasonSeparator = " | "

// fusedEntry accumulates the weighted score and reasons of one item.
type fusedEntry struct {
	item    Item
	score   float64
	reasons []string
}

// Fuse merges a content list and a collaborative list into one ranking.
//
// Content entries seed the accumulator in their list order with score
// w.Content*s. Collaborative entries add w.Collaborative*s to an existing
// entry or append a new one. The result is sorted by combined score
// descending; ties keep accumulator order. At most limit entries are
// returned.
func Fuse(content, collaborative []Recommendation, w FusionWeights, limit int) []Recommendation {
	if limit <= 0 {
		return []Recommendation{}
	}

	entries := make([]*fusedEntry, 0, len(content)+len(collaborative))
	index := make(map[string]int, len(content)+len(collaborative))

	for _, rec := range content {
		if i, ok := index[rec.Item.ID]; ok {
			entries[i].score += w.Content * rec.Score
			entries[i].reasons = append(entries[i].reasons, rec.Reason)
			continue
		}
		index[rec.Item.ID] = len(entries)
		entries = append(entries, &fusedEntry{
			item:    rec.Item,
			score:   w.Content * rec.Score,
			reasons: []string{rec.Reason},
		})
	}

	for _, rec := range collaborative {
		if i, ok := index[rec.Item.ID]; ok {
			entries[i].score += w.Collaborative * rec.Score
			entries[i].reasons = append(entries[i].reasons, rec.Reason)
			continue
		}
		index[rec.Item.ID] = len(entries)
		entries = append(entries, &fusedEntry{
			item:    rec.Item,
			score:   w.Collaborative * rec.Score,
			reasons: []string{rec.Reason},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	results := make([]Recommendation, len(entries))
	for i, e := range entries {
		results[i] = Recommendation{
			Item:   e.item,
			Score:  e.score,
			Reason: strings.Join(e.reasons, ReasonSeparator),
		}
	}
	return results
}
