// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package algorithms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/itemrec/internal/recommend"
)

// ContentBased ranks catalog items by lexical overlap with the reference title.
//
// It needs no rating data, which makes it useful for items nobody has rated
// yet, and its reasons name the matching keywords.
type ContentBased struct{}

// NewContentBased creates a content-based scorer.
func NewContentBased() *ContentBased {
	return &ContentBased{}
}

// Name returns the scorer identifier.
func (c *ContentBased) Name() string {
	return "content"
}

type contentCandidate struct {
	item   recommend.Item
	score  float64
	shared []string
}

// Score returns at most limit items whose titles share tokens with ref.
func (c *ContentBased) Score(data *recommend.Dataset, ref recommend.Item, limit int) []recommend.Recommendation {
	if limit <= 0 || data == nil {
		return []recommend.Recommendation{}
	}

	refTokens := tokenize(ref.Title)
	if len(refTokens) == 0 {
		return []recommend.Recommendation{}
	}

	var candidates []contentCandidate
	for _, item := range data.Catalog.AllItems() {
		if item.ID == ref.ID {
			continue
		}

		itemTokens := tokenize(item.Title)
		if len(itemTokens) == 0 {
			continue
		}

		shared := sharedTokens(refTokens, tokenSet(itemTokens))
		if len(shared) == 0 {
			continue
		}

		denom := max(len(refTokens), len(itemTokens))
		candidates = append(candidates, contentCandidate{
			item:   item,
			score:  float64(len(shared)) / float64(denom),
			shared: shared,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	results := make([]recommend.Recommendation, len(candidates))
	for i, cand := range candidates {
		results[i] = recommend.Recommendation{
			Item:   cand.item,
			Score:  cand.score,
			Reason: contentReason(cand.shared),
		}
	}
	return results
}

// contentReason formats the explanation for a content match.
func contentReason(shared []string) string {
	return fmt.Sprintf("Has %d shared keywords: \"%s\"", len(shared), strings.Join(shared, ", "))
}
