// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package algorithms

import (
	"fmt"
	"sort"

	"github.com/tomtom215/itemrec/internal/recommend"
)

// DefaultTitlePrefixLength is the number of reference title runes quoted in
// co-rating reasons.
const DefaultTitlePrefixLength = 30

// CoRating implements "users who liked this also liked" scoring.
//
// The likers of the reference item are the distinct raters with at least one
// liked rating on it. Every liked rating a liker gave to another catalog item
// adds one to that item's count, and the affinity is the count divided by the
// number of likers.
type CoRating struct {
	likeThreshold     float64
	titlePrefixLength int
}

// CoRatingConfig contains configuration for co-rating scoring.
type CoRatingConfig struct {
	// LikeThreshold is the minimum score that counts as liked.
	// Default: recommend.LikedThreshold.
	LikeThreshold float64

	// TitlePrefixLength is how many runes of the reference title the reason quotes.
	// Default: DefaultTitlePrefixLength.
	TitlePrefixLength int
}

// NewCoRating creates a co-rating scorer.
func NewCoRating(cfg CoRatingConfig) *CoRating {
	if cfg.LikeThreshold <= 0 {
		cfg.LikeThreshold = recommend.LikedThreshold
	}
	if cfg.TitlePrefixLength <= 0 {
		cfg.TitlePrefixLength = DefaultTitlePrefixLength
	}

	return &CoRating{
		likeThreshold:     cfg.LikeThreshold,
		titlePrefixLength: cfg.TitlePrefixLength,
	}
}

// Name returns the scorer identifier.
func (c *CoRating) Name() string {
	return "collaborative"
}

type coRatingCandidate struct {
	item  recommend.Item
	count int
	score float64
}

// Score returns at most limit items co-liked with ref.
func (c *CoRating) Score(data *recommend.Dataset, ref recommend.Item, limit int) []recommend.Recommendation {
	if limit <= 0 || data == nil {
		return []recommend.Recommendation{}
	}

	likers := c.likers(data.Ratings, ref.ID)
	if len(likers) == 0 {
		return []recommend.Recommendation{}
	}

	var candidates []*coRatingCandidate
	index := make(map[string]int)

	for _, rater := range likers {
		for _, r := range data.Ratings.RatingsBy(rater) {
			if r.ItemID == ref.ID || !r.Liked(c.likeThreshold) {
				continue
			}
			if i, ok := index[r.ItemID]; ok {
				candidates[i].count++
				continue
			}
			item, ok := data.Catalog.FindItem(r.ItemID)
			if !ok {
				continue
			}
			index[r.ItemID] = len(candidates)
			candidates = append(candidates, &coRatingCandidate{item: item, count: 1})
		}
	}

	for _, cand := range candidates {
		cand.score = float64(cand.count) / float64(len(likers))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	prefix := recommend.TruncateTitle(ref.Title, c.titlePrefixLength)
	results := make([]recommend.Recommendation, len(candidates))
	for i, cand := range candidates {
		results[i] = recommend.Recommendation{
			Item:   cand.item,
			Score:  cand.score,
			Reason: fmt.Sprintf("%d users who liked %s also liked this item", cand.count, prefix),
		}
	}
	return results
}

// likers returns the distinct raters with a liked rating on itemID,
// in order of their first such rating.
func (c *CoRating) likers(log *recommend.RatingLog, itemID string) []string {
	seen := make(map[string]struct{})
	var raters []string
	for _, r := range log.RatingsFor(itemID) {
		if !r.Liked(c.likeThreshold) {
			continue
		}
		if _, dup := seen[r.RaterID]; dup {
			continue
		}
		seen[r.RaterID] = struct{}{}
		raters = append(raters, r.RaterID)
	}
	return raters
}
