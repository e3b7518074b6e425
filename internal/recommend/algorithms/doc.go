// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

// Package algorithms implements the scorers behind the recommendation engine.
//
// Each scorer implements recommend.Scorer. Scorers hold no per-request state
// and never modify the Dataset they read, so a single instance can serve any
// number of concurrent requests.
//
// # Scorers
//
//   - ContentBased: overlap of lowercase whitespace tokens between titles
//   - CoRating: "users who liked the reference also liked this item"
//
// # Content Similarity
//
//	sim(ref, c) = |distinct tokens shared by ref and c| / max(|tokens(ref)|, |tokens(c)|)
//
// Token counts in the denominator include repeats. Candidates with zero
// similarity are dropped.
//
// # Co-Rating Affinity
//
//	affinity(c) = liked ratings on c by likers of ref / |likers of ref|
//
// Duplicate ratings are counted once per record, so affinity can exceed 1.
// Ratings of items missing from the catalog are skipped.
//
// # Ordering
//
// Both scorers sort by score descending with a stable sort, so ties keep the
// order in which candidates were first seen: catalog order for ContentBased,
// first discovery while scanning likers' histories for CoRating.
//
// # Usage Example
//
//	engine, err := recommend.NewEngine(cfg, recommend.Dependencies{
//	    Provider:      provider,
//	    Content:       algorithms.NewContentBased(),
//	    Collaborative: algorithms.NewCoRating(algorithms.CoRatingConfig{}),
//	}, logger)
package algorithms
