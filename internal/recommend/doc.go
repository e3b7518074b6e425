// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

// Package recommend implements the related-item recommendation engine.
//
// # Architecture
//
// Given one reference item, the engine ranks the rest of the catalog using
// one of three strategies:
//
//   - Content: lexical overlap between item titles
//   - Collaborative: co-rating affinity ("users who liked X also liked Y")
//   - Hybrid: weighted fusion of both lists (0.6 content, 0.4 collaborative)
//
// The scorers live in the algorithms subpackage and implement the Scorer
// interface. The Engine owns dispatch, the hybrid fusion, the one-time data
// load and an optional response cache.
//
// # Data Flow
//
//	DataProvider -> Dataset{Catalog, RatingLog} -> Scorer(s) -> Fuse -> Engine -> caller
//
// Catalog and RatingLog are immutable once built. Scorers never mutate them,
// so a single Dataset can be shared by any number of engines and goroutines
// without locking.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Dependencies{
//	    Provider:      provider,
//	    Content:       algorithms.NewContentBased(),
//	    Collaborative: algorithms.NewCoRating(algorithms.CoRatingConfig{}),
//	}, logger)
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    ItemID:   "B000123",
//	    Strategy: recommend.StrategyHybrid,
//	    Limit:    5,
//	})
//
// # Loading
//
// Data is loaded lazily on the first call that needs it and at most once per
// Engine. Concurrent callers share the same load. A failed load is cached and
// reported to every subsequent caller as ErrDataUnavailable.
//
// # Errors
//
// ErrItemNotFound and ErrDataUnavailable are terminal for a call and are
// distinguishable with errors.Is. Ratings that reference items missing from
// the catalog are skipped silently.
package recommend
