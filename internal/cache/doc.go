// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

/*
Package cache provides a thread-safe, generic LRU cache with TTL support.

The recommendation engine uses it to memoize responses keyed by
(item, strategy, limit). Since the catalog and rating log never change after
the one-time load, a cached response stays correct until it expires.

# Usage Example

	c := cache.NewLRU[*recommend.Response](10000, 5*time.Minute)
	c.Add(key, resp)
	if cached, ok := c.Get(key); ok {
	    return cached
	}

# Expiration

Expired entries are removed lazily on Get. CleanupExpired sweeps the whole
list and can be run periodically to bound memory held by cold entries.

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
