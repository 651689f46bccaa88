// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

/*
Package cache stores catalog keyword ids looked up for best-selling titles.

Keyword ids for a (title, release year) pair almost never change, and every
billboard request for a city repeats the same five lookups. Two backends
implement KeywordCache:

  - MemoryKeywordCache: a bounded LRU with TTL, lost on restart
  - BadgerKeywordCache: BadgerDB entries with native TTL, survives restarts

The badger backend needs periodic value-log garbage collection; RunGC is
driven by the supervisor's data layer.

# Usage

	kc := cache.NewMemoryKeywordCache(1000, 24*time.Hour)
	if ids, ok := kc.Get(ctx, cache.KeywordKey("Arrival", 2016)); ok {
	    return ids, nil
	}
*/
package cache
