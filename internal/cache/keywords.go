// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/billboard/internal/metrics"
)

// keywordCacheName labels the keyword cache in Prometheus metrics.
const keywordCacheName = "keywords"

// KeywordCache stores catalog keyword ids per title lookup. Implementations
// are safe for concurrent use. A failed Set is logged by the implementation
// and otherwise ignored.
type KeywordCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string)
}

// KeywordKey builds the cache key for a title released in year. Titles are
// matched case-insensitively.
func KeywordKey(title string, year int) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strconv.Itoa(year)
}

// MemoryKeywordCache is an in-process KeywordCache.
type MemoryKeywordCache struct {
	lru *LRUCache[[]string]
}

// NewMemoryKeywordCache creates a KeywordCache holding up to capacity lookups
// for ttl each.
func NewMemoryKeywordCache(capacity int, ttl time.Duration) *MemoryKeywordCache {
	lru := NewLRUCache[[]string](capacity, ttl)
	lru.onEvict = func(string) {
		metrics.CacheEvictions.WithLabelValues(keywordCacheName).Inc()
	}
	return &MemoryKeywordCache{lru: lru}
}

func (m *MemoryKeywordCache) Get(_ context.Context, key string) ([]string, bool) {
	ids, ok := m.lru.Get(key)
	metrics.RecordCacheLookup(keywordCacheName, ok)
	if !ok {
		return nil, false
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, true
}

func (m *MemoryKeywordCache) Set(_ context.Context, key string, ids []string) {
	m.lru.Add(key, append([]string{}, ids...))
}

// Len returns the number of cached lookups.
func (m *MemoryKeywordCache) Len() int {
	return m.lru.Len()
}

// Maintain drops expired entries.
func (m *MemoryKeywordCache) Maintain() error {
	m.lru.CleanupExpired()
	return nil
}

// Maintainer is a cache with periodic housekeeping, run by the supervisor's
// cache maintenance service.
type Maintainer interface {
	Maintain() error
}

// Compile-time interface assertions
var (
	_ KeywordCache = (*MemoryKeywordCache)(nil)
	_ KeywordCache = (*BadgerKeywordCache)(nil)
	_ Maintainer   = (*MemoryKeywordCache)(nil)
	_ Maintainer   = (*BadgerKeywordCache)(nil)
)
