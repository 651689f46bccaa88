// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
)

const keywordKeyPrefix = "keywords:"

// gcDiscardRatio is the fraction of a value-log file that must be garbage
// before RunGC rewrites it.
const gcDiscardRatio = 0.5

// BadgerKeywordCache persists keyword lookups in BadgerDB. Entries carry a
// native badger TTL, so expired lookups disappear without a sweep.
type BadgerKeywordCache struct {
	db     *badger.DB
	ttl    time.Duration
	logger zerolog.Logger
}

// OpenBadger opens a BadgerDB at path. An empty path opens an in-memory
// database.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return db, nil
}

// NewBadgerKeywordCache wraps db. The caller owns db and closes it.
func NewBadgerKeywordCache(db *badger.DB, ttl time.Duration) *BadgerKeywordCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &BadgerKeywordCache{
		db:     db,
		ttl:    ttl,
		logger: logging.WithComponent("cache"),
	}
}

func (b *BadgerKeywordCache) Get(ctx context.Context, key string) ([]string, bool) {
	var ids []string
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keywordKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &ids)
		})
	})

	switch {
	case err == nil:
		metrics.RecordCacheLookup(keywordCacheName, true)
		if ids == nil {
			ids = []string{}
		}
		return ids, true
	case errors.Is(err, badger.ErrKeyNotFound):
	default:
		logging.Ctx(ctx).Warn().Err(err).Str("component", "cache").Str("key", key).Msg("keyword cache read failed")
	}
	metrics.RecordCacheLookup(keywordCacheName, false)
	return nil, false
}

func (b *BadgerKeywordCache) Set(ctx context.Context, key string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("component", "cache").Msg("marshal keyword ids")
		return
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keywordKeyPrefix+key), data).WithTTL(b.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("component", "cache").Str("key", key).Msg("keyword cache write failed")
	}
}

// Maintain runs value-log GC.
func (b *BadgerKeywordCache) Maintain() error {
	return b.RunGC()
}

// RunGC rewrites value-log files until badger reports nothing left to
// reclaim. It is a no-op for in-memory databases.
func (b *BadgerKeywordCache) RunGC() error {
	rewrites := 0
	for {
		err := b.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			break
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
		rewrites++
	}
	if rewrites > 0 {
		b.logger.Debug().Int("rewrites", rewrites).Msg("keyword cache value log compacted")
	}
	return nil
}
