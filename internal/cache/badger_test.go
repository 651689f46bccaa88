// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

func setupBadgerCache(t *testing.T, ttl time.Duration) (*BadgerKeywordCache, *badger.DB) {
	t.Helper()

	db, err := OpenBadger("")
	if err != nil {
		t.Fatalf("Failed to open badger: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewBadgerKeywordCache(db, ttl), db
}

func TestBadgerKeywordCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kc, _ := setupBadgerCache(t, time.Hour)

	if _, ok := kc.Get(ctx, "arrival|2016"); ok {
		t.Fatal("Get on empty cache returned a value")
	}

	kc.Set(ctx, "arrival|2016", []string{"4565", "9882"})
	got, ok := kc.Get(ctx, "arrival|2016")
	if !ok || len(got) != 2 || got[0] != "4565" || got[1] != "9882" {
		t.Errorf("Get = %v, %v; want [4565 9882], true", got, ok)
	}

	kc.Set(ctx, "nothing|2000", nil)
	if got, ok := kc.Get(ctx, "nothing|2000"); !ok || got == nil || len(got) != 0 {
		t.Errorf("cached empty lookup = %v, %v; want [], true", got, ok)
	}
}

func TestBadgerKeywordCache_EntriesCarryTTL(t *testing.T) {
	ctx := context.Background()
	kc, db := setupBadgerCache(t, time.Hour)

	kc.Set(ctx, "up|2009", []string{"1"})

	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keywordKeyPrefix + "up|2009"))
		if err != nil {
			return err
		}
		expires := time.Unix(int64(item.ExpiresAt()), 0)
		if until := time.Until(expires); until <= 0 || until > time.Hour+time.Minute {
			t.Errorf("entry expires in %v, want about 1h", until)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
}

func TestBadgerKeywordCache_Expired(t *testing.T) {
	ctx := context.Background()
	kc, _ := setupBadgerCache(t, time.Second)

	kc.Set(ctx, "coco|2017", []string{"1"})
	time.Sleep(2100 * time.Millisecond)

	if _, ok := kc.Get(ctx, "coco|2017"); ok {
		t.Error("expected entry to expire")
	}
}

func TestBadgerKeywordCache_RunGCInMemory(t *testing.T) {
	kc, _ := setupBadgerCache(t, time.Hour)

	if err := kc.RunGC(); err != nil {
		t.Errorf("RunGC() on in-memory db = %v, want nil", err)
	}
}

func TestKeywordCaches_AgreeOnEmptyLookups(t *testing.T) {
	ctx := context.Background()
	badgerCache, _ := setupBadgerCache(t, time.Hour)

	caches := map[string]KeywordCache{
		"memory": NewMemoryKeywordCache(10, time.Hour),
		"badger": badgerCache,
	}

	for name, kc := range caches {
		t.Run(name, func(t *testing.T) {
			for _, stored := range [][]string{nil, {}} {
				kc.Set(ctx, "unknown|1999", stored)
				got, ok := kc.Get(ctx, "unknown|1999")
				if !ok {
					t.Fatalf("Get(%v) missed", stored)
				}
				if got == nil {
					t.Errorf("Get after Set(%#v) returned nil, want empty non-nil slice", stored)
				}
				if len(got) != 0 {
					t.Errorf("Get after Set(%#v) = %v, want empty", stored, got)
				}
			}
		})
	}
}
