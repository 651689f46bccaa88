// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/models"
	"github.com/tomtom215/billboard/internal/sales"
)

type trackingRepository struct {
	closes atomic.Int32
}

func (r *trackingRepository) TopSuccessfulMovies(context.Context, string) ([]models.SuccessfulMovie, error) {
	return nil, nil
}

func (r *trackingRepository) Ping(context.Context) error { return nil }

func (r *trackingRepository) Close() error {
	r.closes.Add(1)
	return nil
}

func stubSales(t *testing.T, repo sales.Repository, err error) {
	t.Helper()
	prev := openSales
	t.Cleanup(func() { openSales = prev })
	openSales = func(context.Context, *config.SalesConfig) (sales.Repository, error) {
		return repo, err
	}
}

func TestRun_ClosesSalesWhenKeywordCacheFails(t *testing.T) {
	repo := &trackingRepository{}
	stubSales(t, repo, nil)

	// A regular file where badger expects a directory.
	blocker := filepath.Join(t.TempDir(), "keywords")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Cache: config.CacheConfig{Backend: config.CacheBackendBadger, Path: blocker, TTL: time.Hour},
	}

	err := run(cfg)
	if err == nil || !strings.Contains(err.Error(), "open keyword cache") {
		t.Fatalf("run() = %v, want keyword cache error", err)
	}
	if got := repo.closes.Load(); got != 1 {
		t.Errorf("sales repository closed %d times, want 1", got)
	}
}

func TestRun_SalesOpenFailure(t *testing.T) {
	openErr := errors.New("connection refused")
	stubSales(t, nil, openErr)

	err := run(&config.Config{})
	if !errors.Is(err, openErr) {
		t.Errorf("run() = %v, want wrapped %v", err, openErr)
	}
}

func TestOpenKeywordCache_Memory(t *testing.T) {
	kc, closeFn, err := openKeywordCache(&config.CacheConfig{Backend: config.CacheBackendMemory, Capacity: 10, TTL: time.Minute})
	if err != nil {
		t.Fatalf("openKeywordCache() error = %v", err)
	}
	defer closeFn()

	kc.Set(context.Background(), "k", []string{"1"})
	if got, ok := kc.Get(context.Background(), "k"); !ok || len(got) != 1 {
		t.Errorf("Get = %v, %v", got, ok)
	}
}
