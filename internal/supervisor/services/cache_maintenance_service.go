// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/billboard/internal/logging"
)

const defaultMaintenanceInterval = 10 * time.Minute

// maxConsecutiveMaintenanceFailures makes Serve return so the supervisor
// restarts the service with backoff.
const maxConsecutiveMaintenanceFailures = 3

// CacheMaintainer is satisfied by the keyword caches: value-log GC for
// badger, expired-entry cleanup for the in-memory LRU.
type CacheMaintainer interface {
	Maintain() error
}

// CacheMaintenanceService runs Maintain on a fixed interval.
type CacheMaintenanceService struct {
	cache    CacheMaintainer
	interval time.Duration
	name     string
}

// NewCacheMaintenanceService creates the service. interval <= 0 means 10m.
func NewCacheMaintenanceService(cache CacheMaintainer, interval time.Duration) *CacheMaintenanceService {
	if interval <= 0 {
		interval = defaultMaintenanceInterval
	}
	return &CacheMaintenanceService{
		cache:    cache,
		interval: interval,
		name:     "cache-maintenance",
	}
}

// Serve implements suture.Service. A single failed run is logged; after
// several in a row Serve returns the last error.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger := logging.WithComponent("cache")
	failures := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.cache.Maintain(); err != nil {
				failures++
				logger.Warn().Err(err).Int("consecutive_failures", failures).Msg("Cache maintenance failed")
				if failures >= maxConsecutiveMaintenanceFailures {
					return fmt.Errorf("cache maintenance failed %d times: %w", failures, err)
				}
				continue
			}
			failures = 0
			logger.Debug().Dur("duration", time.Since(start)).Msg("Cache maintenance completed")
		}
	}
}

func (s *CacheMaintenanceService) String() string {
	return s.name
}
