// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/billboard/internal/api"
	"github.com/tomtom215/billboard/internal/billboard"
	"github.com/tomtom215/billboard/internal/cache"
	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/sales"
	"github.com/tomtom215/billboard/internal/supervisor"
	"github.com/tomtom215/billboard/internal/supervisor/services"
	"github.com/tomtom215/billboard/internal/tmdb"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// openSales is replaced in tests.
var openSales = sales.Open

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	// run returns instead of exiting so its deferred closes always happen.
	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Billboard stopped with error")
	}
	logging.Info().Msg("Billboard stopped")
}

func run(cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("sales_driver", cfg.Sales.Driver).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting Billboard")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesRepo, err := openSales(ctx, &cfg.Sales)
	if err != nil {
		return fmt.Errorf("open sales repository: %w", err)
	}
	defer func() {
		if err := salesRepo.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing sales repository")
		}
	}()
	logging.Info().Bool("demo_data", cfg.Sales.SeedDemoData).Msg("Sales repository ready")

	keywords, closeKeywords, err := openKeywordCache(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("open keyword cache: %w", err)
	}
	defer closeKeywords()

	if cfg.TMDb.Token == "" {
		logging.Warn().Msg("TMDB_TOKEN is not set, catalog requests will be rejected upstream")
	}
	catalogAPI := tmdb.NewCircuitBreakerClient(tmdb.NewClient(&cfg.TMDb))
	catalog := tmdb.NewCatalog(catalogAPI, keywords, logging.WithComponent("tmdb"))

	resolver := billboard.NewResolver(salesRepo, catalog, billboard.StaticGenres{}, logging.WithComponent("billboard"))
	service := billboard.NewService(resolver, cfg.Billboard.MaxWeeks)

	handler := api.NewHandler(service, salesRepo, catalogAPI,
		api.WithRequestTimeout(cfg.Billboard.RequestTimeout),
		api.WithVersion(version),
	)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("CORS allows any origin in production, set CORS_ORIGINS to specific origins")
	}

	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Billboard requests can walk many catalog pages.
		WriteTimeout: cfg.Server.Timeout + cfg.Billboard.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if maintainer, ok := keywords.(services.CacheMaintainer); ok {
		tree.AddDataService(services.NewCacheMaintenanceService(maintainer, cfg.Cache.GCInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel yields exactly one value once the tree has stopped.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		for _, svc := range report {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}
	return nil
}

// openKeywordCache returns the configured keyword id cache and a function
// releasing its resources.
func openKeywordCache(cfg *config.CacheConfig) (cache.KeywordCache, func(), error) {
	if cfg.Backend != config.CacheBackendBadger {
		logging.Info().Int("capacity", cfg.Capacity).Dur("ttl", cfg.TTL).Msg("Using in-memory keyword cache")
		return cache.NewMemoryKeywordCache(cfg.Capacity, cfg.TTL), func() {}, nil
	}

	db, err := cache.OpenBadger(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	logging.Info().Str("path", cfg.Path).Dur("ttl", cfg.TTL).Msg("Using badger keyword cache")

	closeFn := func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing keyword cache")
		}
	}
	return cache.NewBadgerKeywordCache(db, cfg.TTL), closeFn, nil
}
