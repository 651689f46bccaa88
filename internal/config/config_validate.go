// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package config

import (
	"fmt"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour

	// maxBillboardWeeks caps BILLBOARD_MAX_WEEKS at two years.
	maxBillboardWeeks = 104
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid.
// Errors name the environment variable to fix.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateTMDb,
		c.validateSales,
		c.validateCache,
		c.validateBillboard,
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateTMDb() error {
	if c.TMDb.Token == "" {
		return fmt.Errorf("TMDB_TOKEN is required")
	}
	if err := validateHTTPURL(c.TMDb.BaseURL, "TMDB_BASE_URL"); err != nil {
		return fmt.Errorf("TMDB_BASE_URL is invalid: %w", err)
	}
	if c.TMDb.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDb.RateLimit < 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must not be negative")
	}
	if c.TMDb.RateLimit > 0 && c.TMDb.RateBurst < 1 {
		return fmt.Errorf("TMDB_RATE_BURST must be at least 1 when TMDB_RATE_LIMIT is set")
	}
	if c.TMDb.MaxRetries < 0 || c.TMDb.MaxRetries > 10 {
		return fmt.Errorf("TMDB_MAX_RETRIES must be between 0 and 10")
	}
	return nil
}

func (c *Config) validateSales() error {
	switch c.Sales.Driver {
	case SalesDriverDuckDB:
	case SalesDriverPostgres:
		if c.Sales.DSN == "" {
			return fmt.Errorf("SALES_DSN is required when SALES_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("SALES_DRIVER must be one of: duckdb, postgres")
	}
	if c.Sales.MaxConns < 1 {
		return fmt.Errorf("SALES_MAX_CONNS must be at least 1")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case CacheBackendMemory:
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("CACHE_CAPACITY must be at least 1")
		}
	case CacheBackendBadger:
		if c.Cache.Path == "" {
			return fmt.Errorf("CACHE_PATH is required when CACHE_BACKEND=badger")
		}
		if c.Cache.GCInterval <= 0 {
			return fmt.Errorf("CACHE_GC_INTERVAL must be positive when CACHE_BACKEND=badger")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, badger")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

func (c *Config) validateBillboard() error {
	if c.Billboard.MaxWeeks < 1 || c.Billboard.MaxWeeks > maxBillboardWeeks {
		return fmt.Errorf("BILLBOARD_MAX_WEEKS must be between 1 and %d", maxBillboardWeeks)
	}
	if c.Billboard.RequestTimeout <= 0 {
		return fmt.Errorf("BILLBOARD_REQUEST_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard CORS origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
