// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	TMDb      TMDbConfig      `koanf:"tmdb"`
	Sales     SalesConfig     `koanf:"sales"`
	Cache     CacheConfig     `koanf:"cache"`
	Billboard BillboardConfig `koanf:"billboard"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// TMDbConfig configures the movie catalog client.
type TMDbConfig struct {
	BaseURL    string        `koanf:"base_url"`
	Token      string        `koanf:"token"` // v4 read access token, sent as a Bearer credential
	Timeout    time.Duration `koanf:"timeout"`
	RateLimit  float64       `koanf:"rate_limit"` // requests per second, 0 disables client-side limiting
	RateBurst  int           `koanf:"rate_burst"`
	MaxRetries int           `koanf:"max_retries"` // retries on HTTP 429
}

// SalesConfig selects and configures the ticket sales backend.
type SalesConfig struct {
	Driver       string `koanf:"driver"` // duckdb or postgres
	DSN          string `koanf:"dsn"`
	Path         string `koanf:"path"` // DuckDB database file, empty for in-memory
	MaxConns     int    `koanf:"max_conns"`
	SeedDemoData bool   `koanf:"seed_demo_data"`
}

// CacheConfig configures the keyword id cache.
type CacheConfig struct {
	Backend    string        `koanf:"backend"` // memory or badger
	Path       string        `koanf:"path"`
	Capacity   int           `koanf:"capacity"`
	TTL        time.Duration `koanf:"ttl"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

type BillboardConfig struct {
	MaxWeeks       int           `koanf:"max_weeks"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// UsesPostgres reports whether the sales repository is backed by PostgreSQL.
func (c *Config) UsesPostgres() bool {
	return c.Sales.Driver == SalesDriverPostgres
}

const (
	SalesDriverDuckDB   = "duckdb"
	SalesDriverPostgres = "postgres"

	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
)
