// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns the defaults with the one required secret filled in.
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.TMDb.Token = "test-token"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.TMDb.BaseURL != DefaultTMDbBaseURL {
		t.Errorf("TMDb.BaseURL = %q, want %q", cfg.TMDb.BaseURL, DefaultTMDbBaseURL)
	}
	if cfg.TMDb.Token != "" {
		t.Error("TMDb.Token should be empty by default")
	}
	if cfg.Sales.Driver != SalesDriverDuckDB {
		t.Errorf("Sales.Driver = %q, want duckdb", cfg.Sales.Driver)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Errorf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if cfg.Billboard.MaxWeeks != 52 {
		t.Errorf("Billboard.MaxWeeks = %d, want 52", cfg.Billboard.MaxWeeks)
	}
	if cfg.Billboard.RequestTimeout != 30*time.Second {
		t.Errorf("Billboard.RequestTimeout = %v, want 30s", cfg.Billboard.RequestTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"missing token", func(c *Config) { c.TMDb.Token = "" }, "TMDB_TOKEN"},
		{"bad base url scheme", func(c *Config) { c.TMDb.BaseURL = "ftp://api.themoviedb.org/3" }, "TMDB_BASE_URL"},
		{"base url with query", func(c *Config) { c.TMDb.BaseURL = "https://api.themoviedb.org/3?x=1" }, "TMDB_BASE_URL"},
		{"negative retries", func(c *Config) { c.TMDb.MaxRetries = -1 }, "TMDB_MAX_RETRIES"},
		{"rate limit without burst", func(c *Config) { c.TMDb.RateBurst = 0 }, "TMDB_RATE_BURST"},
		{"rate limiting disabled without burst", func(c *Config) { c.TMDb.RateLimit = 0; c.TMDb.RateBurst = 0 }, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"unknown sales driver", func(c *Config) { c.Sales.Driver = "mysql" }, "SALES_DRIVER"},
		{"postgres without dsn", func(c *Config) { c.Sales.Driver = SalesDriverPostgres }, "SALES_DSN"},
		{"postgres with dsn", func(c *Config) {
			c.Sales.Driver = SalesDriverPostgres
			c.Sales.DSN = "postgres://billboard@localhost/billboard"
		}, ""},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "redis" }, "CACHE_BACKEND"},
		{"badger without path", func(c *Config) { c.Cache.Backend = CacheBackendBadger; c.Cache.Path = "" }, "CACHE_PATH"},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, "CACHE_TTL"},
		{"zero max weeks", func(c *Config) { c.Billboard.MaxWeeks = 0 }, "BILLBOARD_MAX_WEEKS"},
		{"rate limit window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := validConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS in development should not warn")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS in production should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://cinema.example.com"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9000}
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", got)
	}
}
