// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

/*
Package config loads and validates the Billboard service configuration.

# Configuration Sources

Layers are applied in order, each overriding the previous one:

 1. Built-in defaults (defaultConfig)
 2. A YAML file located through CONFIG_PATH, ./config.yaml or /etc/billboard/config.yaml
 3. Environment variables, mapped explicitly in envTransformFunc

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT

TMDb catalog:
  - TMDB_BASE_URL: API root (default: https://api.themoviedb.org/3)
  - TMDB_TOKEN: v4 read access token (required)
  - TMDB_TIMEOUT, TMDB_RATE_LIMIT, TMDB_RATE_BURST, TMDB_MAX_RETRIES

Sales repository:
  - SALES_DRIVER: duckdb or postgres (default: duckdb)
  - SALES_DSN: PostgreSQL connection string (required for postgres)
  - SALES_PATH: DuckDB file, empty for in-memory
  - SALES_MAX_CONNS, SALES_SEED_DEMO_DATA

Keyword cache:
  - CACHE_BACKEND: memory or badger
  - CACHE_PATH, CACHE_CAPACITY, CACHE_TTL, CACHE_GC_INTERVAL

Billboard:
  - BILLBOARD_MAX_WEEKS, BILLBOARD_REQUEST_TIMEOUT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Security:
  - CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
