// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

/*
Package main is the entry point for the Billboard server.

Billboard recommends the films a cinema should program over the coming
weeks. It combines the cinema's own ticket sales with the TMDb catalog:
keywords of the best selling films in a city steer which upcoming
releases go to big rooms (blockbuster genres) and small rooms (niche
genres), and no title is scheduled twice.

# Application Architecture

	RootSupervisor ("billboard")
	├── DataSupervisor ("data-layer")
	│   └── Keyword cache maintenance
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog with JSON or console output
 3. Sales repository: DuckDB (embedded, optional demo data) or PostgreSQL (pgx pool)
 4. Keyword cache: in-memory LRU or BadgerDB
 5. Catalog: TMDb client behind a rate limiter and circuit breaker
 6. Billboard service and HTTP handlers
 7. Supervisor tree: Suture v4 process supervision

# Configuration

Common environment variables:

	HTTP_PORT=8080
	TMDB_TOKEN=<v4 read access token>
	SALES_DRIVER=duckdb          # or postgres
	SALES_DSN=postgres://...     # postgres only
	SALES_SEED_DEMO_DATA=true    # duckdb only
	CACHE_BACKEND=memory         # or badger
	LOG_LEVEL=info
	LOG_FORMAT=json

A config.yaml (or the file named by CONFIG_PATH) can set the same keys;
environment variables win.

# Endpoints

	GET /api/v1/billboard/intelligent?from=2026-11-02&weeks=2&bigrooms=3&smallrooms=2&city=Bilbao
	GET /api/v1/health
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10s, then the sales repository and keyword
cache are closed.
*/
package main
