// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

/*
Package tmdb talks to The Movie Database (TMDb) v3 API and adapts it to the
billboard catalog.

Layers, from the wire up:

  - Client: HTTP GET with Bearer auth, a client-side token bucket
    (golang.org/x/time/rate), and retries on HTTP 429 with exponential backoff
    that honours Retry-After.
  - CircuitBreakerClient: wraps any API with sony/gobreaker so a failing TMDb
    stops receiving traffic for a while. State is exported to Prometheus.
  - Catalog: implements billboard.CatalogRepository. It enriches discover
    results with movie details and caches keyword lookups.

Endpoints used:

	GET /discover/movie
	GET /movie/{id}?append_to_response=keywords
	GET /search/movie?query=&year=
	GET /movie/{id}/keywords
*/
package tmdb
