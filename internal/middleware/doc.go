// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

/*
Package middleware provides the HTTP middleware shared by every Billboard
endpoint.

  - RequestID: X-Request-ID propagation and logging context
  - AccessLog: one structured log line per request, slow requests at warn
  - PrometheusMetrics: request count, latency and in-flight gauge per route
  - Compression: gzip for clients that accept it

All of them have the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

PrometheusMetrics labels requests with the chi route pattern rather than the
raw path, so it must run inside a chi router.
*/
package middleware
