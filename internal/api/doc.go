// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package api exposes the billboard over HTTP with a chi router.
//
// Routes:
//
//	GET /api/v1/billboard/intelligent  resolve an intelligent billboard
//	GET /api/v1/health                 dependency status
//	GET /api/v1/health/live            liveness probe
//	GET /api/v1/health/ready           readiness probe
//	GET /metrics                       Prometheus exposition
//
// Every JSON response uses the APIResponse envelope:
//
//	{"success":true,"data":{...},"meta":{"request_id":"...","timestamp":"...","duration_ms":12}}
//	{"success":false,"error":{"code":"VALIDATION_ERROR","message":"weeks is required"},"meta":{...}}
//
// The global middleware stack is request ID, real IP, panic recovery,
// access log, CORS and Prometheus metrics. API routes add security headers,
// gzip and per-IP rate limiting.
package api
