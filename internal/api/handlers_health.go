// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import (
	"context"
	"net/http"
	"time"
)

// healthCheckTimeout bounds the sales ping.
const healthCheckTimeout = 2 * time.Second

const circuitOpen = "open"

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status         string  `json:"status"`
	Version        string  `json:"version"`
	SalesConnected bool    `json:"sales_connected"`
	SalesError     string  `json:"sales_error,omitempty"`
	CatalogCircuit string  `json:"catalog_circuit"`
	Uptime         float64 `json:"uptime_seconds"`
}

// Health reports dependency status. It always answers 200; Status is
// "degraded" when the sales backend is unreachable or the catalog circuit is
// open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.healthStatus(r.Context()))
}

// HealthLive answers 200 while the process is running.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady answers 503 while a dependency is unhealthy.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.healthStatus(r.Context())

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).Status(code, status)
}

func (h *Handler) healthStatus(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:         "healthy",
		Version:        h.version,
		CatalogCircuit: "unknown",
		Uptime:         time.Since(h.startTime).Seconds(),
	}

	if h.sales != nil {
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := h.sales.Ping(pingCtx)
		cancel()
		status.SalesConnected = err == nil
		if err != nil {
			status.SalesError = err.Error()
		}
	}
	if h.catalog != nil {
		status.CatalogCircuit = h.catalog.State()
	}

	if !status.SalesConnected || status.CatalogCircuit == circuitOpen {
		status.Status = "degraded"
	}
	return status
}
