// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/billboard/internal/billboard"
)

// DefaultRequestTimeout bounds a billboard resolution when none is configured.
const DefaultRequestTimeout = 30 * time.Second

// BillboardService resolves billboards for the handler.
type BillboardService interface {
	IntelligentBillboard(ctx context.Context, params billboard.IntelligentBillboardParams) (*billboard.IntelligentBillboardResponse, error)
}

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports a circuit breaker's state: closed, half-open or open.
type BreakerState interface {
	State() string
}

// Handler serves the billboard and health endpoints.
type Handler struct {
	service        BillboardService
	sales          Pinger
	catalog        BreakerState
	requestTimeout time.Duration
	version        string
	startTime      time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithRequestTimeout bounds each billboard resolution.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) {
		h.version = v
	}
}

// NewHandler wires the handler. sales and catalog may be nil, in which case
// the health endpoint reports them as unavailable.
func NewHandler(service BillboardService, sales Pinger, catalog BreakerState, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:        service,
		sales:          sales,
		catalog:        catalog,
		requestTimeout: DefaultRequestTimeout,
		version:        "dev",
		startTime:      time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
