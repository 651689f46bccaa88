// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		sales       Pinger
		catalog     BreakerState
		wantStatus  string
		wantSales   bool
		wantCircuit string
	}{
		{name: "healthy", sales: &mockPinger{}, catalog: mockBreaker("closed"), wantStatus: "healthy", wantSales: true, wantCircuit: "closed"},
		{name: "half-open is still healthy", sales: &mockPinger{}, catalog: mockBreaker("half-open"), wantStatus: "healthy", wantSales: true, wantCircuit: "half-open"},
		{name: "sales down", sales: &mockPinger{err: errPingFailed}, catalog: mockBreaker("closed"), wantStatus: "degraded", wantCircuit: "closed"},
		{name: "circuit open", sales: &mockPinger{}, catalog: mockBreaker("open"), wantStatus: "degraded", wantSales: true, wantCircuit: "open"},
		{name: "nothing wired", wantStatus: "degraded", wantCircuit: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockService{}, tt.sales, tt.catalog, WithVersion("1.2.3"))

			rec := serve(http.HandlerFunc(h.Health), http.MethodGet, "/api/v1/health")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var status HealthStatus
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &status); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if status.Status != tt.wantStatus || status.SalesConnected != tt.wantSales || status.CatalogCircuit != tt.wantCircuit {
				t.Errorf("status = %+v", status)
			}
			if status.Version != "1.2.3" {
				t.Errorf("version = %q", status.Version)
			}
			if !tt.wantSales && tt.sales != nil && status.SalesError == "" {
				t.Error("sales error should be reported")
			}
		})
	}
}

func TestHealthReady(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		h := NewHandler(&mockService{}, &mockPinger{}, mockBreaker("closed"))
		rec := serve(http.HandlerFunc(h.HealthReady), http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if !decodeEnvelope(t, rec).Success {
			t.Error("success should be true")
		}
	})

	t.Run("not ready", func(t *testing.T) {
		h := NewHandler(&mockService{}, &mockPinger{err: errPingFailed}, mockBreaker("closed"))
		rec := serve(http.HandlerFunc(h.HealthReady), http.MethodGet, "/api/v1/health/ready")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
		if decodeEnvelope(t, rec).Success {
			t.Error("success should be false")
		}
	})
}

func TestHealthLive(t *testing.T) {
	pinger := &mockPinger{err: errPingFailed}
	h := NewHandler(&mockService{}, pinger, mockBreaker("open"))

	rec := serve(http.HandlerFunc(h.HealthLive), http.MethodGet, "/api/v1/health/live")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if pinger.calls.Load() != 0 {
		t.Error("liveness must not touch dependencies")
	}
}
