// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200"))

	RecordAPIRequest("GET", "/api/v1/test", "200", 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/test", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordSalesQuery(t *testing.T) {
	tests := []struct {
		name      string
		driver    string
		err       error
		wantError float64
	}{
		{name: "success", driver: "test-ok", err: nil, wantError: 0},
		{name: "failure", driver: "test-fail", err: errors.New("connection refused"), wantError: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordSalesQuery(tt.driver, time.Millisecond, tt.err)

			if got := testutil.ToFloat64(SalesQueryErrors.WithLabelValues(tt.driver)); got != tt.wantError {
				t.Errorf("sales_query_errors_total{driver=%q} = %v, want %v", tt.driver, got, tt.wantError)
			}
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("metrics-test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics-test"))

	RecordCacheLookup("metrics-test", true)
	RecordCacheLookup("metrics-test", false)
	RecordCacheLookup("metrics-test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("metrics-test")); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics-test")); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestRecordTMDbRequest(t *testing.T) {
	before := testutil.ToFloat64(TMDbRequestsTotal.WithLabelValues("discover", "200"))

	RecordTMDbRequest("discover", "200", 120*time.Millisecond)

	if got := testutil.ToFloat64(TMDbRequestsTotal.WithLabelValues("discover", "200")); got != before+1 {
		t.Errorf("tmdb_requests_total = %v, want %v", got, before+1)
	}
}
