// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/billboard/internal/metrics"
)

// mockAPI is an API driven by callbacks, counting calls per method.
type mockAPI struct {
	discoverFn func(params DiscoverParams) (*MovieList, error)
	detailsFn  func(id int) (*Movie, error)
	searchFn   func(query string, year int) (*MovieList, error)
	keywordsFn func(id int) (*KeywordsResponse, error)

	discoverCalls atomic.Int32
	detailsCalls  atomic.Int32
	searchCalls   atomic.Int32
	keywordsCalls atomic.Int32

	mu         sync.Mutex
	lastParams DiscoverParams
}

func (m *mockAPI) DiscoverMovies(_ context.Context, params DiscoverParams) (*MovieList, error) {
	m.discoverCalls.Add(1)
	m.mu.Lock()
	m.lastParams = params
	m.mu.Unlock()
	return m.discoverFn(params)
}

func (m *mockAPI) MovieDetails(_ context.Context, id int) (*Movie, error) {
	m.detailsCalls.Add(1)
	return m.detailsFn(id)
}

func (m *mockAPI) SearchMovies(_ context.Context, query string, year int) (*MovieList, error) {
	m.searchCalls.Add(1)
	return m.searchFn(query, year)
}

func (m *mockAPI) MovieKeywords(_ context.Context, id int) (*KeywordsResponse, error) {
	m.keywordsCalls.Add(1)
	return m.keywordsFn(id)
}

func failingKeywords(err error) *mockAPI {
	return &mockAPI{keywordsFn: func(int) (*KeywordsResponse, error) { return nil, err }}
}

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	api := failingKeywords(errors.New("simulated TMDb failure"))
	cbc := NewCircuitBreakerClient(api)
	ctx := context.Background()

	if cbc.State() != "closed" {
		t.Fatalf("initial state = %s, want closed", cbc.State())
	}

	// ReadyToTrip needs at least 10 requests.
	for i := 0; i < 10; i++ {
		if _, err := cbc.MovieKeywords(ctx, 1); err == nil {
			t.Fatal("expected failure")
		}
	}
	if cbc.State() != "open" {
		t.Fatalf("state after 10 failures = %s, want open", cbc.State())
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(breakerName)); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}

	rejectedBefore := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected"))
	_, err := cbc.MovieKeywords(ctx, 1)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error while open = %v, want ErrCircuitOpen", err)
	}
	if n := api.keywordsCalls.Load(); n != 10 {
		t.Errorf("underlying calls = %d, want 10 (open breaker must not call through)", n)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected")) - rejectedBefore; got != 1 {
		t.Errorf("rejected requests = %v, want 1", got)
	}
}

func TestCircuitBreaker_NotFoundIsNotAFailure(t *testing.T) {
	api := failingKeywords(&APIError{Endpoint: "keywords", StatusCode: http.StatusNotFound})
	cbc := NewCircuitBreakerClient(api)

	for i := 0; i < 15; i++ {
		_, err := cbc.MovieKeywords(context.Background(), 1)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if cbc.State() != "closed" {
		t.Errorf("state = %s, want closed: 404s must not trip the breaker", cbc.State())
	}
}

func TestCircuitBreaker_PassesResultsThrough(t *testing.T) {
	api := &mockAPI{
		discoverFn: func(p DiscoverParams) (*MovieList, error) {
			return &MovieList{Page: p.Page, Results: []Movie{{ID: 1, Title: "Up"}}}, nil
		},
		detailsFn: func(id int) (*Movie, error) { return &Movie{ID: id}, nil },
		searchFn:  func(q string, _ int) (*MovieList, error) { return &MovieList{Results: []Movie{{Title: q}}}, nil },
	}
	cbc := NewCircuitBreakerClient(api)
	ctx := context.Background()

	list, err := cbc.DiscoverMovies(ctx, DiscoverParams{Page: 3})
	if err != nil || list.Page != 3 || list.Results[0].Title != "Up" {
		t.Errorf("DiscoverMovies = %+v, %v", list, err)
	}
	movie, err := cbc.MovieDetails(ctx, 42)
	if err != nil || movie.ID != 42 {
		t.Errorf("MovieDetails = %+v, %v", movie, err)
	}
	found, err := cbc.SearchMovies(ctx, "Coco", 2017)
	if err != nil || found.Results[0].Title != "Coco" {
		t.Errorf("SearchMovies = %+v, %v", found, err)
	}
}

func TestCastResult(t *testing.T) {
	if _, err := castResult[Movie]("not a movie", nil); err == nil {
		t.Error("expected type mismatch error")
	}
	want := errors.New("boom")
	if _, err := castResult[Movie](nil, want); !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
}
