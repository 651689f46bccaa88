// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/billboard/internal/billboard"
)

// mockService records the params it was called with.
type mockService struct {
	mu       sync.Mutex
	last     billboard.IntelligentBillboardParams
	lastCtx  context.Context
	calls    atomic.Int32
	response *billboard.IntelligentBillboardResponse
	err      error
}

func (m *mockService) IntelligentBillboard(ctx context.Context, params billboard.IntelligentBillboardParams) (*billboard.IntelligentBillboardResponse, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.last = params
	m.lastCtx = ctx
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &billboard.IntelligentBillboardResponse{IntelligentBillboard: []billboard.WeeklyBillboardResponse{}}, nil
}

type mockPinger struct {
	err   error
	calls atomic.Int32
}

func (m *mockPinger) Ping(context.Context) error {
	m.calls.Add(1)
	return m.err
}

type mockBreaker string

func (m mockBreaker) State() string { return string(m) }

var errPingFailed = errors.New("connection refused")

// envelope decodes a response body into the generic envelope shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

type panicService struct{}

func (panicService) IntelligentBillboard(context.Context, billboard.IntelligentBillboardParams) (*billboard.IntelligentBillboardResponse, error) {
	panic("boom")
}
