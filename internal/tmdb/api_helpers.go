// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// dateLayout is the TMDb date format for query parameters and payloads.
const dateLayout = "2006-01-02"

// apiRequest holds the path and query of a TMDb request.
type apiRequest struct {
	endpoint string // metrics label
	path     string
	params   url.Values
}

func newAPIRequest(endpoint, path string) *apiRequest {
	return &apiRequest{
		endpoint: endpoint,
		path:     path,
		params:   url.Values{},
	}
}

// addParam adds a parameter unless value is empty.
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addIntParam adds an integer parameter only if > 0.
func (r *apiRequest) addIntParam(key string, value int) *apiRequest {
	if value > 0 {
		r.params.Set(key, strconv.Itoa(value))
	}
	return r
}

// addDateParam adds a date parameter unless t is zero.
func (r *apiRequest) addDateParam(key string, t time.Time) *apiRequest {
	if !t.IsZero() {
		r.params.Set(key, t.Format(dateLayout))
	}
	return r
}

// addListParam joins values with "|", TMDb's OR separator.
func (r *apiRequest) addListParam(key string, values []string) *apiRequest {
	if len(values) > 0 {
		r.params.Set(key, strings.Join(values, "|"))
	}
	return r
}

func (r *apiRequest) buildURL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/") + r.path
	if len(r.params) == 0 {
		return u
	}
	return u + "?" + r.params.Encode()
}

// executeAPIRequest sends req and decodes a 200 response into T. Any other
// status is returned as an *APIError.
func executeAPIRequest[T any](ctx context.Context, c *Client, req *apiRequest) (*T, error) {
	resp, err := c.doRequestWithRateLimit(ctx, req.endpoint, req.buildURL(c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("tmdb %s request: %w", req.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Endpoint:   req.endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb %s response: %w", req.endpoint, err)
	}
	return &result, nil
}
