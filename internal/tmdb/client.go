// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/metrics"
)

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 64 * 1024

var (
	// ErrNotFound matches an *APIError for HTTP 404.
	ErrNotFound = errors.New("tmdb: resource not found")

	// ErrRateLimited is returned when HTTP 429 persists past the retry budget.
	ErrRateLimited = errors.New("tmdb: rate limit exceeded")
)

// APIError is a non-200 response from TMDb.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb %s request failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// API is the set of TMDb calls the catalog needs. Client and
// CircuitBreakerClient implement it.
type API interface {
	DiscoverMovies(ctx context.Context, params DiscoverParams) (*MovieList, error)
	MovieDetails(ctx context.Context, movieID int) (*Movie, error)
	SearchMovies(ctx context.Context, query string, year int) (*MovieList, error)
	MovieKeywords(ctx context.Context, movieID int) (*KeywordsResponse, error)
}

// Client handles communication with the TMDb HTTP API.
//
// Thread Safety: safe for concurrent use. The rate limiter is shared by all
// callers.
type Client struct {
	baseURL        string
	token          string
	client         *http.Client
	limiter        *rate.Limiter // nil disables client-side limiting
	maxRetries     int           // retries on HTTP 429
	retryBaseDelay time.Duration // doubles on each retry
}

// NewClient creates a TMDb client from cfg.
func NewClient(cfg *config.TMDbConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultTMDbBaseURL
	}

	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		token:          cfg.Token,
		client:         &http.Client{Timeout: timeout},
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c
}

// doRequestWithRateLimit performs a GET, retrying HTTP 429 with exponential
// backoff (1s, 2s, 4s...) or the server's Retry-After when present.
func (c *Client) doRequestWithRateLimit(ctx context.Context, endpoint, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter wait: %w", err)
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.client.Do(req)
		if err != nil {
			metrics.RecordTMDbRequest(endpoint, "error", time.Since(start))
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		metrics.RecordTMDbRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w after %d retries (HTTP 429)", ErrRateLimited, c.maxRetries)
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if seconds, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && seconds >= 0 {
			delay = time.Duration(seconds) * time.Second
		}
		metrics.TMDbRateLimitRetries.Inc()

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}
}

// DiscoverMovies lists movies sorted by popularity. Adult titles are excluded.
func (c *Client) DiscoverMovies(ctx context.Context, params DiscoverParams) (*MovieList, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	genreIDs := make([]string, 0, len(params.GenreIDs))
	for _, id := range params.GenreIDs {
		genreIDs = append(genreIDs, strconv.Itoa(id))
	}

	req := newAPIRequest("discover", "/discover/movie").
		addParam("include_adult", "false").
		addParam("sort_by", "popularity.desc").
		addDateParam("primary_release_date.gte", params.ReleasedFrom).
		addDateParam("primary_release_date.lte", params.ReleasedTo).
		addListParam("with_genres", genreIDs).
		addListParam("with_keywords", params.KeywordIDs).
		addIntParam("page", page)

	return executeAPIRequest[MovieList](ctx, c, req)
}

// MovieDetails fetches one movie with its keywords appended.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*Movie, error) {
	req := newAPIRequest("movie_detail", "/movie/"+strconv.Itoa(movieID)).
		addParam("append_to_response", "keywords")

	return executeAPIRequest[Movie](ctx, c, req)
}

// SearchMovies finds movies by title and release year. A blank query or a
// non-positive year returns an empty list without a request.
func (c *Client) SearchMovies(ctx context.Context, query string, year int) (*MovieList, error) {
	query = strings.TrimSpace(query)
	if query == "" || year <= 0 {
		return &MovieList{Results: []Movie{}}, nil
	}

	req := newAPIRequest("search", "/search/movie").
		addParam("query", query).
		addIntParam("year", year)

	return executeAPIRequest[MovieList](ctx, c, req)
}

// MovieKeywords lists the keywords of a movie. A non-positive id returns an
// empty list without a request.
func (c *Client) MovieKeywords(ctx context.Context, movieID int) (*KeywordsResponse, error) {
	if movieID <= 0 {
		return &KeywordsResponse{Keywords: []Keyword{}}, nil
	}

	req := newAPIRequest("keywords", "/movie/"+strconv.Itoa(movieID)+"/keywords")
	return executeAPIRequest[KeywordsResponse](ctx, c, req)
}

var _ API = (*Client)(nil)
