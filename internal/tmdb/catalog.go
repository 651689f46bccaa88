// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package tmdb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/cache"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/models"
)

// Catalog adapts TMDb to the billboard catalog: discover pages enriched with
// movie details, and keyword ids for a known title.
type Catalog struct {
	api      API
	keywords cache.KeywordCache // nil disables caching
	logger   zerolog.Logger
}

// NewCatalog creates a Catalog. keywords may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalog(api API, keywords cache.KeywordCache, logger zerolog.Logger) *Catalog {
	return &Catalog{
		api:      api,
		keywords: keywords,
		logger:   logger.With().Str("component", "tmdb").Logger(),
	}
}

// FetchMoviesPage discovers one page of movies released within the filter's
// window, matching any of its genres and any of its keyword ids. Each result
// is enriched with its details; a failed enrichment leaves the result without
// genres, homepage or keywords.
func (c *Catalog) FetchMoviesPage(ctx context.Context, filter models.MovieFilter, page int) (*models.PagedResult, error) {
	genreIDs := make([]int, 0, len(filter.Genres))
	for _, g := range filter.Genres {
		genreIDs = append(genreIDs, g.TMDbID())
	}

	list, err := c.api.DiscoverMovies(ctx, DiscoverParams{
		ReleasedFrom: filter.From,
		ReleasedTo:   filter.To,
		GenreIDs:     genreIDs,
		KeywordIDs:   filter.KeywordIDs,
		Page:         page,
	})
	if err != nil {
		return nil, fmt.Errorf("discover movies page %d: %w", page, err)
	}

	c.enrich(ctx, list.Results)

	result := &models.PagedResult{
		Page:         list.Page,
		TotalResults: list.TotalResults,
		TotalPages:   list.TotalPages,
		Results:      make([]models.Recommendation, 0, len(list.Results)),
	}
	for i := range list.Results {
		result.Results = append(result.Results, toRecommendation(&list.Results[i]))
	}
	return result, nil
}

// enrich replaces the detail fields of every movie concurrently.
func (c *Catalog) enrich(ctx context.Context, movies []Movie) {
	var wg sync.WaitGroup
	for i := range movies {
		wg.Add(1)
		go func(m *Movie) {
			defer wg.Done()
			c.enrichMovie(ctx, m)
		}(&movies[i])
	}
	wg.Wait()
}

func (c *Catalog) enrichMovie(ctx context.Context, m *Movie) {
	detail, err := c.api.MovieDetails(ctx, m.ID)
	if err != nil || detail == nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("component", "tmdb").
			Int("movie_id", m.ID).
			Msg("movie detail unavailable, using discover result only")
		m.Keywords = &KeywordsResponse{Keywords: []Keyword{}}
		m.Homepage = ""
		m.Genres = []Genre{}
		return
	}

	m.Keywords = detail.Keywords
	if m.Keywords == nil {
		m.Keywords = &KeywordsResponse{Keywords: []Keyword{}}
	}
	m.Homepage = detail.Homepage
	m.Genres = detail.Genres
}

// FetchKeywordIDs returns the keyword ids of the first search match for title
// released in year, as decimal strings. No match yields an empty slice.
// Successful lookups are cached.
func (c *Catalog) FetchKeywordIDs(ctx context.Context, title string, year int) ([]string, error) {
	if strings.TrimSpace(title) == "" || year <= 0 {
		return []string{}, nil
	}

	key := cache.KeywordKey(title, year)
	if c.keywords != nil {
		if ids, ok := c.keywords.Get(ctx, key); ok {
			return ids, nil
		}
	}

	ids, err := c.lookupKeywordIDs(ctx, title, year)
	if err != nil {
		return nil, err
	}

	if c.keywords != nil {
		c.keywords.Set(ctx, key, ids)
	}
	c.logger.Debug().Str("title", title).Int("year", year).Int("keywords", len(ids)).Msg("keyword ids resolved")
	return ids, nil
}

func (c *Catalog) lookupKeywordIDs(ctx context.Context, title string, year int) ([]string, error) {
	found, err := c.api.SearchMovies(ctx, title, year)
	if err != nil {
		return nil, fmt.Errorf("search %q (%d): %w", title, year, err)
	}
	if found == nil || len(found.Results) == 0 || found.Results[0].ID <= 0 {
		return []string{}, nil
	}

	movieID := found.Results[0].ID
	kw, err := c.api.MovieKeywords(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("keywords of movie %d: %w", movieID, err)
	}
	if kw == nil {
		return []string{}, nil
	}

	ids := make([]string, 0, len(kw.Keywords))
	for _, k := range kw.Keywords {
		ids = append(ids, strconv.Itoa(k.ID))
	}
	return ids, nil
}

func toRecommendation(m *Movie) models.Recommendation {
	genres := make([]models.Genre, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, models.GenreFromTMDbID(g.ID))
	}

	keywords := []string{}
	if m.Keywords != nil {
		keywords = make([]string, 0, len(m.Keywords.Keywords))
		for _, k := range m.Keywords.Keywords {
			keywords = append(keywords, k.Name)
		}
	}

	return models.Recommendation{
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      genres,
		Language:    m.OriginalLanguage,
		ReleaseDate: parseReleaseDate(m.ReleaseDate),
		Website:     m.Homepage,
		Keywords:    keywords,
	}
}

// parseReleaseDate returns nil for an empty or malformed date.
func parseReleaseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
