// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
	"github.com/tomtom215/billboard/internal/models"
)

// successfulMoviesLimit is how many best-selling titles seed the keywords.
const successfulMoviesLimit = 5

// KeywordExtractor derives catalog keyword ids from the titles that sold
// best in a city.
type KeywordExtractor struct {
	sales   SalesRepository
	catalog CatalogRepository
	logger  zerolog.Logger
}

// NewKeywordExtractor creates a KeywordExtractor.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewKeywordExtractor(sales SalesRepository, catalog CatalogRepository, logger zerolog.Logger) *KeywordExtractor {
	return &KeywordExtractor{
		sales:   sales,
		catalog: catalog,
		logger:  logger.With().Str("component", "keywords").Logger(),
	}
}

// Extract returns the deduplicated keyword ids for city, sorted. It returns
// an empty slice when the city is blank or there is no usable sales data.
func (k *KeywordExtractor) Extract(ctx context.Context, city string) []string {
	city = strings.TrimSpace(city)
	if city == "" || k.sales == nil {
		return []string{}
	}

	movies, err := k.sales.TopSuccessfulMovies(ctx, city)
	if err != nil {
		metrics.BillboardCollaboratorFailures.WithLabelValues("sales").Inc()
		logging.FromContext(ctx, k.logger).Warn().
			Err(err).
			Str("city", city).
			Msg("sales lookup failed, resolving without keyword bias")
		return []string{}
	}
	if len(movies) == 0 {
		k.logger.Debug().Str("city", city).Msg("no sales history for city")
		return []string{}
	}
	if len(movies) > successfulMoviesLimit {
		movies = movies[:successfulMoviesLimit]
	}

	set := newKeywordSet()
	var wg sync.WaitGroup
	for _, movie := range movies {
		wg.Add(1)
		go func(m models.SuccessfulMovie) {
			defer wg.Done()
			k.collect(ctx, m, set)
		}(movie)
	}
	wg.Wait()

	ids := set.sorted()
	metrics.BillboardKeywordsExtracted.Observe(float64(len(ids)))
	k.logger.Debug().
		Str("city", city).
		Int("movies", len(movies)).
		Int("keywords", len(ids)).
		Msg("extracted keywords from local sales")
	return ids
}

// collect fetches the keyword ids of one movie into set. Failures only drop
// this movie's contribution.
func (k *KeywordExtractor) collect(ctx context.Context, movie models.SuccessfulMovie, set *keywordSet) {
	ids, err := k.catalog.FetchKeywordIDs(ctx, movie.Title, movie.ReleaseDate.Year())
	if err != nil {
		metrics.BillboardCollaboratorFailures.WithLabelValues("catalog_keywords").Inc()
		logging.FromContext(ctx, k.logger).Warn().
			Err(err).
			Str("title", movie.Title).
			Int("year", movie.ReleaseDate.Year()).
			Msg("keyword lookup failed")
		return
	}
	set.addAll(ids)
}

type keywordSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newKeywordSet() *keywordSet {
	return &keywordSet{ids: make(map[string]struct{})}
}

func (s *keywordSet) addAll(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if id == "" {
			continue
		}
		s.ids[id] = struct{}{}
	}
}

func (s *keywordSet) sorted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
