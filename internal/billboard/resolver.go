// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
	"github.com/tomtom215/billboard/internal/models"
)

const (
	daysPerMonth = 30
	daysPerWeek  = 7
)

// Resolver builds weekly billboards. It is safe for concurrent use; each
// Resolve call owns its own AssignedTitles.
type Resolver struct {
	keywords *KeywordExtractor
	walker   *PageWalker
	genres   GenreProvider
	logger   zerolog.Logger
}

// NewResolver wires a Resolver. A nil genres uses StaticGenres.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(sales SalesRepository, catalog CatalogRepository, genres GenreProvider, logger zerolog.Logger) *Resolver {
	if genres == nil {
		genres = StaticGenres{}
	}
	logger = logger.With().Str("component", "billboard").Logger()
	return &Resolver{
		keywords: NewKeywordExtractor(sales, catalog, logger),
		walker:   NewPageWalker(catalog, logger),
		genres:   genres,
		logger:   logger,
	}
}

// Resolve returns one WeeklyBillboard per week, ordered by week number.
// Week i (0-based) recommends titles released in
// [from - 30 days + 7*i days, from + 7*i days).
func (r *Resolver) Resolve(ctx context.Context, from time.Time, weeks, bigRooms, smallRooms int, city string) []models.WeeklyBillboard {
	start := time.Now()
	defer func() {
		metrics.BillboardResolveDuration.Observe(time.Since(start).Seconds())
	}()

	if weeks <= 0 {
		return []models.WeeklyBillboard{}
	}

	keywordIDs := r.keywords.Extract(ctx, city)
	assigned := NewAssignedTitles()
	billboards := make([]models.WeeklyBillboard, weeks)

	var wg sync.WaitGroup
	for i := 0; i < weeks; i++ {
		billboards[i].WeekNumber = i + 1
		window := weekWindow(from, i)

		wg.Add(1)
		go func(week *models.WeeklyBillboard, w dateWindow) {
			defer wg.Done()
			r.fillWeek(ctx, week, w, keywordIDs, bigRooms, smallRooms, assigned)
		}(&billboards[i], window)
	}
	wg.Wait()

	logging.FromContext(ctx, r.logger).Info().
		Time("from", from).
		Int("weeks", weeks).
		Int("big_rooms", bigRooms).
		Int("small_rooms", smallRooms).
		Int("keywords", len(keywordIDs)).
		Int("titles", assigned.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("billboard resolved")

	return billboards
}

type dateWindow struct {
	from time.Time
	to   time.Time
}

func weekWindow(from time.Time, index int) dateWindow {
	return dateWindow{
		from: from.AddDate(0, 0, -daysPerMonth+daysPerWeek*index),
		to:   from.AddDate(0, 0, daysPerWeek*index),
	}
}

// fillWeek walks both room categories concurrently and stores the results in
// week. Nothing else writes to week.
func (r *Resolver) fillWeek(ctx context.Context, week *models.WeeklyBillboard, w dateWindow, keywordIDs []string, bigRooms, smallRooms int, assigned *AssignedTitles) {
	var small, big []models.Recommendation
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		small = r.walker.Walk(ctx, WalkRequest{
			Filter:   models.MovieFilter{From: w.from, To: w.to, Genres: r.genres.NicheGenres(), KeywordIDs: keywordIDs},
			Quota:    smallRooms,
			Category: RoomSmall,
		}, assigned)
	}()
	go func() {
		defer wg.Done()
		big = r.walker.Walk(ctx, WalkRequest{
			Filter:   models.MovieFilter{From: w.from, To: w.to, Genres: r.genres.BlockbusterGenres(), KeywordIDs: keywordIDs},
			Quota:    bigRooms,
			Category: RoomBig,
		}, assigned)
	}()
	wg.Wait()

	week.SmallRooms = small
	week.BigRooms = big
}
