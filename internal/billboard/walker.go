// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
	"github.com/tomtom215/billboard/internal/models"
)

// pageLimit is the catalog page size assumed when estimating progress.
const pageLimit = 20

// RoomCategory distinguishes big and small screening rooms.
type RoomCategory string

const (
	RoomBig   RoomCategory = "big"
	RoomSmall RoomCategory = "small"
)

// WalkRequest describes one page walk.
type WalkRequest struct {
	Filter   models.MovieFilter
	Quota    int
	Category RoomCategory
}

// PageWalker paginates the catalog collecting unclaimed titles.
type PageWalker struct {
	catalog CatalogRepository
	logger  zerolog.Logger
}

// NewPageWalker creates a PageWalker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPageWalker(catalog CatalogRepository, logger zerolog.Logger) *PageWalker {
	return &PageWalker{
		catalog: catalog,
		logger:  logger.With().Str("component", "walker").Logger(),
	}
}

// Walk returns up to req.Quota recommendations whose titles it managed to
// claim in assigned. It stops on quota, on an unavailable page, or when the
// estimated number of processed results reaches the catalog total. A short
// result is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (w *PageWalker) Walk(ctx context.Context, req WalkRequest, assigned *AssignedTitles) []models.Recommendation {
	accepted := make([]models.Recommendation, 0, max(req.Quota, 0))
	if req.Quota <= 0 {
		return accepted
	}
	category := string(req.Category)

	for page := 1; ; page++ {
		result, err := w.catalog.FetchMoviesPage(ctx, req.Filter, page)
		if err != nil {
			metrics.BillboardCollaboratorFailures.WithLabelValues("catalog_page").Inc()
			logging.FromContext(ctx, w.logger).Warn().
				Err(err).
				Str("category", category).
				Int("page", page).
				Int("accepted", len(accepted)).
				Msg("catalog page unavailable, ending walk")
			break
		}
		if result == nil {
			break
		}
		metrics.BillboardPagesFetched.WithLabelValues(category).Inc()

		for i := range result.Results {
			if len(accepted) >= req.Quota {
				break
			}
			if assigned.TryClaim(result.Results[i].Title) {
				accepted = append(accepted, result.Results[i])
				metrics.BillboardTitlesClaimed.WithLabelValues(category).Inc()
			}
		}

		if len(accepted) >= req.Quota {
			break
		}
		if processedResults(page, len(result.Results)) >= result.TotalResults {
			break
		}
	}

	w.logger.Debug().
		Str("category", category).
		Int("quota", req.Quota).
		Int("accepted", len(accepted)).
		Msg("walk finished")
	return accepted
}

// processedResults estimates how many catalog results have been seen after
// page, assuming every earlier page held pageLimit results.
func processedResults(page, resultsOnPage int) int {
	return (page-1)*pageLimit + resultsOnPage
}
