// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package billboard

import (
	"context"

	"github.com/tomtom215/billboard/internal/models"
)

// SalesRepository reports locally successful movies.
type SalesRepository interface {
	// TopSuccessfulMovies returns the movies with the most seats sold in the
	// city, best first, at most five.
	TopSuccessfulMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error)
}

// CatalogRepository is the external movie catalog.
type CatalogRepository interface {
	// FetchMoviesPage returns one 1-based page of movies matching the filter.
	// A nil result or a non-nil error means the page is unavailable.
	FetchMoviesPage(ctx context.Context, filter models.MovieFilter, page int) (*models.PagedResult, error)

	// FetchKeywordIDs returns the keyword ids of the catalog movie that best
	// matches the title and release year. It may be empty.
	FetchKeywordIDs(ctx context.Context, title string, year int) ([]string, error)
}
