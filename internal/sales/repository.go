// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package sales

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/models"
)

// TopMoviesLimit is the number of movies reported per city.
const TopMoviesLimit = 5

// Repository is a sales history backend.
type Repository interface {
	// TopSuccessfulMovies returns up to TopMoviesLimit movies with the most
	// seats sold in the city, best first.
	TopSuccessfulMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// topMoviesQuery ranks the city's movies by seats sold and attaches their
// comma separated genre names. $1 is the city name. Both PostgreSQL and
// DuckDB accept the positional placeholder and ordered string_agg.
const topMoviesQuery = `
WITH top_movies AS (
    SELECT m.id,
           m.original_title,
           m.release_date,
           CAST(SUM(s.seats_sold) AS BIGINT) AS seats_sold
    FROM cities c
    JOIN cinemas ci ON ci.city_id = c.id
    JOIN rooms r ON r.cinema_id = ci.id
    JOIN sessions s ON s.room_id = r.id
    JOIN movies m ON m.id = s.movie_id
    WHERE c.name = $1
    GROUP BY m.id, m.original_title, m.release_date
    ORDER BY SUM(s.seats_sold) DESC, m.id
    LIMIT 5
)
SELECT t.original_title,
       t.seats_sold,
       t.release_date,
       COALESCE(string_agg(g.name, ',' ORDER BY g.name), '') AS genres
FROM top_movies t
LEFT JOIN movie_genres mg ON mg.movie_id = t.id
LEFT JOIN genres g ON g.id = mg.genre_id
GROUP BY t.id, t.original_title, t.seats_sold, t.release_date
ORDER BY t.seats_sold DESC, t.id`

// Open connects to the backend selected by cfg.Driver. A DuckDB backend
// gets its schema created, and the demo dataset when cfg.SeedDemoData is set.
func Open(ctx context.Context, cfg *config.SalesConfig) (Repository, error) {
	switch cfg.Driver {
	case config.SalesDriverPostgres:
		return NewPostgresRepository(ctx, cfg)
	case config.SalesDriverDuckDB:
		repo, err := NewDuckDBRepository(cfg)
		if err != nil {
			return nil, err
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			closeQuietly(repo)
			return nil, err
		}
		if cfg.SeedDemoData {
			if err := repo.SeedDemoData(ctx); err != nil {
				closeQuietly(repo)
				return nil, err
			}
			logging.Info().Str("driver", cfg.Driver).Msg("Loaded demo sales data")
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported sales driver %q", cfg.Driver)
	}
}

// newQueryLimiter sizes the query semaphore at max(maxConns-1, 1).
func newQueryLimiter(maxConns int) *semaphore.Weighted {
	n := int64(maxConns - 1)
	if n < 1 {
		n = 1
	}
	return semaphore.NewWeighted(n)
}

func queryError(city string, err error) error {
	return fmt.Errorf("query successful movies for city %q: %w", city, err)
}

func closeQuietly(r Repository) {
	if err := r.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close sales repository")
	}
}
