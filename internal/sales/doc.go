// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

// Package sales reads ticket sales history for the billboard's keyword
// extraction.
//
// Two backends share one query:
//
//   - PostgresRepository talks to the cinema chain's PostgreSQL database
//     through a pgx connection pool.
//   - DuckDBRepository is an embedded DuckDB database used for local runs,
//     demos and unit tests. It can create its own schema and load a small
//     demo dataset.
//
// Both bound the number of concurrent queries to one less than the
// connection pool size, keeping a connection free for health checks.
//
// Open picks the backend from configuration:
//
//	repo, err := sales.Open(ctx, &cfg.Sales)
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
//	movies, err := repo.TopSuccessfulMovies(ctx, "Bilbao")
package sales
