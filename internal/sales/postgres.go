// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
	"github.com/tomtom215/billboard/internal/models"
)

const driverPostgres = "postgres"

// PostgresRepository reads sales from PostgreSQL.
type PostgresRepository struct {
	pool    *pgxpool.Pool
	limiter *semaphore.Weighted
	logger  zerolog.Logger
}

// NewPostgresRepository opens a pool against cfg.DSN and verifies it with a
// ping.
func NewPostgresRepository(ctx context.Context, cfg *config.SalesConfig) (*PostgresRepository, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse sales DSN: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns) //nolint:gosec // bounded by config validation
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create sales pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping sales database: %w", err)
	}

	logger := logging.WithComponent("sales")
	logger.Info().Int32("max_conns", poolCfg.MaxConns).Msg("Connected to PostgreSQL sales database")

	return &PostgresRepository{
		pool:    pool,
		limiter: newQueryLimiter(int(poolCfg.MaxConns)),
		logger:  logger,
	}, nil
}

// TopSuccessfulMovies implements Repository.
func (r *PostgresRepository) TopSuccessfulMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error) {
	if err := r.limiter.Acquire(ctx, 1); err != nil {
		return nil, queryError(city, err)
	}
	defer r.limiter.Release(1)

	start := time.Now()
	movies, err := r.queryTopMovies(ctx, city)
	metrics.RecordSalesQuery(driverPostgres, time.Since(start), err)
	if err != nil {
		return nil, queryError(city, err)
	}

	r.logger.Debug().Str("city", city).Int("movies", len(movies)).Msg("Loaded successful movies")
	return movies, nil
}

func (r *PostgresRepository) queryTopMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error) {
	rows, err := r.pool.Query(ctx, topMoviesQuery, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []models.SuccessfulMovie
	for rows.Next() {
		var m models.SuccessfulMovie
		if err := rows.Scan(&m.Title, &m.SeatsSold, &m.ReleaseDate, &m.Genres); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

// Ping implements Repository.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close implements Repository.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
