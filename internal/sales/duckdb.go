// Billboard - Cinema Billboard Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/billboard

package sales

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/billboard/internal/config"
	"github.com/tomtom215/billboard/internal/logging"
	"github.com/tomtom215/billboard/internal/metrics"
	"github.com/tomtom215/billboard/internal/models"
)

const driverDuckDB = "duckdb"

// DuckDBRepository reads sales from an embedded DuckDB database.
type DuckDBRepository struct {
	conn    *sql.DB
	limiter *semaphore.Weighted
	logger  zerolog.Logger
}

// NewDuckDBRepository opens the database file at cfg.Path, or an in-memory
// database when the path is empty or ":memory:".
func NewDuckDBRepository(cfg *config.SalesConfig) (*DuckDBRepository, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create sales database directory %s: %w", dir, err)
			}
		}
	}

	connStr := path
	if connStr == ":memory:" {
		connStr = ""
	}
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales database: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns < 1 {
		maxConns = 1
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)

	if err := conn.Ping(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Failed to close sales database after ping error")
		}
		return nil, fmt.Errorf("failed to ping sales database: %w", err)
	}

	logger := logging.WithComponent("sales")
	logger.Info().Str("path", path).Msg("Opened DuckDB sales database")

	return &DuckDBRepository{
		conn:    conn,
		limiter: newQueryLimiter(maxConns),
		logger:  logger,
	}, nil
}

// EnsureSchema creates the sales tables if they do not exist.
func (r *DuckDBRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range SchemaStatements {
		if _, err := r.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create sales schema: %w", err)
		}
	}
	return nil
}

// SeedDemoData loads the demo dataset inside one transaction.
func (r *DuckDBRepository) SeedDemoData(ctx context.Context) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin demo data transaction: %w", err)
	}
	for _, stmt := range DemoDataStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Warn().Err(rbErr).Msg("Failed to roll back demo data")
			}
			return fmt.Errorf("failed to load demo sales data: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit demo sales data: %w", err)
	}
	return nil
}

// TopSuccessfulMovies implements Repository.
func (r *DuckDBRepository) TopSuccessfulMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error) {
	if err := r.limiter.Acquire(ctx, 1); err != nil {
		return nil, queryError(city, err)
	}
	defer r.limiter.Release(1)

	start := time.Now()
	movies, err := r.queryTopMovies(ctx, city)
	metrics.RecordSalesQuery(driverDuckDB, time.Since(start), err)
	if err != nil {
		return nil, queryError(city, err)
	}

	r.logger.Debug().Str("city", city).Int("movies", len(movies)).Msg("Loaded successful movies")
	return movies, nil
}

func (r *DuckDBRepository) queryTopMovies(ctx context.Context, city string) ([]models.SuccessfulMovie, error) {
	rows, err := r.conn.QueryContext(ctx, topMoviesQuery, city)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.Warn().Err(closeErr).Msg("Failed to close sales rows")
		}
	}()

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
func (r *DuckDBRepository) Ping(ctx context.Context) error {
	return r.conn.PingContext(ctx)
}

// Close implements Repository.
func (r *DuckDBRepository) Close() error {
	return r.conn.Close()
}

var _ Repository = (*DuckDBRepository)(nil)
