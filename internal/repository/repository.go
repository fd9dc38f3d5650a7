// Package repository provides the user and exercise stores.
package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Repository provides PostgreSQL-backed store methods.
type Repository struct {
	pool *pgxpool.Pool
}

// PoolConfig holds connection pool bounds.
type PoolConfig struct {
	MaxConns int32
	MinConns int32
}

// New creates a new Repository with a connection pool.
func New(ctx context.Context, databaseURL string, poolCfg PoolConfig) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	if poolCfg.MaxConns > 0 {
		config.MaxConns = poolCfg.MaxConns
	}
	if poolCfg.MinConns > 0 && poolCfg.MinConns <= config.MaxConns {
		config.MinConns = poolCfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{pool: pool}, nil
}

// NewWithPool wraps an existing pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

// Migrate applies every embedded up migration in order.
// Migrations are idempotent so this is safe to run on each start.
func (r *Repository) Migrate(ctx context.Context) error {
	files, err := migrationFiles(".up.sql")
	if err != nil {
		return err
	}

	for _, name := range files {
		body, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}

// Reset drops every table and re-applies the migrations.
// Intended for tests.
func (r *Repository) Reset(ctx context.Context) error {
	files, err := migrationFiles(".down.sql")
	if err != nil {
		return err
	}

	// down migrations run newest first
	for i := len(files) - 1; i >= 0; i-- {
		body, err := migrationFS.ReadFile(files[i])
		if err != nil {
			return fmt.Errorf("read migration %s: %w", files[i], err)
		}
		if _, err := r.pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", files[i], err)
		}
	}

	return r.Migrate(ctx)
}

func migrationFiles(suffix string) ([]string, error) {
	entries, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(entries)
	return entries, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation
// on the given constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 23505 is unique_violation
	return pgErr.Code == "23505" && (constraint == "" || strings.EqualFold(pgErr.ConstraintName, constraint))
}
