// Package postgres implements the storage interfaces on PostgreSQL via pgx.
package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint errors
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique-constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

//go:embed schema.sql
var schema string

// Connect opens a pgx connection pool and verifies it with a ping
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("postgres: unable to ping database: %w", err)
	}

	return pool, nil
}

// ApplySchema creates any missing tables. Statements are idempotent so the
// call is safe on every startup.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to apply schema: %w", err)
	}
	return nil
}
