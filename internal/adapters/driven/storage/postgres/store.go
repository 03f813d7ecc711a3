// Package postgres provides the PostgreSQL-backed implementation of the
// PosStore driven port, for deployments where several instances share one
// database. The schema is created on startup; ids come from a BIGSERIAL
// sequence, so deleted ids never come back.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/seuhd/campus-coffee/internal/core/ports/driven"
)

const schema = `
	CREATE TABLE IF NOT EXISTS pos (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('CAFE', 'BAKERY')),
		campus TEXT NOT NULL CHECK (campus IN ('ALTSTADT', 'INF')),
		street TEXT NOT NULL,
		house_number TEXT NOT NULL,
		postal_code INTEGER NOT NULL,
		city TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`

// Store owns the connection pool and hands out port implementations
// backed by it.
type Store struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

// NewStore connects to the database behind dsn and ensures the schema
// exists. The pool connects lazily, so a ping verifies the DSN up front.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring pos table: %w", err)
	}

	return &Store{
		pool:  pool,
		clock: clockwork.NewRealClock(),
	}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping verifies the pool can still reach the database.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// PosStore returns a PosStore interface backed by this store.
func (s *Store) PosStore() driven.PosStore {
	return &posStore{store: s}
}
