package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions tunes the shared pool.
type PoolOptions struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

func Connect(ctx context.Context, dbURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 20
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.MaxConnLifetime = time.Hour
	if opts.MaxConnLifetime > 0 {
		cfg.MaxConnLifetime = opts.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// the process keeps at most one live pool; later calls reuse the first result.
var shared struct {
	once sync.Once
	pool *pgxpool.Pool
	err  error
}

// SharedPool lazily connects on first use and hands out the same pool afterwards.
// The dsn of later calls is ignored.
func SharedPool(ctx context.Context, dbURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	shared.once.Do(func() {
		shared.pool, shared.err = Connect(ctx, dbURL, opts)
	})
	return shared.pool, shared.err
}
