package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the process-wide connection pool. Units of work check
// connections out per request and return them on every exit path.
func Connect(url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
