// Package postgres holds the connection handling shared by every
// postgres-backed repository.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// RowScanner is the subset of *sql.Rows the repositories read through.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is what repositories query. Tests replace it with a fake.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Open connects with the pool settings used by the API process and checks
// the connection before returning.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

type sqlRows struct {
	*sql.Rows
}

type sqlDB struct {
	db *sql.DB
}

// Wrap adapts *sql.DB to DB.
func Wrap(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}
