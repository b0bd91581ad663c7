// Package storage persists posts and key-value documents in SQLite or Postgres.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS blog_posts (
		id           TEXT PRIMARY KEY,
		seq          BIGINT NOT NULL,
		title        TEXT NOT NULL,
		slug         TEXT NOT NULL,
		published_on TEXT NOT NULL,
		excerpt      TEXT NOT NULL,
		content      TEXT NOT NULL,
		tags         TEXT NOT NULL,
		category     TEXT NOT NULL,
		image        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS blog_posts_slug ON blog_posts (slug)`,
	`CREATE INDEX IF NOT EXISTS blog_posts_seq ON blog_posts (seq)`,
	`CREATE TABLE IF NOT EXISTS kv_documents (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// DB is an opened database together with a dialect-aware statement builder.
type DB struct {
	conn    *sql.DB
	builder sq.StatementBuilderType
	driver  string
}

// Open connects to the database and creates missing tables.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	var placeholder sq.PlaceholderFormat
	switch driver {
	case DriverSQLite:
		placeholder = sq.Question
	case DriverPostgres:
		placeholder = sq.Dollar
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("storage dsn is empty")
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// modernc sqlite serialises writers; one connection avoids SQLITE_BUSY.
		conn.SetMaxOpenConns(1)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	db := &DB{conn: conn, builder: sq.StatementBuilder.PlaceholderFormat(placeholder), driver: driver}
	if err := db.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
