package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"AstroVision/internal/ports"
)

// DocumentStore is the SQL-backed key-value store for drafts and settings.
type DocumentStore struct {
	db *DB
}

var _ ports.KeyValueStore = (*DocumentStore)(nil)

// NewDocumentStore wires the store onto an opened database.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Get returns the document at key.
func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.builder.Select("value").From("kv_documents").Where(sq.Eq{"name": key}).
		RunWith(s.db.conn).QueryRowContext(ctx).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get document %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Put upserts the document at key.
func (s *DocumentStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.builder.Insert("kv_documents").
		Columns("name", "value").
		Values(key, string(value)).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value").
		RunWith(s.db.conn).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document at key.
func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.builder.Delete("kv_documents").Where(sq.Eq{"name": key}).
		RunWith(s.db.conn).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
