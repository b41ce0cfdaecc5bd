// Package mysql implements the storage contract on MySQL through
// database/sql. Writes that span records (itinerary assignment,
// capacity-checked bookings, operator deletion) run inside
// transactions; inserts are followed by a select so callers receive
// server-assigned defaults and timestamps. List-valued fields are
// stored as JSON text columns.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// Store is the MySQL backend.
type Store struct {
	db *sql.DB
}

// New returns a Store bound to the given connection pool.
func New(db *sql.DB) *Store { return &Store{db: db} }

// DB exposes the underlying pool for health checks.
func (s *Store) DB() *sql.DB { return s.db }

// encodeList serialises a string slice to its JSON column form.
func encodeList(in []string) string {
	if len(in) == 0 {
		return "[]"
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeList parses a JSON column back into a slice; malformed data
// degrades to empty rather than failing the read.
func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// nullID adapts an optional foreign key for a nullable column.
func nullID(p *uint64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func idPtr(n sql.NullInt64) *uint64 {
	if !n.Valid {
		return nil
	}
	v := uint64(n.Int64)
	return &v
}

// isDuplicate reports whether err is a MySQL duplicate-key violation
// (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// notFound converts sql.ErrNoRows into the store sentinel and leaves
// other errors alone.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// inTx runs fn within a transaction, rolling back on error.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
