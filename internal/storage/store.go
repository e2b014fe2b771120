// Package storage provides the data persistence layer for duit.
//
// The store is a durable key-value map holding one serialized collection per
// key. A missing key is not an error: it reads back as absent and upstream
// layers interpret that as an empty collection.
package storage

import (
	"context"

	"github.com/pradana/duit/internal/common"
)

// Store keys, one per persisted collection plus the theme preference.
const (
	KeyTransactions = "expense_tracker_transactions"
	KeyBudgets      = "expense_tracker_budgets"
	KeyGoals        = "expense_tracker_goals"
	KeyTheme        = "expense_tracker_theme"
)

// KV is a durable key-value store. Get returns ok=false for a missing key
// without an error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// NoopStore is the degraded mode used when no durable storage is available:
// every read comes back absent and every write is discarded. Callers accept
// that nothing survives the session.
type NoopStore struct{}

// Get always reports the key as absent.
func (NoopStore) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (NoopStore) Set(_ context.Context, _ string, _ []byte) error {
	return nil
}

// Close is a no-op.
func (NoopStore) Close() error { return nil }

// Open returns a SQLite-backed store at path, migrated and ready for use.
// When the database cannot be opened the degraded NoopStore is returned
// instead: the application keeps working, it just loses everything at exit.
func Open(ctx context.Context, path string) KV {
	store, err := NewSQLiteStore(path)
	if err != nil {
		common.LogWarn("persistent storage unavailable, data will not survive this session",
			common.Fields{"path": path, "error": err})
		return NoopStore{}
	}
	if err := store.Migrate(ctx); err != nil {
		common.LogWarn("storage migration failed, continuing without persistence",
			common.Fields{"path": path, "error": err})
		_ = store.Close()
		return NoopStore{}
	}
	return store
}
