// Package repository implements read-modify-write CRUD for the entity
// collections. Every mutation loads the full collection from the store,
// applies the change, persists the full collection, and returns it.
//
// Absent or unreadable data is never an error at this layer: reads fall back
// to the empty collection and failed writes are logged and swallowed. The
// store is only ever written by this process, so a parse failure means the
// degraded no-persistence mode is acceptable.
package repository

import (
	"context"
	"encoding/json"

	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/storage"
)

// Repository performs CRUD over a key-value store. It is not safe for
// concurrent use: the read-modify-write cycle assumes a single writer.
type Repository struct {
	kv storage.KV
}

// New creates a repository backed by kv.
func New(kv storage.KV) *Repository {
	return &Repository{kv: kv}
}

// load reads and decodes the collection stored under key. An absent key or
// undecodable blob yields the empty collection.
func load[T any](ctx context.Context, kv storage.KV, key string) []T {
	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		common.LogError(err, "failed to read collection", common.Fields{"key": key})
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		common.LogError(err, "failed to decode collection", common.Fields{"key": key})
		return nil
	}
	return items
}

// save serializes and persists the full collection under key. Write failures
// are logged, not surfaced: losing persistence degrades to session-only data.
func save[T any](ctx context.Context, kv storage.KV, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		common.LogError(err, "failed to encode collection", common.Fields{"key": key})
		return
	}
	if err := kv.Set(ctx, key, data); err != nil {
		common.LogError(err, "failed to write collection", common.Fields{"key": key})
	}
}
