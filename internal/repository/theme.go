package repository

import (
	"context"

	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/storage"
)

// Theme returns the persisted theme, defaulting to light when the key is
// absent or holds an unrecognized value.
func (r *Repository) Theme(ctx context.Context) model.Theme {
	data, ok, err := r.kv.Get(ctx, storage.KeyTheme)
	if err != nil {
		common.LogError(err, "failed to read theme", common.Fields{"key": storage.KeyTheme})
		return model.ThemeLight
	}
	if !ok {
		return model.ThemeLight
	}
	return model.ParseTheme(string(data))
}

// SaveTheme persists the theme as a raw string.
func (r *Repository) SaveTheme(ctx context.Context, theme model.Theme) {
	if err := r.kv.Set(ctx, storage.KeyTheme, []byte(theme)); err != nil {
		common.LogError(err, "failed to write theme", common.Fields{"key": storage.KeyTheme})
	}
}
