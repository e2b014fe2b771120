package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/pradana/duit/internal/common"
	"github.com/pradana/duit/internal/config"
	"github.com/pradana/duit/internal/finance"
	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/repository"
	"github.com/pradana/duit/internal/storage"
)

// initTracker opens the store and loads the coordinator. The returned store
// must be closed by the caller; closeStore handles the usual deferred case.
func initTracker(ctx context.Context) (*finance.Tracker, storage.KV) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store := storage.Open(ctx, dbPath)
	tracker := finance.NewTracker(ctx, repository.New(store))
	return tracker, store
}

func closeStore(store storage.KV) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// Boundary validation: the core assumes validated input, so everything the
// user typed gets checked here.

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewUserError(fmt.Sprintf("amount %q is not a number", s), common.ErrInvalidAmount)
	}
	if amount.IsNegative() {
		return decimal.Zero, common.NewUserError("amount cannot be negative", common.ErrInvalidAmount)
	}
	return amount, nil
}

func parsePositiveAmount(s string) (decimal.Decimal, error) {
	amount, err := parseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, common.NewUserError("amount must be greater than zero", common.ErrInvalidAmount)
	}
	return amount, nil
}

func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", common.NewUserError(fmt.Sprintf("date %q must look like 2024-01-31", s), common.ErrInvalidDate)
	}
	return s, nil
}

func parseType(s string) (model.TransactionType, error) {
	typ := model.TransactionType(s)
	if !typ.Valid() {
		return "", common.NewUserError(fmt.Sprintf("type %q must be income or expense", s), common.ErrInvalidType)
	}
	return typ, nil
}

func parseCategory(s string, typ model.TransactionType) (string, error) {
	if model.KnownCategory(s, typ) {
		return s, nil
	}
	valid := make([]string, 0, len(model.Categories(typ)))
	for _, c := range model.Categories(typ) {
		valid = append(valid, c.ID)
	}
	return "", common.NewUserError(fmt.Sprintf("unknown %s category %q (valid: %v)", typ, s, valid), common.ErrInvalidCategory)
}

func parseMonths(n int) (int, error) {
	if n < 1 {
		return 0, common.NewUserError(fmt.Sprintf("months must be at least 1, got %d", n), common.ErrInvalidConfig)
	}
	return n, nil
}

// editedType resolves the transaction type an edit validates its category
// against: an explicit type change wins, otherwise the stored type. An
// unknown id falls back to the expense table; the update itself is a no-op
// then anyway.
func editedType(txs []model.Transaction, id string, patch repository.TransactionPatch) model.TransactionType {
	if patch.Type != nil {
		return *patch.Type
	}
	for _, t := range txs {
		if t.ID == id {
			return t.Type
		}
	}
	return model.TypeExpense
}

func today() string {
	return time.Now().Format("2006-01-02")
}
