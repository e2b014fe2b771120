package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/storage"
)

// TransactionPatch is a partial update: nil fields are left unchanged.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *model.TransactionType
	Category    *string
	Description *string
	Date        *string
}

// Transactions returns all stored transactions, newest-first by insertion.
func (r *Repository) Transactions(ctx context.Context) []model.Transaction {
	return load[model.Transaction](ctx, r.kv, storage.KeyTransactions)
}

// AddTransaction prepends txn and persists the collection.
func (r *Repository) AddTransaction(ctx context.Context, txn model.Transaction) []model.Transaction {
	updated := append([]model.Transaction{txn}, r.Transactions(ctx)...)
	save(ctx, r.kv, storage.KeyTransactions, updated)
	return updated
}

// UpdateTransaction applies a partial update to the transaction with the
// given id. An unknown id is a no-op returning the unchanged collection.
func (r *Repository) UpdateTransaction(ctx context.Context, id string, patch TransactionPatch) []model.Transaction {
	updated := r.Transactions(ctx)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if patch.Amount != nil {
			updated[i].Amount = *patch.Amount
		}
		if patch.Type != nil {
			updated[i].Type = *patch.Type
		}
		if patch.Category != nil {
			updated[i].Category = *patch.Category
		}
		if patch.Description != nil {
			updated[i].Description = *patch.Description
		}
		if patch.Date != nil {
			updated[i].Date = *patch.Date
		}
		break
	}
	save(ctx, r.kv, storage.KeyTransactions, updated)
	return updated
}

// DeleteTransaction removes the transaction with the given id. An unknown id
// is a no-op returning the unchanged collection.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) []model.Transaction {
	current := r.Transactions(ctx)
	updated := make([]model.Transaction, 0, len(current))
	for _, t := range current {
		if t.ID != id {
			updated = append(updated, t)
		}
	}
	save(ctx, r.kv, storage.KeyTransactions, updated)
	return updated
}
