package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradana/duit/internal/model"
	"github.com/pradana/duit/internal/storage"
)

func newTestRepo() *Repository {
	return New(storage.NewMemoryStore())
}

func testTransaction(amount int64, typ model.TransactionType, category, date string) model.Transaction {
	return model.Transaction{
		ID:        model.NewID(),
		CreatedAt: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(amount),
		Type:      typ,
		Category:  category,
		Date:      date,
	}
}

func TestTransactionsEmptyOnFreshStore(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	assert.Empty(t, repo.Transactions(ctx))
}

func TestAddTransactionPrepends(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	first := testTransaction(100, model.TypeExpense, "food", "2024-01-01")
	second := testTransaction(200, model.TypeExpense, "food", "2024-01-02")
	repo.AddTransaction(ctx, first)
	got := repo.AddTransaction(ctx, second)

	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest insertion comes first")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	txn := testTransaction(12345, model.TypeIncome, "salary", "2024-02-29")
	txn.Description = "gaji bulanan"
	repo.AddTransaction(ctx, txn)

	got := repo.Transactions(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, txn.ID, got[0].ID)
	assert.Equal(t, txn.Type, got[0].Type)
	assert.Equal(t, txn.Category, got[0].Category)
	assert.Equal(t, txn.Description, got[0].Description)
	assert.Equal(t, txn.Date, got[0].Date)
	assert.True(t, txn.Amount.Equal(got[0].Amount))
	assert.True(t, txn.CreatedAt.Equal(got[0].CreatedAt))
}

func TestUpdateTransactionPartial(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	txn := testTransaction(100, model.TypeExpense, "food", "2024-01-01")
	repo.AddTransaction(ctx, txn)

	newAmount := decimal.NewFromInt(250)
	newDescription := "makan siang"
	got := repo.UpdateTransaction(ctx, txn.ID, TransactionPatch{
		Amount:      &newAmount,
		Description: &newDescription,
	})

	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(newAmount))
	assert.Equal(t, newDescription, got[0].Description)
	// Untouched fields survive.
	assert.Equal(t, "food", got[0].Category)
	assert.Equal(t, "2024-01-01", got[0].Date)
}

func TestUpdateTransactionMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	txn := testTransaction(100, model.TypeExpense, "food", "2024-01-01")
	repo.AddTransaction(ctx, txn)

	newAmount := decimal.NewFromInt(999)
	got := repo.UpdateTransaction(ctx, "no-such-id", TransactionPatch{Amount: &newAmount})

	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestDeleteTransactionIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	txn := testTransaction(100, model.TypeExpense, "food", "2024-01-01")
	keep := testTransaction(200, model.TypeIncome, "salary", "2024-01-02")
	repo.AddTransaction(ctx, txn)
	repo.AddTransaction(ctx, keep)

	once := repo.DeleteTransaction(ctx, txn.ID)
	twice := repo.DeleteTransaction(ctx, txn.ID)

	assert.Equal(t, once, twice, "second delete of the same id changes nothing")
	require.Len(t, twice, 1)
	assert.Equal(t, keep.ID, twice[0].ID)
}

func TestAddBudgetReplacesByCategory(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	repo.AddBudget(ctx, model.Budget{
		ID: model.NewID(), Category: "food", Limit: decimal.NewFromInt(500), Period: model.PeriodMonthly,
	})
	got := repo.AddBudget(ctx, model.Budget{
		ID: model.NewID(), Category: "food", Limit: decimal.NewFromInt(900), Period: model.PeriodMonthly,
	})

	require.Len(t, got, 1, "at most one budget per category")
	assert.True(t, got[0].Limit.Equal(decimal.NewFromInt(900)), "the second add wins")
}

func TestAddBudgetKeepsOtherCategories(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	repo.AddBudget(ctx, model.Budget{ID: model.NewID(), Category: "food", Limit: decimal.NewFromInt(500), Period: model.PeriodMonthly})
	got := repo.AddBudget(ctx, model.Budget{ID: model.NewID(), Category: "transport", Limit: decimal.NewFromInt(300), Period: model.PeriodMonthly})

	assert.Len(t, got, 2)
}

func TestDeleteBudgetMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	repo.AddBudget(ctx, model.Budget{ID: model.NewID(), Category: "food", Limit: decimal.NewFromInt(500), Period: model.PeriodMonthly})
	got := repo.DeleteBudget(ctx, "no-such-id")
	assert.Len(t, got, 1)
}

func TestGoalLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	goal := model.SavingsGoal{
		ID:            model.NewID(),
		CreatedAt:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Name:          "liburan",
		TargetAmount:  decimal.NewFromInt(2000),
		CurrentAmount: decimal.Zero,
	}
	repo.AddGoal(ctx, goal)

	contributed := decimal.NewFromInt(1500)
	got := repo.UpdateGoal(ctx, goal.ID, GoalPatch{CurrentAmount: &contributed})
	require.Len(t, got, 1)
	assert.True(t, got[0].CurrentAmount.Equal(contributed))
	assert.Equal(t, "liburan", got[0].Name)

	got = repo.DeleteGoal(ctx, goal.ID)
	assert.Empty(t, got)
}

func TestThemeDefaultsToLight(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	assert.Equal(t, model.ThemeLight, repo.Theme(ctx))
}

func TestThemePersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := New(store)

	repo.SaveTheme(ctx, model.ThemeDark)
	assert.Equal(t, model.ThemeDark, repo.Theme(ctx))

	// Unrecognized raw values fall back to light.
	require.NoError(t, store.Set(ctx, storage.KeyTheme, []byte("sepia")))
	assert.Equal(t, model.ThemeLight, repo.Theme(ctx))
}

func TestCorruptCollectionReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	repo := New(store)

	require.NoError(t, store.Set(ctx, storage.KeyTransactions, []byte("{not json")))
	assert.Empty(t, repo.Transactions(ctx))
}

func TestRepositoryOnNoopStore(t *testing.T) {
	ctx := context.Background()
	repo := New(storage.NoopStore{})

	// Writes are accepted and lost; the returned collection still reflects
	// the mutation the caller asked for.
	got := repo.AddTransaction(ctx, testTransaction(100, model.TypeExpense, "food", "2024-01-01"))
	assert.Len(t, got, 1)
	assert.Empty(t, repo.Transactions(ctx))
}
