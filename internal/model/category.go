package model

// Category is a fixed classification tag with display metadata. Categories
// are drawn from separate static tables for income and expense; the last
// entry of each table is the catch-all.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// ExpenseCategories is the static table of expense categories.
var ExpenseCategories = []Category{
	{ID: "food", Name: "Makanan", Icon: "cake", Color: "#f97316"},
	{ID: "transport", Name: "Transport", Icon: "truck", Color: "#3b82f6"},
	{ID: "shopping", Name: "Belanja", Icon: "shopping-bag", Color: "#ec4899"},
	{ID: "bills", Name: "Tagihan", Icon: "document-text", Color: "#8b5cf6"},
	{ID: "entertainment", Name: "Hiburan", Icon: "film", Color: "#f43f5e"},
	{ID: "health", Name: "Kesehatan", Icon: "heart", Color: "#10b981"},
	{ID: "education", Name: "Pendidikan", Icon: "academic-cap", Color: "#0ea5e9"},
	{ID: "savings", Name: "Tabungan", Icon: "banknotes", Color: "#8b5cf6"},
	{ID: "other", Name: "Lainnya", Icon: "cube", Color: "#6b7280"},
}

// IncomeCategories is the static table of income categories.
var IncomeCategories = []Category{
	{ID: "salary", Name: "Gaji", Icon: "banknotes", Color: "#10b981"},
	{ID: "freelance", Name: "Freelance", Icon: "computer-desktop", Color: "#3b82f6"},
	{ID: "investment", Name: "Investasi", Icon: "arrow-trending-up", Color: "#8b5cf6"},
	{ID: "gift", Name: "Hadiah", Icon: "gift", Color: "#ec4899"},
	{ID: "other", Name: "Lainnya", Icon: "cube", Color: "#6b7280"},
}

// CategorySavings is the expense category used when contributing to a
// savings goal.
const CategorySavings = "savings"

// CategoryInfo resolves a category key to its display metadata. The lookup
// is total: unknown keys resolve to the table's final catch-all entry.
func CategoryInfo(id string, typ TransactionType) Category {
	table := ExpenseCategories
	if typ == TypeIncome {
		table = IncomeCategories
	}
	for _, c := range table {
		if c.ID == id {
			return c
		}
	}
	return table[len(table)-1]
}

// Categories returns the static table for the given transaction type.
func Categories(typ TransactionType) []Category {
	if typ == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// KnownCategory reports whether id appears in the table for typ.
func KnownCategory(id string, typ TransactionType) bool {
	for _, c := range Categories(typ) {
		if c.ID == id {
			return true
		}
	}
	return false
}
