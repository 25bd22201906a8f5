package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/service"
	"github.com/fintrack-cli/fintrack/internal/storage"
)

// testNow is the frozen clock for ledger tests: 2024-01-15.
var testNow = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

// newTestLedger creates a ledger over a fresh SQLite store with a frozen
// clock.
func newTestLedger(t *testing.T) (*Ledger, service.Storage) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))

	return NewWithClock(store, func() time.Time { return testNow }), store
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveCategory_Normalization(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	first, err := lgr.ResolveCategory(ctx, " Food ")
	require.NoError(t, err)
	require.Equal(t, "food", first.Name)

	// Different casing and whitespace resolve to the same category.
	for _, raw := range []string{"food", "FOOD", "  fOoD"} {
		cat, err := lgr.ResolveCategory(ctx, raw)
		require.NoError(t, err)
		require.Equal(t, first.ID, cat.ID, "resolving %q should reuse the category", raw)
	}
}

func TestCategories(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	categories, err := lgr.Categories(ctx)
	require.NoError(t, err)
	require.Empty(t, categories)

	for _, name := range []string{"Transport", "food", "Rent"} {
		_, err := lgr.ResolveCategory(ctx, name)
		require.NoError(t, err)
	}

	categories, err = lgr.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// Normalized names, ordered alphabetically.
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	require.Equal(t, []string{"food", "rent", "transport"}, names)
}

func TestResolveCategory_EmptyName(t *testing.T) {
	lgr, _ := newTestLedger(t)

	_, err := lgr.ResolveCategory(context.Background(), "   ")
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestAddExpense(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	expense, err := lgr.AddExpense(ctx, "  Coffee ", 150.0, "Food", date(2024, time.January, 5))
	require.NoError(t, err)
	require.Equal(t, "Coffee", expense.Title, "title is trimmed")
	require.Equal(t, "food", expense.CategoryName)
	require.Equal(t, date(2024, time.January, 5), expense.Date)
	require.NotZero(t, expense.ID)
}

func TestAddExpense_DefaultsDateToToday(t *testing.T) {
	lgr, _ := newTestLedger(t)

	expense, err := lgr.AddExpense(context.Background(), "Coffee", 150.0, "food", time.Time{})
	require.NoError(t, err)
	require.Equal(t, date(2024, time.January, 15), expense.Date)
}

func TestAddExpense_RejectsInvalidInput(t *testing.T) {
	lgr, store := newTestLedger(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		title    string
		category string
		amount   float64
	}{
		{name: "zero amount", title: "Coffee", category: "food", amount: 0},
		{name: "negative amount", title: "Coffee", category: "food", amount: -10},
		{name: "empty title", title: "   ", category: "food", amount: 100},
		{name: "empty category", title: "Coffee", category: " ", amount: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lgr.AddExpense(ctx, tt.title, tt.amount, tt.category, time.Time{})
			require.ErrorIs(t, err, common.ErrInvalidInput)

			// No expense row may exist.
			rows, err := store.QueryExpenses(ctx, service.ExpenseQuery{})
			require.NoError(t, err)
			require.Empty(t, rows)
		})
	}
}

func TestDeleteExpense(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	expense, err := lgr.AddExpense(ctx, "Coffee", 150.0, "food", time.Time{})
	require.NoError(t, err)

	deleted, err := lgr.DeleteExpense(ctx, expense.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, "Coffee", deleted.Title)
	require.Equal(t, "food", deleted.CategoryName)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	lgr, store := newTestLedger(t)
	ctx := context.Background()

	_, err := lgr.AddExpense(ctx, "Coffee", 150.0, "food", time.Time{})
	require.NoError(t, err)

	deleted, err := lgr.DeleteExpense(ctx, 9999)
	require.NoError(t, err, "missing id is a soft result, never an error")
	require.Nil(t, deleted)

	// The store is unchanged.
	rows, err := store.QueryExpenses(ctx, service.ExpenseQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestListExpenses(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	for day := 1; day <= 20; day++ {
		_, err := lgr.AddExpense(ctx, "Snack", 10.0, "food", date(2024, time.January, day))
		require.NoError(t, err)
	}

	// Default limit caps the listing.
	expenses, err := lgr.ListExpenses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, expenses, DefaultListLimit)

	// Explicit limit, newest first.
	top, err := lgr.ListExpenses(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, date(2024, time.January, 20), top[0].Date)

	for i := 1; i < len(top); i++ {
		require.False(t, top[i].Date.After(top[i-1].Date), "dates must be descending")
	}
}

func TestListExpenses_SameDateTieBreak(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	day := date(2024, time.January, 5)
	first, err := lgr.AddExpense(ctx, "Breakfast", 80.0, "food", day)
	require.NoError(t, err)
	second, err := lgr.AddExpense(ctx, "Lunch", 120.0, "food", day)
	require.NoError(t, err)

	expenses, err := lgr.ListExpenses(ctx, 0)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	require.Equal(t, second.ID, expenses[0].ID, "most recently inserted wins the tie")
	require.Equal(t, first.ID, expenses[1].ID)
}

func TestSearchExpenses(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	for day := 1; day <= 10; day++ {
		_, err := lgr.AddExpense(ctx, "Snack", 10.0, "food", date(2024, time.January, day))
		require.NoError(t, err)
	}

	from := date(2024, time.January, 3)
	to := date(2024, time.January, 5)

	both, err := lgr.SearchExpenses(ctx, &from, &to)
	require.NoError(t, err)
	require.Len(t, both, 3)

	fromOnly, err := lgr.SearchExpenses(ctx, &from, nil)
	require.NoError(t, err)
	require.Len(t, fromOnly, 8)

	toOnly, err := lgr.SearchExpenses(ctx, nil, &to)
	require.NoError(t, err)
	require.Len(t, toOnly, 5)

	all, err := lgr.SearchExpenses(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 10)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate(" 2024-01-05 ")
	require.NoError(t, err)
	require.Equal(t, date(2024, time.January, 5), parsed)

	for _, raw := range []string{"", "05-01-2024", "2024/01/05", "not-a-date"} {
		_, err := ParseDate(raw)
		require.ErrorIs(t, err, common.ErrInvalidInput, "input %q", raw)
	}
}
