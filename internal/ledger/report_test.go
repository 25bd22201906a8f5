package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fintrack-cli/fintrack/internal/model"
)

func TestCategoryReport(t *testing.T) {
	lgr, store := newTestLedger(t)
	ctx := context.Background()

	_, err := lgr.AddExpense(ctx, "Coffee", 150.0, "Food", date(2024, time.January, 5))
	require.NoError(t, err)
	_, err = lgr.AddExpense(ctx, "Rent", 10000.0, "Housing", date(2024, time.January, 1))
	require.NoError(t, err)

	month, err := model.ParseMonth("2024-01")
	require.NoError(t, err)

	report, err := lgr.CategoryReport(ctx, month)
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	require.Equal(t, "housing", report.Rows[0].Category)
	require.InDelta(t, 10000.0, report.Rows[0].Total, 1e-9)
	require.Equal(t, "food", report.Rows[1].Category)
	require.InDelta(t, 150.0, report.Rows[1].Total, 1e-9)
	require.InDelta(t, 10150.0, report.Total, 1e-9)

	// The report total matches the independent monthly sum.
	sum, err := store.SumExpensesForMonth(ctx, month)
	require.NoError(t, err)
	require.InDelta(t, sum, report.Total, 1e-9)
}

func TestCategoryReport_ExcludesZeroRows(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := lgr.AddExpense(ctx, "Coffee", 150.0, "food", date(2024, time.January, 5))
	require.NoError(t, err)
	// This category only has February spending.
	_, err = lgr.AddExpense(ctx, "Flight", 8000.0, "travel", date(2024, time.February, 2))
	require.NoError(t, err)

	month, err := model.ParseMonth("2024-01")
	require.NoError(t, err)

	report, err := lgr.CategoryReport(ctx, month)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	require.Equal(t, "food", report.Rows[0].Category)
}

func TestCategoryReport_NoSpending(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	// Create a category with no expenses in the requested month.
	_, err := lgr.ResolveCategory(ctx, "food")
	require.NoError(t, err)

	month, err := model.ParseMonth("2024-06")
	require.NoError(t, err)

	report, err := lgr.CategoryReport(ctx, month)
	require.NoError(t, err, "no spending is a valid outcome")
	require.Empty(t, report.Rows)
	require.Zero(t, report.Total)
}

func TestCategoryReport_DefaultsToCurrentMonth(t *testing.T) {
	lgr, _ := newTestLedger(t)
	ctx := context.Background()

	_, err := lgr.AddExpense(ctx, "Coffee", 150.0, "food", time.Time{})
	require.NoError(t, err)

	report, err := lgr.CategoryReport(ctx, model.Month{})
	require.NoError(t, err)
	require.Equal(t, "2024-01", report.Month.String())
	require.InDelta(t, 150.0, report.Total, 1e-9)
}
