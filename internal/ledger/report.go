package ledger

import (
	"context"
	"fmt"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// CategoryReport summarizes one month of spending per category. Rows with a
// zero total are excluded; the remaining rows are ordered by total
// descending. An empty Rows slice means no spending that month, which is a
// valid outcome.
type CategoryReport struct {
	Month model.Month
	Rows  []model.CategoryTotal
	Total float64
}

// CategoryReport computes the per-category spending report for the month.
// A zero month defaults to the current one.
func (l *Ledger) CategoryReport(ctx context.Context, month model.Month) (*CategoryReport, error) {
	if month.IsZero() {
		month = l.currentMonth()
	}

	totals, err := l.store.SumByCategoryForMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to build category report: %w", err)
	}

	report := &CategoryReport{Month: month}
	for _, row := range totals {
		if row.Total <= 0 {
			continue
		}
		report.Rows = append(report.Rows, row)
		report.Total += row.Total
	}
	return report, nil
}
