package ledger

import (
	"context"
	"fmt"

	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/model"
)

// BudgetBand classifies how much of a monthly budget has been spent.
type BudgetBand string

// Budget bands. The boundaries are inclusive on the lower edge: exactly 80%
// is CAUTION, exactly 100% is OVER BUDGET.
const (
	BudgetGood    BudgetBand = "GOOD"
	BudgetCaution BudgetBand = "CAUTION"
	BudgetOver    BudgetBand = "OVER BUDGET"
)

// budgetBandFor maps a spent percentage onto exactly one band.
func budgetBandFor(percent float64) BudgetBand {
	switch {
	case percent < 80:
		return BudgetGood
	case percent < 100:
		return BudgetCaution
	default:
		return BudgetOver
	}
}

// BudgetStatus reports a month's budget against its actual spending.
type BudgetStatus struct {
	Band    BudgetBand
	Month   model.Month
	Limit   float64
	Spent   float64
	Percent float64
}

// SetBudget sets the spending limit for a month, overwriting any existing
// limit. A zero month defaults to the current one.
func (l *Ledger) SetBudget(ctx context.Context, limit float64, month model.Month) (*model.Budget, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: budget limit must be positive, got %v", common.ErrInvalidInput, limit)
	}
	if month.IsZero() {
		month = l.currentMonth()
	}

	budget, err := l.store.UpsertBudget(ctx, month, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to set budget: %w", err)
	}
	return budget, nil
}

// BudgetStatus computes spending against the month's budget. A zero month
// defaults to the current one. When no budget is set it returns (nil, nil):
// a normal negative outcome the caller reports as "no budget set".
func (l *Ledger) BudgetStatus(ctx context.Context, month model.Month) (*BudgetStatus, error) {
	if month.IsZero() {
		month = l.currentMonth()
	}

	budget, err := l.store.GetBudget(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to look up budget: %w", err)
	}
	if budget == nil {
		return nil, nil
	}

	spent, err := l.store.SumExpensesForMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly expenses: %w", err)
	}

	// SetBudget guarantees a positive limit, but a zero limit must read as
	// 0% rather than divide by zero.
	percent := 0.0
	if budget.Limit > 0 {
		percent = spent / budget.Limit * 100
	}

	return &BudgetStatus{
		Month:   month,
		Limit:   budget.Limit,
		Spent:   spent,
		Percent: percent,
		Band:    budgetBandFor(percent),
	}, nil
}
