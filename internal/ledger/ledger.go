// Package ledger implements fintrack's domain operations: the user-facing
// actions over expenses, categories, budgets, and subscriptions. Each
// operation validates its inputs at the boundary, performs the store call,
// and computes any derived values the presentation layer renders.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/model"
	"github.com/fintrack-cli/fintrack/internal/service"
)

// DefaultListLimit caps expense listings when the caller does not supply a
// limit.
const DefaultListLimit = 15

// Ledger executes domain operations against an explicit store handle. The
// clock is injectable so month defaults and day counts are testable.
type Ledger struct {
	store service.Storage
	now   func() time.Time
}

// New creates a Ledger over the given store using the wall clock.
func New(store service.Storage) *Ledger {
	return NewWithClock(store, time.Now)
}

// NewWithClock creates a Ledger with an explicit clock.
func NewWithClock(store service.Storage, now func() time.Time) *Ledger {
	return &Ledger{store: store, now: now}
}

// today returns the current calendar date at UTC midnight, matching the
// representation of dates read back from the store.
func (l *Ledger) today() time.Time {
	t := l.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// currentMonth returns the month containing today.
func (l *Ledger) currentMonth() model.Month {
	return model.MonthOf(l.now())
}

// ResolveCategory returns the category with the given name, creating it if
// it does not exist yet. The name is normalized (trimmed, lowercased) before
// comparison, so " Food ", "food", and "FOOD" all resolve to one category.
func (l *Ledger) ResolveCategory(ctx context.Context, name string) (*model.Category, error) {
	normalized := model.NormalizeCategoryName(name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", common.ErrInvalidInput)
	}

	category, err := l.store.GetCategoryByName(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category != nil {
		return category, nil
	}

	category, err = l.store.CreateCategory(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// AddExpense records a new expense. The title is trimmed, the amount must be
// positive, and a zero date defaults to today. The category is resolved or
// created on demand.
func (l *Ledger) AddExpense(ctx context.Context, title string, amount float64, categoryName string, date time.Time) (*model.Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrInvalidInput)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %v", common.ErrInvalidInput, amount)
	}

	category, err := l.ResolveCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = l.today()
	}

	expense := &model.Expense{
		Title:        title,
		Amount:       amount,
		Date:         date,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}

	saved, err := l.store.CreateExpense(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return saved, nil
}

// DeleteExpense removes the expense with the given id and returns the
// deleted row for confirmation. A missing id yields (nil, nil): not found is
// a normal negative outcome, not a failure.
func (l *Ledger) DeleteExpense(ctx context.Context, id int64) (*model.Expense, error) {
	deleted, err := l.store.DeleteExpense(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}
	return deleted, nil
}

// ListExpenses returns the most recent expenses, date descending with id
// descending as the tie-break, capped at limit (DefaultListLimit when
// limit <= 0). An empty result is not an error.
func (l *Ledger) ListExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	expenses, err := l.store.QueryExpenses(ctx, service.ExpenseQuery{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// SearchExpenses returns expenses within the inclusive date range, newest
// first. Either bound may be nil; a bound the caller could not parse must be
// passed as nil and reported to the user, never silently applied.
func (l *Ledger) SearchExpenses(ctx context.Context, from, to *time.Time) ([]model.Expense, error) {
	expenses, err := l.store.QueryExpenses(ctx, service.ExpenseQuery{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to search expenses: %w", err)
	}
	return expenses, nil
}

// Categories returns all known categories ordered by name.
func (l *Ledger) Categories(ctx context.Context) ([]model.Category, error) {
	categories, err := l.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ParseDate parses user input in YYYY-MM-DD form into a calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q (use YYYY-MM-DD)", common.ErrInvalidInput, s)
	}
	return t, nil
}
