// Package service defines the interfaces between fintrack's domain
// operations and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// ExpenseQuery selects expenses for listing and searching. From and To are
// inclusive calendar-date bounds; either or both may be nil. Limit of 0
// means no cap. Results are always ordered date descending, then id
// descending, so the most recently inserted expense on a date wins ties.
type ExpenseQuery struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// Storage is the persistence boundary consumed by the domain operations.
// Implementations must wrap every mutating call in a transaction so a
// failure mid-write leaves the store untouched.
type Storage interface {
	// Categories. GetCategoryByName expects an already-normalized name and
	// returns (nil, nil) when no category exists.
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	GetCategories(ctx context.Context) ([]model.Category, error)

	// Expenses. DeleteExpense looks up and deletes atomically, returning
	// the deleted row, or (nil, nil) if the id does not exist.
	CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error)
	GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) (*model.Expense, error)
	QueryExpenses(ctx context.Context, q ExpenseQuery) ([]model.Expense, error)

	// Monthly aggregates.
	SumByCategoryForMonth(ctx context.Context, month model.Month) ([]model.CategoryTotal, error)
	SumExpensesForMonth(ctx context.Context, month model.Month) (float64, error)

	// Budgets. GetBudget returns (nil, nil) when no budget is set for the
	// month; UpsertBudget overwrites any existing limit for that month.
	GetBudget(ctx context.Context, month model.Month) (*model.Budget, error)
	UpsertBudget(ctx context.Context, month model.Month, limit float64) (*model.Budget, error)

	// Subscriptions, ordered by next-due ascending. No lower bound: rows
	// already past due are included.
	CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	QueryUpcomingSubscriptions(ctx context.Context, cutoff time.Time) ([]model.Subscription, error)

	// Lifecycle.
	Migrate(ctx context.Context) error
	Close() error
}
