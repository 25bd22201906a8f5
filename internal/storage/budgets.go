package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// GetBudget returns the budget for the given month, or (nil, nil) when none
// is set.
func (s *SQLiteStorage) GetBudget(ctx context.Context, month model.Month) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	query := `
		SELECT id, month, limit_amount
		FROM budgets
		WHERE month = ?`

	var budget model.Budget
	var monthKey string
	err := s.db.QueryRowContext(ctx, query, month.String()).Scan(
		&budget.ID, &monthKey, &budget.Limit,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No budget set for this month
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget: %w", err)
	}

	parsed, err := model.ParseMonth(monthKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored month key: %w", err)
	}
	budget.Month = parsed

	return &budget, nil
}

// UpsertBudget sets the spending limit for a month, overwriting any limit
// already stored for it. The final state depends only on (month, limit).
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, month model.Month, limit float64) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %v", ErrInvalidLimit, limit)
	}

	budget := &model.Budget{Month: month, Limit: limit}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO budgets (month, limit_amount)
			VALUES (?, ?)
			ON CONFLICT(month) DO UPDATE SET limit_amount = excluded.limit_amount`

		if _, err := tx.ExecContext(ctx, query, month.String(), limit); err != nil {
			return fmt.Errorf("failed to upsert budget: %w", err)
		}

		idQuery := `SELECT id FROM budgets WHERE month = ?`
		if err := tx.QueryRowContext(ctx, idQuery, month.String()).Scan(&budget.ID); err != nil {
			return fmt.Errorf("failed to read back budget ID: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("budget set", "month", month.String(), "limit", limit)
	return budget, nil
}
