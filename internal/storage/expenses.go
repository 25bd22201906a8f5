package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fintrack-cli/fintrack/internal/model"
	"github.com/fintrack-cli/fintrack/internal/service"
)

// CreateExpense persists a new expense and returns it with its assigned id
// and joined category name.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, expense *model.Expense) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateExpense(expense); err != nil {
		return nil, err
	}

	saved := *expense
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO expenses (title, amount, date, category_id)
			VALUES (?, ?, ?, ?)`

		result, err := tx.ExecContext(ctx, query,
			expense.Title, expense.Amount, formatDate(expense.Date), expense.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get expense ID: %w", err)
		}
		saved.ID = id

		if saved.CategoryName == "" {
			nameQuery := `SELECT name FROM categories WHERE id = ?`
			if err := tx.QueryRowContext(ctx, nameQuery, expense.CategoryID).Scan(&saved.CategoryName); err != nil {
				return fmt.Errorf("failed to resolve category name: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("saved expense", "id", saved.ID, "title", saved.Title, "amount", saved.Amount)
	return &saved, nil
}

// GetExpenseByID returns the expense with the given id, or (nil, nil) when
// it does not exist.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT e.id, e.title, e.amount, e.date, e.category_id, c.name
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = ?`

	expense, err := scanExpenseRow(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Expense not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes the expense with the given id, returning the deleted
// row so callers can echo it back to the user. Lookup and delete run in a
// single transaction; a missing id yields (nil, nil).
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var deleted *model.Expense
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			SELECT e.id, e.title, e.amount, e.date, e.category_id, c.name
			FROM expenses e
			JOIN categories c ON c.id = e.category_id
			WHERE e.id = ?`

		expense, err := scanExpenseRow(tx.QueryRowContext(ctx, query, id))
		if err == sql.ErrNoRows {
			return nil // Not found is a normal negative result
		}
		if err != nil {
			return fmt.Errorf("failed to query expense: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}
		if affected != 1 {
			return fmt.Errorf("expected to delete 1 expense, deleted %d", affected)
		}

		deleted = expense
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		slog.Debug("deleted expense", "id", deleted.ID, "title", deleted.Title)
	}
	return deleted, nil
}

// QueryExpenses returns expenses matching the query, ordered by date
// descending then id descending.
func (s *SQLiteStorage) QueryExpenses(ctx context.Context, q service.ExpenseQuery) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if q.From != nil && q.To != nil && q.To.Before(*q.From) {
		return nil, fmt.Errorf("%w: %s after %s", ErrInvalidDateRange, formatDate(*q.From), formatDate(*q.To))
	}

	query := `
		SELECT e.id, e.title, e.amount, e.date, e.category_id, c.name
		FROM expenses e
		JOIN categories c ON c.id = e.category_id`

	var args []any
	var conditions []string
	if q.From != nil {
		conditions = append(conditions, "e.date >= ?")
		args = append(args, formatDate(*q.From))
	}
	if q.To != nil {
		conditions = append(conditions, "e.date <= ?")
		args = append(args, formatDate(*q.To))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY e.date DESC, e.id DESC"
	if q.Limit > 0 {
		query += " LIMIT " + strconv.Itoa(q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// SumByCategoryForMonth returns the per-category expense totals for the
// month, ordered by total descending. Categories with no matching expenses
// appear with a zero total; callers decide whether to show them.
func (s *SQLiteStorage) SumByCategoryForMonth(ctx context.Context, month model.Month) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	query := `
		SELECT c.name, COALESCE(SUM(e.amount), 0) AS total
		FROM categories c
		LEFT JOIN expenses e ON c.id = e.category_id
			AND strftime('%Y-%m', e.date) = ?
		GROUP BY c.name
		ORDER BY total DESC`

	rows, err := s.db.QueryContext(ctx, query, month.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer rows.Close()

	var totals []model.CategoryTotal
	for rows.Next() {
		var row model.CategoryTotal
		if err := rows.Scan(&row.Category, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}
	return totals, nil
}

// SumExpensesForMonth returns the sum of all expense amounts dated in the
// month, zero if there are none.
func (s *SQLiteStorage) SumExpensesForMonth(ctx context.Context, month model.Month) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateMonth(month); err != nil {
		return 0, err
	}

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE strftime('%Y-%m', date) = ?`

	var total float64
	if err := s.db.QueryRowContext(ctx, query, month.String()).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan path.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpenseRow(row rowScanner) (*model.Expense, error) {
	var expense model.Expense
	var date string
	if err := row.Scan(&expense.ID, &expense.Title, &expense.Amount, &date,
		&expense.CategoryID, &expense.CategoryName); err != nil {
		return nil, err
	}

	parsed, err := parseStoredDate(date)
	if err != nil {
		return nil, err
	}
	expense.Date = parsed
	return &expense, nil
}

func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
