package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// CreateSubscription persists a new subscription and returns it with its
// assigned id.
func (s *SQLiteStorage) CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateSubscription(sub); err != nil {
		return nil, err
	}

	saved := *sub
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO subscriptions (name, amount, next_due)
			VALUES (?, ?, ?)`

		result, err := tx.ExecContext(ctx, query, sub.Name, sub.Amount, formatDate(sub.NextDue))
		if err != nil {
			return fmt.Errorf("failed to insert subscription: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get subscription ID: %w", err)
		}
		saved.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("saved subscription", "id", saved.ID, "name", saved.Name, "next_due", formatDate(saved.NextDue))
	return &saved, nil
}

// QueryUpcomingSubscriptions returns subscriptions due on or before the
// cutoff date, ordered by next-due ascending. There is no lower bound, so
// overdue subscriptions are always included.
func (s *SQLiteStorage) QueryUpcomingSubscriptions(ctx context.Context, cutoff time.Time) ([]model.Subscription, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if cutoff.IsZero() {
		return nil, fmt.Errorf("%w: cutoff", ErrNilParameter)
	}

	query := `
		SELECT id, name, amount, next_due
		FROM subscriptions
		WHERE next_due <= ?
		ORDER BY next_due ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, formatDate(cutoff))
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	subs, err := scanSubscriptions(rows)
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved upcoming subscriptions", "count", len(subs), "cutoff", formatDate(cutoff))
	return subs, nil
}

func scanSubscriptions(rows *sql.Rows) ([]model.Subscription, error) {
	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var due string
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Amount, &due); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}

		parsed, err := parseStoredDate(due)
		if err != nil {
			return nil, err
		}
		sub.NextDue = parsed
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}
	return subs, nil
}
