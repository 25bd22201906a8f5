// Package storage provides the data persistence layer for fintrack.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrInvalidDateRange    = errors.New("start date must be before end date")
	ErrInvalidExpense      = errors.New("invalid expense")
	ErrInvalidSubscription = errors.New("invalid subscription")
	ErrInvalidMonth        = errors.New("invalid month")
	ErrInvalidLimit        = errors.New("invalid budget limit")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMonth ensures a month key is usable.
func validateMonth(m model.Month) error {
	if m.IsZero() {
		return fmt.Errorf("%w: zero value", ErrInvalidMonth)
	}
	return nil
}

// validateExpense validates an expense before it is written.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if strings.TrimSpace(expense.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidExpense)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if expense.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	if expense.CategoryID <= 0 {
		return fmt.Errorf("%w: missing category", ErrInvalidExpense)
	}
	return nil
}

// validateSubscription validates a subscription before it is written.
func validateSubscription(sub *model.Subscription) error {
	if sub == nil {
		return fmt.Errorf("%w: subscription", ErrNilParameter)
	}
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidSubscription)
	}
	if sub.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidSubscription)
	}
	if sub.NextDue.IsZero() {
		return fmt.Errorf("%w: missing next due date", ErrInvalidSubscription)
	}
	return nil
}
