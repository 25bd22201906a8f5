package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/config"
	"github.com/fintrack-cli/fintrack/internal/ledger"
	"github.com/fintrack-cli/fintrack/internal/model"
	"github.com/fintrack-cli/fintrack/internal/service"
	"github.com/fintrack-cli/fintrack/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initLedger opens the store and wraps it in a Ledger. The returned cleanup
// closes the store.
func initLedger(ctx context.Context) (*ledger.Ledger, func(), error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store), func() { _ = store.Close() }, nil
}

// currencySymbol returns the configured currency symbol for output.
func currencySymbol() string {
	return viper.GetString("currency.symbol")
}

// parseAmount parses a positive decimal amount from user input.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", common.ErrInvalidInput, s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %v", common.ErrInvalidInput, amount)
	}
	return amount, nil
}

// parseMonthFlag parses an optional --month value; empty means "current
// month" and is returned as the zero Month.
func parseMonthFlag(s string) (model.Month, error) {
	if strings.TrimSpace(s) == "" {
		return model.Month{}, nil
	}
	return model.ParseMonth(s)
}
