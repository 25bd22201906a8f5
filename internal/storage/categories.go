package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack-cli/fintrack/internal/model"
)

// GetCategories returns all categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns the category with the given normalized name, or
// (nil, nil) when no such category exists.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at
		FROM categories
		WHERE name = ?`

	var cat model.Category
	err := s.db.QueryRowContext(ctx, query, name).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil // Category not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &cat, nil
}

// CreateCategory creates a new category with the given normalized name. If a
// category with that name already exists it is returned unchanged, so the
// call is safe to race with itself across menu actions.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var category *model.Category
	created := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		existingQuery := `
			SELECT id, name, created_at
			FROM categories
			WHERE name = ?`

		var existing model.Category
		err := tx.QueryRowContext(ctx, existingQuery, name).Scan(
			&existing.ID, &existing.Name, &existing.CreatedAt,
		)

		if err == nil {
			category = &existing
			return nil
		} else if err != sql.ErrNoRows {
			return fmt.Errorf("failed to check existing category: %w", err)
		}

		insertQuery := `
			INSERT INTO categories (name, created_at)
			VALUES (?, ?)`

		now := time.Now()
		result, err := tx.ExecContext(ctx, insertQuery, name, now)
		if err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get category ID: %w", err)
		}

		category = &model.Category{
			ID:        int(id),
			Name:      name,
			CreatedAt: now,
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		slog.Info("created new category", "name", name, "id", category.ID)
	}
	return category, nil
}
