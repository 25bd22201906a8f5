package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	cat, err := store.CreateCategory(ctx, "food")
	require.NoError(t, err)
	require.NotZero(t, cat.ID)
	require.Equal(t, "food", cat.Name)

	// Creating the same name again returns the existing row.
	again, err := store.CreateCategory(ctx, "food")
	require.NoError(t, err)
	require.Equal(t, cat.ID, again.ID)
}

func TestGetCategoryByName(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	missing, err := store.GetCategoryByName(ctx, "housing")
	require.NoError(t, err)
	require.Nil(t, missing, "missing category should be a nil result, not an error")

	created, err := store.CreateCategory(ctx, "housing")
	require.NoError(t, err)

	found, err := store.GetCategoryByName(ctx, "housing")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)
}

func TestGetCategories_OrderedByName(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	for _, name := range []string{"travel", "food", "housing"} {
		_, err := store.CreateCategory(ctx, name)
		require.NoError(t, err)
	}

	categories, err := store.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "food", categories[0].Name)
	require.Equal(t, "housing", categories[1].Name)
	require.Equal(t, "travel", categories[2].Name)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.CreateCategory(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyString)
}
