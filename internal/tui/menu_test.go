package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuActionsCoverAllOperations(t *testing.T) {
	actions := menuActions()
	require.Len(t, actions, 9)

	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.name
		require.NotNil(t, a.run, "action %q has no run function", a.name)
	}

	assert.Contains(t, names, "Add Expense")
	assert.Contains(t, names, "Delete Expense")
	assert.Contains(t, names, "List Recent Expenses")
	assert.Contains(t, names, "Search Expenses by Date Range")
	assert.Contains(t, names, "Category Report")
	assert.Contains(t, names, "Budget Status")
	assert.Contains(t, names, "Set Monthly Budget")
	assert.Contains(t, names, "Add Subscription")
	assert.Contains(t, names, "Show Upcoming Subscriptions")
}

func TestDigitIndex(t *testing.T) {
	assert.Equal(t, 0, digitIndex("1"))
	assert.Equal(t, 8, digitIndex("9"))
	assert.Equal(t, -1, digitIndex("0"))
	assert.Equal(t, -1, digitIndex("a"))
	assert.Equal(t, -1, digitIndex("12"))
}

func TestMenuNavigation(t *testing.T) {
	m := newModel(Config{Symbol: "₹"})
	require.Equal(t, StateMenu, m.state)
	require.Equal(t, 0, m.cursor)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	// Cursor does not move past the top.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestMenuSelectOpensForm(t *testing.T) {
	m := newModel(Config{Symbol: "₹"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Equal(t, StateForm, m.state)
	require.NotNil(t, m.action)
	assert.Equal(t, "Add Expense", m.action.name)
	assert.Len(t, m.inputs, 4)

	// Escape returns to the menu.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, StateMenu, m.state)
	assert.Nil(t, m.inputs)
}

func TestMenuView(t *testing.T) {
	m := newModel(Config{Symbol: "₹"})
	view := m.View()

	assert.True(t, strings.Contains(view, "Personal Finance Manager"))
	assert.True(t, strings.Contains(view, "Add Expense"))
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "0"} {
		m := newModel(Config{})
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		m = next.(Model)
		assert.True(t, m.quitting, "key %q should quit", key)
		require.NotNil(t, cmd)
	}
}
