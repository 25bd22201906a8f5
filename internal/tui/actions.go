package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fintrack-cli/fintrack/internal/cli"
	"github.com/fintrack-cli/fintrack/internal/common"
	"github.com/fintrack-cli/fintrack/internal/ledger"
	"github.com/fintrack-cli/fintrack/internal/model"
)

// field is one prompted input of a menu action.
type field struct {
	label       string
	placeholder string
}

// action is one entry of the menu: its prompts and the operation they feed.
type action struct {
	run    func(cfg Config, values []string) (string, error)
	name   string
	fields []field
}

func menuActions() []action {
	return []action{
		{
			name: "Add Expense",
			fields: []field{
				{label: "Title", placeholder: "Coffee"},
				{label: "Amount", placeholder: "150.00"},
				{label: "Category", placeholder: "Food"},
				{label: "Date (optional)", placeholder: "YYYY-MM-DD"},
			},
			run: runAddExpense,
		},
		{
			name:   "Delete Expense",
			fields: []field{{label: "Expense ID", placeholder: "42"}},
			run:    runDeleteExpense,
		},
		{
			name:   "List Recent Expenses",
			fields: []field{{label: "Limit (optional)", placeholder: "15"}},
			run:    runListExpenses,
		},
		{
			name: "Search Expenses by Date Range",
			fields: []field{
				{label: "Start date (optional)", placeholder: "YYYY-MM-DD"},
				{label: "End date (optional)", placeholder: "YYYY-MM-DD"},
			},
			run: runSearchExpenses,
		},
		{
			name:   "Category Report",
			fields: []field{{label: "Month (optional)", placeholder: "YYYY-MM"}},
			run:    runCategoryReport,
		},
		{
			name:   "Budget Status",
			fields: []field{{label: "Month (optional)", placeholder: "YYYY-MM"}},
			run:    runBudgetStatus,
		},
		{
			name: "Set Monthly Budget",
			fields: []field{
				{label: "Limit", placeholder: "5000"},
				{label: "Month (optional)", placeholder: "YYYY-MM"},
			},
			run: runSetBudget,
		},
		{
			name: "Add Subscription",
			fields: []field{
				{label: "Name", placeholder: "Netflix"},
				{label: "Amount", placeholder: "499"},
				{label: "Next due date", placeholder: "YYYY-MM-DD"},
			},
			run: runAddSubscription,
		},
		{
			name:   "Show Upcoming Subscriptions",
			fields: []field{{label: "Days ahead (optional)", placeholder: "30"}},
			run:    runUpcomingSubscriptions,
		},
	}
}

func parsePositiveAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", common.ErrInvalidInput, s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %v", common.ErrInvalidInput, amount)
	}
	return amount, nil
}

func parseOptionalMonth(s string) (model.Month, error) {
	if strings.TrimSpace(s) == "" {
		return model.Month{}, nil
	}
	return model.ParseMonth(s)
}

func runAddExpense(cfg Config, values []string) (string, error) {
	ctx := context.Background()

	amount, err := parsePositiveAmount(values[1])
	if err != nil {
		return "", err
	}

	var warning string
	var date time.Time
	if values[3] != "" {
		date, err = ledger.ParseDate(values[3])
		if err != nil {
			warning = cli.FormatWarning(fmt.Sprintf("invalid date %q, using today", values[3])) + "\n"
			date = time.Time{}
		}
	}

	expense, err := cfg.Ledger.AddExpense(ctx, values[0], amount, values[2], date)
	if err != nil {
		return "", err
	}

	return warning + cli.FormatSuccess(fmt.Sprintf("Added: %s %s (%s) on %s",
		expense.Title,
		cli.FormatAmount(cfg.Symbol, expense.Amount),
		expense.CategoryName,
		expense.Date.Format("2006-01-02"))), nil
}

func runDeleteExpense(cfg Config, values []string) (string, error) {
	id, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: invalid expense id %q", common.ErrInvalidInput, values[0])
	}

	deleted, err := cfg.Ledger.DeleteExpense(context.Background(), id)
	if err != nil {
		return "", err
	}
	if deleted == nil {
		return cli.FormatWarning(fmt.Sprintf("Expense #%d not found.", id)), nil
	}

	return cli.FormatWarning(fmt.Sprintf("Deleted: %s %s (%s)",
		deleted.Title,
		cli.FormatAmount(cfg.Symbol, deleted.Amount),
		deleted.CategoryName)), nil
}

func runListExpenses(cfg Config, values []string) (string, error) {
	limit := 0
	if values[0] != "" {
		parsed, err := strconv.Atoi(values[0])
		if err != nil {
			return "", fmt.Errorf("%w: invalid limit %q", common.ErrInvalidInput, values[0])
		}
		limit = parsed
	}

	expenses, err := cfg.Ledger.ListExpenses(context.Background(), limit)
	if err != nil {
		return "", err
	}
	if len(expenses) == 0 {
		return "No expenses yet.", nil
	}

	return titleStyle.Render("Recent Expenses") + "\n" + renderExpenses(cfg.Symbol, expenses), nil
}

func runSearchExpenses(cfg Config, values []string) (string, error) {
	var notes []string
	var from, to *time.Time

	// An unparsable bound is dropped with a visible note, never silently
	// applied.
	if values[0] != "" {
		if d, err := ledger.ParseDate(values[0]); err != nil {
			notes = append(notes, cli.FormatWarning(fmt.Sprintf("invalid start date %q, ignoring this bound", values[0])))
		} else {
			from = &d
		}
	}
	if values[1] != "" {
		if d, err := ledger.ParseDate(values[1]); err != nil {
			notes = append(notes, cli.FormatWarning(fmt.Sprintf("invalid end date %q, ignoring this bound", values[1])))
		} else {
			to = &d
		}
	}

	expenses, err := cfg.Ledger.SearchExpenses(context.Background(), from, to)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, note := range notes {
		b.WriteString(note + "\n")
	}
	if len(expenses) == 0 {
		b.WriteString("No expenses found in this date range.")
		return b.String(), nil
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Expenses found: %d", len(expenses))))
	b.WriteString("\n")
	b.WriteString(renderExpenses(cfg.Symbol, expenses))
	return b.String(), nil
}

func runCategoryReport(cfg Config, values []string) (string, error) {
	month, err := parseOptionalMonth(values[0])
	if err != nil {
		return "", err
	}

	report, err := cfg.Ledger.CategoryReport(context.Background(), month)
	if err != nil {
		return "", err
	}
	if len(report.Rows) == 0 {
		return fmt.Sprintf("No spending in %s", report.Month), nil
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Category Report – %s", report.Month)))
	b.WriteString("\n")
	for _, row := range report.Rows {
		b.WriteString(fmt.Sprintf("%-18s %10s\n", row.Category, cli.FormatAmount(cfg.Symbol, row.Total)))
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s %10s", "Total", cli.FormatAmount(cfg.Symbol, report.Total))))
	return b.String(), nil
}

func runBudgetStatus(cfg Config, values []string) (string, error) {
	month, err := parseOptionalMonth(values[0])
	if err != nil {
		return "", err
	}

	status, err := cfg.Ledger.BudgetStatus(context.Background(), month)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "No budget set for this month. Use 'Set Monthly Budget' to set one.", nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Budget %s: %s\n", status.Month, cli.FormatAmount(cfg.Symbol, status.Limit)))
	b.WriteString(fmt.Sprintf("Spent:          %s (%.1f%%)\n", cli.FormatAmount(cfg.Symbol, status.Spent), status.Percent))
	b.WriteString(cli.BudgetBandStyle(status.Band).Render(fmt.Sprintf("Status: %s", status.Band)))
	return b.String(), nil
}

func runSetBudget(cfg Config, values []string) (string, error) {
	limit, err := parsePositiveAmount(values[0])
	if err != nil {
		return "", err
	}
	month, err := parseOptionalMonth(values[1])
	if err != nil {
		return "", err
	}

	budget, err := cfg.Ledger.SetBudget(context.Background(), limit, month)
	if err != nil {
		return "", err
	}

	return cli.FormatSuccess(fmt.Sprintf("Budget set for %s: %s",
		budget.Month, cli.FormatAmount(cfg.Symbol, budget.Limit))), nil
}

func runAddSubscription(cfg Config, values []string) (string, error) {
	amount, err := parsePositiveAmount(values[1])
	if err != nil {
		return "", err
	}
	nextDue, err := ledger.ParseDate(values[2])
	if err != nil {
		return "", err
	}

	sub, err := cfg.Ledger.AddSubscription(context.Background(), values[0], amount, nextDue)
	if err != nil {
		return "", err
	}

	return cli.FormatSuccess(fmt.Sprintf("Subscription added: %s %s due on %s",
		sub.Name,
		cli.FormatAmount(cfg.Symbol, sub.Amount),
		sub.NextDue.Format("2006-01-02"))), nil
}

func runUpcomingSubscriptions(cfg Config, values []string) (string, error) {
	days := 0
	if values[0] != "" {
		parsed, err := strconv.Atoi(values[0])
		if err != nil {
			return "", fmt.Errorf("%w: invalid day count %q", common.ErrInvalidInput, values[0])
		}
		days = parsed
	}
	if days <= 0 {
		days = ledger.DefaultUpcomingDays
	}

	upcoming, err := cfg.Ledger.UpcomingSubscriptions(context.Background(), days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No subscriptions due in next %d days.", days), nil
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Upcoming Subscriptions (next %d days)", days)))
	b.WriteString("\n")
	for _, u := range upcoming {
		line := fmt.Sprintf("%-20s %8s  %s (%s)",
			u.Subscription.Name,
			cli.FormatAmount(cfg.Symbol, u.Subscription.Amount),
			u.Subscription.NextDue.Format("2006-01-02"),
			cli.DueText(u.DaysLeft))
		b.WriteString(cli.DueBandStyle(u.Band).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func renderExpenses(symbol string, expenses []model.Expense) string {
	var b strings.Builder
	for _, e := range expenses {
		b.WriteString(fmt.Sprintf("#%-4d | %s | %-25s | %10s | %s\n",
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Title,
			cli.FormatAmount(symbol, e.Amount),
			e.CategoryName))
	}
	return strings.TrimRight(b.String(), "\n")
}
