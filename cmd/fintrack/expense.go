package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
	"github.com/fintrack-cli/fintrack/internal/ledger"
	"github.com/fintrack-cli/fintrack/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and inspect expenses",
		Long:  `Add, delete, list, and search recorded expenses.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(searchExpensesCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <title> <amount> <category>",
		Short: "Add a new expense",
		Long:  `Record an expense. The category is created on first use; the date defaults to today.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			// An unparsable date falls back to today, with a visible warning
			// so the fallback is never silent.
			var date time.Time
			if dateStr != "" {
				date, err = ledger.ParseDate(dateStr)
				if err != nil {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("invalid date %q, using today", dateStr)))
					date = time.Time{}
				}
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expense, err := lgr.AddExpense(ctx, args[0], amount, args[2], date)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added: %s %s (%s) on %s",
				expense.Title,
				cli.FormatAmount(currencySymbol(), expense.Amount),
				expense.CategoryName,
				expense.Date.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "expense date (YYYY-MM-DD, default today)")
	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := lgr.DeleteExpense(ctx, id)
			if err != nil {
				return err
			}
			if deleted == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Expense #%d not found.", id)))
				return nil
			}

			fmt.Println(cli.FormatWarning(fmt.Sprintf("Deleted: %s %s (%s)",
				deleted.Title,
				cli.FormatAmount(currencySymbol(), deleted.Amount),
				deleted.CategoryName)))
			return nil
		},
	}
}

func listExpensesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent expenses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses, err := lgr.ListExpenses(ctx, limit)
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println("No expenses yet.")
				return nil
			}

			fmt.Println(cli.FormatTitle("Recent Expenses"))
			printExpenseTable(expenses)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", ledger.DefaultListLimit, "maximum number of expenses to show")
	return cmd
}

func searchExpensesCmd() *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search expenses by date range",
		Long:  `List expenses within an inclusive date range. Either bound may be omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// An unparsable bound is dropped with a visible warning rather
			// than silently tightening or loosening the range.
			var from, to *time.Time
			if fromStr != "" {
				if d, err := ledger.ParseDate(fromStr); err != nil {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("invalid start date %q, ignoring this bound", fromStr)))
				} else {
					from = &d
				}
			}
			if toStr != "" {
				if d, err := ledger.ParseDate(toStr); err != nil {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("invalid end date %q, ignoring this bound", toStr)))
				} else {
					to = &d
				}
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses, err := lgr.SearchExpenses(ctx, from, to)
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Println("No expenses found in this date range.")
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Expenses found: %d", len(expenses))))
			printExpenseTable(expenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date (YYYY-MM-DD, inclusive)")
	return cmd
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("ID"),
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Title"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Category"))

	symbol := currencySymbol()
	for _, e := range expenses {
		fmt.Fprintf(w, "#%d\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Title,
			cli.FormatAmount(symbol, e.Amount),
			e.CategoryName)
	}
}
