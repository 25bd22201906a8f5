package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set and check monthly budgets",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(budgetStatusCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "set <limit>",
		Short: "Set the spending limit for a month",
		Long:  `Set the monthly budget limit. Setting a budget for a month that already has one overwrites it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			month, err := parseMonthFlag(monthStr)
			if err != nil {
				return err
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			budget, err := lgr.SetBudget(ctx, limit, month)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget set for %s: %s",
				budget.Month, cli.FormatAmount(currencySymbol(), budget.Limit))))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "month to budget (YYYY-MM, default current)")
	return cmd
}

func budgetStatusCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show spending against the monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := parseMonthFlag(monthStr)
			if err != nil {
				return err
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			status, err := lgr.BudgetStatus(ctx, month)
			if err != nil {
				return err
			}
			if status == nil {
				fmt.Println("No budget set for this month. Use 'fintrack budget set' to set one.")
				return nil
			}

			symbol := currencySymbol()
			fmt.Printf("Budget %s: %s\n", status.Month, cli.FormatAmount(symbol, status.Limit))
			fmt.Printf("Spent:          %s (%.1f%%)\n", cli.FormatAmount(symbol, status.Spent), status.Percent)
			fmt.Println(cli.BudgetBandStyle(status.Band).Render(fmt.Sprintf("Status: %s", status.Band)))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "month to check (YYYY-MM, default current)")
	return cmd
}
