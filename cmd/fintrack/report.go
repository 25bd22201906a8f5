package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
)

func reportCmd() *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Per-category spending report for a month",
		Long:  `Show the sum of expenses per category for a month, ordered by total. Defaults to the current month.`,
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

			report, err := lgr.CategoryReport(ctx, month)
			if err != nil {
				return err
			}

			if len(report.Rows) == 0 {
				fmt.Printf("No spending in %s\n", report.Month)
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Category Report – %s", report.Month)))

			symbol := currencySymbol()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, row := range report.Rows {
				fmt.Fprintf(w, "%s\t%s\n", row.Category, cli.FormatAmount(symbol, row.Total))
			}
			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render(cli.FormatAmount(symbol, report.Total)))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "month to report on (YYYY-MM, default current)")
	return cmd
}
