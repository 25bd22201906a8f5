package main

import (
	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/tui"
)

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu mode",
		Long:  `Run fintrack as an interactive numbered menu, prompting for each field.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lgr, cleanup, err := initLedger(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(tui.Config{
				Ledger: lgr,
				Symbol: currencySymbol(),
			})
		},
	}
}
