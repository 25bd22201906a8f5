package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  `Apply any pending schema migrations. Commands run migrations automatically; this makes the step explicit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// initStorage already runs migrations
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.FormatSuccess("Database schema is up to date."))
			return nil
		},
	}
}
