package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Inspect expense categories",
		Long:    `List the categories expenses have been recorded under. Categories are created automatically on first use.`,
	}

	cmd.AddCommand(listCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			categories, err := lgr.Categories(ctx)
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println("No categories yet. They are created when you add an expense.")
				return nil
			}

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 20))

			for _, cat := range categories {
				fmt.Fprintf(w, "%d\t%s\n", cat.ID, cat.Name)
			}
			return nil
		},
	}
}
