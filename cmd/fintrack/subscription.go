package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-cli/fintrack/internal/cli"
	"github.com/fintrack-cli/fintrack/internal/ledger"
)

func subscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Track recurring subscriptions",
	}

	cmd.AddCommand(addSubscriptionCmd())
	cmd.AddCommand(upcomingSubscriptionsCmd())

	return cmd
}

func addSubscriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <amount> <next-due>",
		Short: "Add a subscription",
		Long:  `Record a recurring charge with its next due date (YYYY-MM-DD). The date is not auto-advanced.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			nextDue, err := ledger.ParseDate(args[2])
			if err != nil {
				return err
			}

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sub, err := lgr.AddSubscription(ctx, args[0], amount, nextDue)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Subscription added: %s %s due on %s",
				sub.Name,
				cli.FormatAmount(currencySymbol(), sub.Amount),
				sub.NextDue.Format("2006-01-02"))))
			return nil
		},
	}
}

func upcomingSubscriptionsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show subscriptions due soon",
		Long:  `List subscriptions due within the lookahead window, soonest first. Overdue subscriptions are always included.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			lgr, cleanup, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			upcoming, err := lgr.UpcomingSubscriptions(ctx, days)
			if err != nil {
				return err
			}

			if len(upcoming) == 0 {
				fmt.Printf("No subscriptions due in next %d days.\n", days)
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Upcoming Subscriptions (next %d days)", days)))

			symbol := currencySymbol()
			for _, u := range upcoming {
				line := fmt.Sprintf("%-20s %s  %s (%s)",
					u.Subscription.Name,
					cli.FormatAmount(symbol, u.Subscription.Amount),
					u.Subscription.NextDue.Format("2006-01-02"),
					cli.DueText(u.DaysLeft))
				fmt.Println(cli.DueBandStyle(u.Band).Render(line))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", ledger.DefaultUpcomingDays, "lookahead window in days")
	return cmd
}
