package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Follow up with unresponsive customers",
	}

	cmd.AddCommand(customersListCmd())
	cmd.AddCommand(customersActionCmd())
	cmd.AddCommand(customersRemindersCmd())
	cmd.AddCommand(customersResolvedCmd())
	cmd.AddCommand(customersStatsCmd())

	return cmd
}

func customersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers whose confirmation stalled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")
			customers, err := client.UnresponsiveCustomers(cmd.Context(), status)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			coll := view.NewCollection(view.CustomerFields())
			coll.SetRecords(customers)
			for _, field := range []string{"name", "phone", "stage"} {
				value, _ := cmd.Flags().GetString(field)
				coll.SetCriterion(field, value)
			}

			filtered := coll.Filtered()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(filtered)
			}

			if len(filtered) == 0 {
				fmt.Println("no customers match")
				return nil
			}

			for _, c := range filtered {
				fmt.Printf("%-20s %-14s %-12s %3dd  %s %s\n",
					c.Name, c.Phone, c.OrderNumber, c.DaysSinceOrder,
					cli.RenderBadge(c.Status.Badge()),
					cli.RenderBadge(c.Stage.Badge()))
			}
			fmt.Printf("%d customer(s)\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().String("status", "", "server-side status filter")
	cmd.Flags().String("name", "", "filter by name")
	cmd.Flags().String("phone", "", "filter by phone")
	cmd.Flags().String("stage", "", "filter by flow stage")
	cmd.Flags().Bool("json", false, "print raw JSON")

	return cmd
}

func customersActionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action <customer-id> <action>",
		Short: "Run a follow-up action on a customer",
		Long: `Run a follow-up action on an unresponsive customer.

Actions: send_reminder, call_customer, mark_resolved`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action := model.CustomerAction(args[1])
			if !action.Valid() {
				return fmt.Errorf("unknown action %q (send_reminder, call_customer, mark_resolved)", args[1])
			}

			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			note, _ := cmd.Flags().GetString("note")
			result, err := client.UpdateCustomerAction(cmd.Context(), args[0], action, note)
			if err != nil {
				return fmt.Errorf("failed to run %s: %w", action, err)
			}

			fmt.Println(cli.FormatSuccess(result.Message))
			return nil
		},
	}

	cmd.Flags().String("note", "", "note to record with the action")

	return cmd
}

func customersRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "Show the reminder send history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			records, err := client.ReminderHistory(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch reminders: %w", err)
			}
			return printJSON(records)
		},
	}
}

func customersResolvedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolved",
		Short: "Show customers whose follow-up completed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			records, err := client.ResolvedCustomers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch resolved customers: %w", err)
			}
			return printJSON(records)
		},
	}
}

func customersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show follow-up counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			unresponsive, err := client.UnresponsiveStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch unresponsive stats: %w", err)
			}
			reminders, err := client.ReminderStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch reminder stats: %w", err)
			}
			resolved, err := client.ResolvedStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch resolved stats: %w", err)
			}

			return printJSON(map[string]any{
				"unresponsive": unresponsive,
				"reminders":    reminders,
				"resolved":     resolved,
			})
		},
	}
}
