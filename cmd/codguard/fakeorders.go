package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

func fakeOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fake-orders",
		Short: "Review orders suspected to be fake",
	}

	cmd.AddCommand(fakeOrdersListCmd())
	cmd.AddCommand(fakeOrdersStatusCmd())
	cmd.AddCommand(fakeOrdersFlagCmd())
	cmd.AddCommand(fakeOrdersMessageCmd())
	cmd.AddCommand(fakeOrdersCreateCmd())
	cmd.AddCommand(fakeOrdersDeleteCmd())
	cmd.AddCommand(fakeOrdersStatsCmd())

	return cmd
}

func fakeOrdersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List suspicious orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")
			orders, err := client.FakeOrders(cmd.Context(), status)
			if err != nil {
				return fmt.Errorf("failed to list fake orders: %w", err)
			}

			coll := view.NewCollection(view.FakeOrderFields())
			coll.SetRecords(orders)
			customer, _ := cmd.Flags().GetString("customer")
			coll.SetCriterion("customer", customer)

			filtered := coll.Filtered()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(filtered)
			}

			if len(filtered) == 0 {
				fmt.Println("no fake orders match")
				return nil
			}

			for _, o := range filtered {
				suspicious := ""
				if o.Suspicious {
					suspicious = cli.FormatWarning(fmt.Sprintf("flagged ×%d", o.FlagCount))
				}
				fmt.Printf("%-12s %-20s %-14s %8.0f  %s %s\n",
					o.OrderID, o.Customer, o.Phone, o.Amount,
					cli.RenderBadge(o.Status.Badge()), suspicious)
			}
			fmt.Printf("%d order(s)\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().String("status", "all", "status page")
	cmd.Flags().String("customer", "", "filter by customer name")
	cmd.Flags().Bool("json", false, "print raw JSON")

	return cmd
}

func fakeOrdersStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move a suspicious order through the review flow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := model.FakeOrderStatus(args[1])
			if !target.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			client, err := newAPIClient(true)
			if err != nil {
				return err
			}
			note, _ := cmd.Flags().GetString("note")

			return dispatchFakeOp(cmd.Context(), client, []string{args[0]}, dispatch.Op[model.FakeOrder]{
				Action:  "review:" + string(target),
				Targets: []string{args[0]},
				Validate: func(rec model.FakeOrder) error {
					if !rec.Status.CanTransition(target) {
						return fmt.Errorf("%s -> %s: %w", rec.Status, target, common.ErrInvalidTransition)
					}
					return nil
				},
				Patch: func(rec *model.FakeOrder) { rec.Status = target },
				Call: func(ctx context.Context, ids []string) error {
					_, err := client.UpdateFakeOrderStatus(ctx, ids[0], target, note)
					return err
				},
			})
		},
	}

	cmd.Flags().String("note", "", "message to send the customer with the status change")

	return cmd
}

func fakeOrdersFlagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flag <order-id>",
		Short: "Raise an order's fraud flag count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}
			note, _ := cmd.Flags().GetString("note")

			return dispatchFakeOp(cmd.Context(), client, args, dispatch.Op[model.FakeOrder]{
				Action:  "flag",
				Targets: args,
				Patch: func(rec *model.FakeOrder) {
					rec.FlagCount++
					rec.Suspicious = true
				},
				Call: func(ctx context.Context, ids []string) error {
					order, getErr := client.FakeOrder(ctx, ids[0])
					if getErr != nil {
						return getErr
					}
					_, callErr := client.FlagFakeOrder(ctx, ids[0], order.FlagCount+1, true, note)
					return callErr
				},
			})
		},
	}

	cmd.Flags().String("note", "", "note to attach to the flag")

	return cmd
}

func fakeOrdersMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message <order-id> <text>",
		Short: "Send the customer a verification message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			sender, _ := cmd.Flags().GetString("sender")
			order, err := client.AddFakeOrderMessage(cmd.Context(), args[0], args[1], sender)
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("message sent, %d in thread", len(order.Messages))))
			return nil
		},
	}

	cmd.Flags().String("sender", "user", "message sender label")

	return cmd
}

func fakeOrdersCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new suspicious order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			orderID, _ := cmd.Flags().GetString("order")
			if orderID == "" {
				orderID = "FO-" + uuid.NewString()[:8]
			}
			customer, _ := cmd.Flags().GetString("customer")
			phone, _ := cmd.Flags().GetString("phone")
			address, _ := cmd.Flags().GetString("address")
			amount, _ := cmd.Flags().GetFloat64("amount")

			order, err := client.CreateFakeOrder(cmd.Context(), api.CreateFakeOrderRequest{
				OrderID:  orderID,
				Customer: customer,
				Phone:    phone,
				Address:  address,
				Amount:   amount,
			})
			if err != nil {
				return fmt.Errorf("failed to create fake order: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("created %s for %s", order.OrderID, order.Customer)))
			return nil
		},
	}

	cmd.Flags().String("order", "", "order identifier (generated when omitted)")
	cmd.Flags().String("customer", "", "customer name")
	cmd.Flags().String("phone", "", "customer phone")
	cmd.Flags().String("address", "", "customer address")
	cmd.Flags().Float64("amount", 0, "order amount")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func fakeOrdersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete a suspicious order record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			if err := client.DeleteFakeOrder(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete fake order: %w", err)
			}

			fmt.Println(cli.FormatSuccess("deleted " + args[0]))
			return nil
		},
	}
}

func fakeOrdersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show review flow counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			stats, err := client.FakeOrderStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}
			return printJSON(stats)
		},
	}
}

// dispatchFakeOp runs a fake-order operation through the dispatcher so the
// transition table is checked and the outcome lands in action history.
func dispatchFakeOp(ctx context.Context, client *api.Client, ids []string, op dispatch.Op[model.FakeOrder]) error {
	orders, err := client.FakeOrders(ctx, "all")
	if err != nil {
		return fmt.Errorf("failed to fetch fake orders: %w", err)
	}

	coll := view.NewCollection(view.FakeOrderFields())
	coll.SetRecords(orders)
	for _, id := range ids {
		if _, ok := coll.Get(id); !ok {
			return fmt.Errorf("fake order %s: %w", id, common.ErrNotFound)
		}
	}

	var recorder dispatch.Recorder
	if store := openHistory(); store != nil {
		defer store.Close()
		recorder = store
	}

	d := dispatch.New("fake-orders", coll, cliNotifier{}, recorder)
	return d.Dispatch(ctx, op)
}
