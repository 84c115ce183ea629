package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Confirm, cancel and book COD orders",
	}

	cmd.AddCommand(ordersListCmd())
	cmd.AddCommand(ordersShowCmd())
	cmd.AddCommand(ordersBulkCmd("confirm", "Confirm pending orders"))
	cmd.AddCommand(ordersBulkCmd("cancel", "Mark orders unconfirmed"))
	cmd.AddCommand(ordersBookCmd())
	cmd.AddCommand(ordersStatusCmd())
	cmd.AddCommand(ordersStatsCmd())

	return cmd
}

func ordersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE:  runOrdersList,
	}

	cmd.Flags().String("status", "all", "status page (all, pending, confirmed, unconfirmed)")
	cmd.Flags().String("customer", "", "filter by customer name")
	cmd.Flags().String("phone", "", "filter by phone")
	cmd.Flags().String("tracking", "", "filter by tracking id")
	cmd.Flags().String("address", "", "filter by address")
	cmd.Flags().Bool("json", false, "print raw JSON")

	return cmd
}

func runOrdersList(cmd *cobra.Command, _ []string) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}

	status, _ := cmd.Flags().GetString("status")
	orders, err := client.Orders(cmd.Context(), status)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	coll := view.NewCollection(view.OrderFields())
	coll.SetRecords(orders)
	for _, field := range []string{"customer", "phone", "tracking", "address"} {
		value, _ := cmd.Flags().GetString(field)
		coll.SetCriterion(field, value)
	}

	filtered := coll.Filtered()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(filtered)
	}

	if len(filtered) == 0 {
		fmt.Println("no orders match")
		return nil
	}

	for _, o := range filtered {
		fmt.Printf("%-12s %-24s %-14s %8.0f  %s %s\n",
			o.OrderID, o.Customer, o.Phone, o.TotalPrice,
			cli.RenderBadge(o.Status.Badge()),
			courierCell(o))
	}
	fmt.Printf("%d order(s)\n", len(filtered))
	return nil
}

func ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order with its confirmation history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			order, err := client.Order(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch order: %w", err)
			}

			fmt.Printf("%s  %s\n", order.OrderID, cli.RenderBadge(order.Status.Badge()))
			fmt.Printf("customer  %s (%s)\n", order.Customer, order.Phone)
			if order.Address != "" {
				fmt.Printf("address   %s\n", order.Address)
			}
			fmt.Printf("amount    %.0f\n", order.TotalPrice)
			if order.Tracking != "" {
				fmt.Printf("tracking  %s\n", order.Tracking)
			}
			if order.DeliveryState != "" {
				fmt.Printf("delivery  %s\n", cli.RenderBadge(order.DeliveryState.Badge()))
			}
			for _, entry := range order.History {
				fmt.Printf("  %s  %s: %s\n", entry.Timestamp, entry.Type, entry.Content)
			}
			return nil
		},
	}
}

func courierCell(o model.Order) string {
	if o.AssignedCourier == "" || o.AssignedCourier == model.CourierNone {
		return ""
	}
	return cli.RenderBadge(o.AssignedCourier.Badge())
}

// ordersBulkCmd builds the confirm and cancel commands; both are one bulk
// call over the ids given as arguments.
func ordersBulkCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <order-id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call := func(client *api.Client) dispatch.Call {
				if action == "confirm" {
					return func(ctx context.Context, ids []string) error {
						_, err := client.ConfirmOrders(ctx, ids)
						return err
					}
				}
				return func(ctx context.Context, ids []string) error {
					_, err := client.CancelOrders(ctx, ids)
					return err
				}
			}

			patch := func(o *model.Order) { o.Status = model.OrderConfirmed }
			if action == "cancel" {
				patch = func(o *model.Order) { o.Status = model.OrderUnconfirmed }
			}

			return dispatchOrderOp(cmd.Context(), args, action, call, patch)
		},
	}
}

func ordersBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book <order-id>...",
		Short: "Book orders with a courier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courier, _ := cmd.Flags().GetString("courier")

			var action string
			var patch func(*model.Order)
			call := func(client *api.Client) dispatch.Call {
				switch courier {
				case "postex":
					return func(ctx context.Context, ids []string) error {
						_, err := client.BookWithPostex(ctx, ids)
						return err
					}
				case "leopard":
					return func(ctx context.Context, ids []string) error {
						_, err := client.BookWithLeopard(ctx, ids)
						return err
					}
				default:
					return func(ctx context.Context, ids []string) error {
						_, err := client.BookRecommended(ctx, ids)
						return err
					}
				}
			}

			switch courier {
			case "postex":
				action = "book-with-postex"
				patch = func(o *model.Order) {
					o.AssignedCourier = model.CourierPostex
					o.DeliveryState = model.DeliveryShipped
				}
			case "leopard":
				action = "book-with-leopard"
				patch = func(o *model.Order) {
					o.AssignedCourier = model.CourierLeopard
					o.DeliveryState = model.DeliveryShipped
				}
			case "auto":
				action = "book-recommended"
				patch = func(o *model.Order) { o.DeliveryState = model.DeliveryShipped }
			default:
				return fmt.Errorf("unknown courier %q (postex, leopard, auto)", courier)
			}

			return dispatchOrderOp(cmd.Context(), args, action, call, patch)
		},
	}

	cmd.Flags().String("courier", "auto", "courier to book with (postex, leopard, auto)")

	return cmd
}

// dispatchOrderOp fetches the current order page, checks the targets exist
// and runs the operation through the dispatcher so reconciliation and action
// history behave exactly like the dashboard.
func dispatchOrderOp(ctx context.Context, ids []string, action string, call func(*api.Client) dispatch.Call, patch func(*model.Order)) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}

	orders, err := client.Orders(ctx, "all")
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	coll := view.NewCollection(view.OrderFields())
	coll.SetRecords(orders)
	for _, id := range ids {
		if _, ok := coll.Get(id); !ok {
			return fmt.Errorf("order %s: %w", id, common.ErrNotFound)
		}
	}

	var recorder dispatch.Recorder
	if store := openHistory(); store != nil {
		defer store.Close()
		recorder = store
	}

	d := dispatch.New("orders", coll, cliNotifier{}, recorder)
	return d.Dispatch(ctx, dispatch.Op[model.Order]{
		Action:  action,
		Targets: ids,
		Call:    call(client),
		Patch:   patch,
	})
}

func ordersStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Set one order's confirmation status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := model.OrderStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q (pending, confirmed, unconfirmed)", args[1])
			}

			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			response, _ := cmd.Flags().GetString("response")
			order, err := client.UpdateOrderStatus(cmd.Context(), args[0], string(status), response)
			if err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("order %s is now %s", order.OrderID, order.Status)))
			return nil
		},
	}

	cmd.Flags().String("response", "", "customer response to append to the confirmation history")

	return cmd
}

func ordersStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show order counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			stats, err := client.OrderStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}

			fmt.Printf("total       %d\n", stats.Total)
			fmt.Printf("confirmed   %d\n", stats.Confirmed)
			fmt.Printf("pending     %d\n", stats.Pending)
			fmt.Printf("unconfirmed %d\n", stats.Unconfirmed)
			return nil
		},
	}
}
