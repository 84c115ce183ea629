package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

func riskAreasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk-areas",
		Short: "Handle orders shipping to high-risk areas",
	}

	cmd.AddCommand(riskAreasListCmd())
	cmd.AddCommand(riskAreasShowCmd())
	cmd.AddCommand(riskAreasStatusCmd())
	cmd.AddCommand(riskAreasMessageCmd())
	cmd.AddCommand(riskAreasCreateCmd())
	cmd.AddCommand(riskAreasDeleteCmd())
	cmd.AddCommand(riskAreasStatsCmd())

	return cmd
}

func riskAreasListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List high-risk area orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			status, _ := cmd.Flags().GetString("status")
			orders, err := client.HighRiskAreaOrders(cmd.Context(), status)
			if err != nil {
				return fmt.Errorf("failed to list high-risk orders: %w", err)
			}

			coll := view.NewCollection(view.RiskOrderFields())
			coll.SetRecords(orders)
			area, _ := cmd.Flags().GetString("area")
			coll.SetCriterion("area", area)

			filtered := coll.Filtered()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(filtered)
			}

			if len(filtered) == 0 {
				fmt.Println("no high-risk orders match")
				return nil
			}

			for _, o := range filtered {
				fmt.Printf("%-12s %-20s %-18s %s %s\n",
					o.OrderID, o.Customer, o.Area,
					cli.RenderBadge(model.RiskBadge(o.RiskRate)),
					cli.RenderBadge(o.Status.Badge()))
			}
			fmt.Printf("%d order(s)\n", len(filtered))
			return nil
		},
	}

	cmd.Flags().String("status", "all", "status page")
	cmd.Flags().String("area", "", "filter by area name")
	cmd.Flags().Bool("json", false, "print raw JSON")

	return cmd
}

func riskAreasShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one high-risk order with its message thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			order, err := client.HighRiskAreaOrder(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch high-risk order: %w", err)
			}

			fmt.Printf("%s  %s %s\n", order.OrderID,
				cli.RenderBadge(model.RiskBadge(order.RiskRate)),
				cli.RenderBadge(order.Status.Badge()))
			fmt.Printf("customer  %s\n", order.Customer)
			fmt.Printf("area      %s (%.1f%% risk)\n", order.Area, order.RiskRate)
			for _, factor := range order.RiskFactors {
				fmt.Printf("  - %s\n", factor)
			}
			for _, msg := range order.Messages {
				fmt.Printf("  %s  %s: %s\n", msg.Timestamp, msg.Sender, msg.Text)
			}
			return nil
		},
	}
}

func riskAreasStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order through the escalation flow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := model.RiskOrderStatus(args[1])
			if !target.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}

			client, err := newAPIClient(true)
			if err != nil {
				return err
			}
			note, _ := cmd.Flags().GetString("note")

			return dispatchRiskOp(cmd.Context(), client, []string{args[0]}, dispatch.Op[model.HighRiskAreaOrder]{
				Action:  "escalate:" + string(target),
				Targets: []string{args[0]},
				Validate: func(rec model.HighRiskAreaOrder) error {
					if !rec.Status.CanTransition(target) {
						return fmt.Errorf("%s -> %s: %w", rec.Status, target, common.ErrInvalidTransition)
					}
					return nil
				},
				Patch: func(rec *model.HighRiskAreaOrder) { rec.Status = target },
				Call: func(ctx context.Context, ids []string) error {
					_, err := client.UpdateHighRiskAreaStatus(ctx, ids[0], target, note)
					return err
				},
			})
		},
	}

	cmd.Flags().String("note", "", "message to send the customer with the status change")

	return cmd
}

func riskAreasMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message <order-id> <text>",
		Short: "Message the customer about an advance payment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			sender, _ := cmd.Flags().GetString("sender")
			order, err := client.AddHighRiskAreaMessage(cmd.Context(), args[0], args[1], sender)
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

func riskAreasCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Escalate an order for high-risk-area handling",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			orderID, _ := cmd.Flags().GetString("order")
			if orderID == "" {
				orderID = "HR-" + uuid.NewString()[:8]
			}
			customer, _ := cmd.Flags().GetString("customer")
			area, _ := cmd.Flags().GetString("area")
			address, _ := cmd.Flags().GetString("address")
			riskRate, _ := cmd.Flags().GetFloat64("risk-rate")
			factors, _ := cmd.Flags().GetString("factors")

			req := api.CreateHighRiskAreaRequest{
				OrderID:  orderID,
				Customer: customer,
				Area:     area,
				Address:  address,
				RiskRate: riskRate,
			}
			if factors != "" {
				req.RiskFactors = strings.Split(factors, ",")
			}

			order, err := client.CreateHighRiskAreaOrder(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("failed to escalate order: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("escalated %s in %s", order.OrderID, order.Area)))
			return nil
		},
	}

	cmd.Flags().String("order", "", "order identifier (generated when omitted)")
	cmd.Flags().String("customer", "", "customer name")
	cmd.Flags().String("area", "", "delivery area")
	cmd.Flags().String("address", "", "delivery address")
	cmd.Flags().Float64("risk-rate", 0, "area risk rate (0-100)")
	cmd.Flags().String("factors", "", "comma-separated risk factors")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("area")

	return cmd
}

func riskAreasDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Remove an order from high-risk handling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			if err := client.DeleteHighRiskAreaOrder(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete high-risk order: %w", err)
			}

			fmt.Println(cli.FormatSuccess("deleted " + args[0]))
			return nil
		},
	}
}

func riskAreasStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show escalation flow counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			stats, err := client.HighRiskAreaStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch stats: %w", err)
			}
			return printJSON(stats)
		},
	}
}

// dispatchRiskOp mirrors dispatchFakeOp for the high-risk-area flow.
func dispatchRiskOp(ctx context.Context, client *api.Client, ids []string, op dispatch.Op[model.HighRiskAreaOrder]) error {
	orders, err := client.HighRiskAreaOrders(ctx, "all")
	if err != nil {
		return fmt.Errorf("failed to fetch high-risk orders: %w", err)
	}

	coll := view.NewCollection(view.RiskOrderFields())
	coll.SetRecords(orders)
	for _, id := range ids {
		if _, ok := coll.Get(id); !ok {
			return fmt.Errorf("high-risk order %s: %w", id, common.ErrNotFound)
		}
	}

	var recorder dispatch.Recorder
	if store := openHistory(); store != nil {
		defer store.Close()
		recorder = store
	}

	d := dispatch.New("risk-areas", coll, cliNotifier{}, recorder)
	return d.Dispatch(ctx, op)
}
