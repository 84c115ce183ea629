package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/view"
)

func deliveriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliveries",
		Short: "Delivery analytics across couriers and cities",
	}

	cmd.AddCommand(deliveriesListCmd())
	cmd.AddCommand(deliveriesCouriersCmd())
	cmd.AddCommand(deliveriesCitiesCmd())
	cmd.AddCommand(deliveriesSummaryCmd())

	return cmd
}

func deliveriesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deliveries",
		RunE:  runDeliveriesList,
	}

	cmd.Flags().String("courier", "", "server-side courier filter (postex, leopard)")
	cmd.Flags().String("city", "", "filter by city")
	cmd.Flags().String("customer", "", "filter by customer name")
	cmd.Flags().String("status", "", "filter by delivery status")
	cmd.Flags().Bool("json", false, "print raw JSON")

	return cmd
}

func runDeliveriesList(cmd *cobra.Command, _ []string) error {
	client, err := newAPIClient(true)
	if err != nil {
		return err
	}

	courier, _ := cmd.Flags().GetString("courier")
	deliveries, err := client.Deliveries(cmd.Context(), courier)
	if err != nil {
		return fmt.Errorf("failed to list deliveries: %w", err)
	}
	warnSampleMode(client)

	coll := view.NewCollection(view.DeliveryFields())
	coll.SetRecords(deliveries)
	for _, field := range []string{"city", "customer", "status"} {
		value, _ := cmd.Flags().GetString(field)
		coll.SetCriterion(field, value)
	}

	filtered := coll.Filtered()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(filtered)
	}

	if len(filtered) == 0 {
		fmt.Println("no deliveries match")
		return nil
	}

	for _, d := range filtered {
		fmt.Printf("%-12s %-20s %-14s %-10s %8.0f  %s\n",
			d.Tracking, d.Customer, d.City, d.Courier, d.Value,
			cli.RenderBadge(model.DeliveryBadge(d.Status)))
	}
	fmt.Printf("%d delivery(ies)\n", len(filtered))
	return nil
}

func deliveriesCouriersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "couriers",
		Short: "Compare courier performance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			stats, err := client.CourierStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch courier stats: %w", err)
			}
			warnSampleMode(client)

			names := make([]string, 0, len(stats))
			for name := range stats {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Printf("%-10s %12s %8s %10s\n", "courier", "success rate", "orders", "avg value")
			for _, name := range names {
				s := stats[name]
				fmt.Printf("%-10s %11.1f%% %8d %10.0f\n", name, s.SuccessRate, s.TotalOrders, s.AvgValue)
			}
			return nil
		},
	}
}

func deliveriesCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "Per-city courier success rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			stats, err := client.CityStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch city stats: %w", err)
			}
			warnSampleMode(client)

			fmt.Printf("%-16s %8s %8s  %s\n", "city", "postex", "leopard", "recommendation")
			for _, c := range stats {
				best := "leopard"
				if c.PostexRate >= c.LeopardRate {
					best = "postex"
				}
				fmt.Printf("%-16s %7.1f%% %7.1f%%  %s\n", c.City, c.PostexRate, c.LeopardRate, best)
			}
			return nil
		},
	}
}

func deliveriesSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Overall delivery summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			summary, err := client.DeliverySummary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch delivery summary: %w", err)
			}
			warnSampleMode(client)

			fmt.Printf("total    %d\n", summary.TotalOrders)
			fmt.Printf("postex   %d\n", summary.PostexOrders)
			fmt.Printf("leopard  %d\n", summary.LeopardOrders)
			for name, s := range summary.CourierPerformance {
				fmt.Printf("  %-8s %.1f%% success over %d orders\n", name, s.SuccessRate, s.TotalOrders)
			}
			return nil
		},
	}
}
