package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent bulk actions and their outcomes",
		RunE:  runHistory,
	}

	cmd.Flags().String("domain", "", "limit to one dashboard (orders, fake-orders, risk-areas)")
	cmd.Flags().Int("limit", 50, "maximum entries to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store := openHistory()
	if store == nil {
		return fmt.Errorf("action history unavailable")
	}
	defer store.Close()

	domain, _ := cmd.Flags().GetString("domain")
	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.ListActions(cmd.Context(), domain, limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("no recorded actions")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-12s %-20s %-5s %d target(s)",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Domain, e.Action, e.Outcome, len(e.Targets))
		if e.Detail != "" {
			line += "  " + e.Detail
		}
		fmt.Println(line)
		if len(e.Targets) > 0 {
			fmt.Printf("    %s\n", strings.Join(e.Targets, ", "))
		}
	}
	return nil
}
