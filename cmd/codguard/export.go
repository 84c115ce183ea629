package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/config"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every dashboard's records to files",
		Long: `Export orders, deliveries, fake orders, high-risk orders and
unresponsive customers to JSON or CSV files for offline analysis.`,
		RunE: runExport,
	}

	cmd.Flags().String("out", ".", "output directory")
	cmd.Flags().String("format", "json", "export format (json, csv)")

	return cmd
}

type exportStep struct {
	name  string
	fetch func(ctx context.Context, client *api.Client) (any, [][]string, error)
}

func exportSteps() []exportStep {
	return []exportStep{
		{name: "orders", fetch: func(ctx context.Context, client *api.Client) (any, [][]string, error) {
			orders, err := client.Orders(ctx, "all")
			if err != nil {
				return nil, nil, err
			}
			rows := [][]string{{"order_id", "customer", "phone", "amount", "status", "delivery", "courier"}}
			for _, o := range orders {
				rows = append(rows, []string{
					o.OrderID, o.Customer, o.Phone,
					strconv.FormatFloat(o.TotalPrice, 'f', 0, 64),
					string(o.Status), string(o.DeliveryState), string(o.AssignedCourier),
				})
			}
			return orders, rows, nil
		}},
		{name: "deliveries", fetch: func(ctx context.Context, client *api.Client) (any, [][]string, error) {
			deliveries, err := client.Deliveries(ctx, "")
			if err != nil {
				return nil, nil, err
			}
			rows := [][]string{{"tracking", "customer", "city", "courier", "status", "value"}}
			for _, d := range deliveries {
				rows = append(rows, []string{
					d.Tracking, d.Customer, d.City, string(d.Courier), d.Status,
					strconv.FormatFloat(d.Value, 'f', 0, 64),
				})
			}
			return deliveries, rows, nil
		}},
		{name: "fake-orders", fetch: func(ctx context.Context, client *api.Client) (any, [][]string, error) {
			orders, err := client.FakeOrders(ctx, "all")
			if err != nil {
				return nil, nil, err
			}
			rows := [][]string{{"order_id", "customer", "phone", "amount", "status", "flag_count", "suspicious"}}
			for _, o := range orders {
				rows = append(rows, []string{
					o.OrderID, o.Customer, o.Phone,
					strconv.FormatFloat(o.Amount, 'f', 0, 64),
					string(o.Status), strconv.Itoa(o.FlagCount), strconv.FormatBool(o.Suspicious),
				})
			}
			return orders, rows, nil
		}},
		{name: "risk-areas", fetch: func(ctx context.Context, client *api.Client) (any, [][]string, error) {
			orders, err := client.HighRiskAreaOrders(ctx, "all")
			if err != nil {
				return nil, nil, err
			}
			rows := [][]string{{"order_id", "customer", "area", "risk_rate", "status"}}
			for _, o := range orders {
				rows = append(rows, []string{
					o.OrderID, o.Customer, o.Area,
					strconv.FormatFloat(o.RiskRate, 'f', 1, 64),
					string(o.Status),
				})
			}
			return orders, rows, nil
		}},
		{name: "customers", fetch: func(ctx context.Context, client *api.Client) (any, [][]string, error) {
			customers, err := client.UnresponsiveCustomers(ctx, "")
			if err != nil {
				return nil, nil, err
			}
			rows := [][]string{{"name", "phone", "order_number", "status", "stage", "days_since_order"}}
			for _, c := range customers {
				rows = append(rows, []string{
					c.Name, c.Phone, c.OrderNumber, string(c.Status), string(c.Stage),
					strconv.Itoa(c.DaysSinceOrder),
				})
			}
			return customers, rows, nil
		}},
	}
}

// exportManifest records what one export run produced.
type exportManifest struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	Format     string    `json:"format"`
	Files      []string  `json:"files"`
	SampleData bool      `json:"sample_data"`
}

func runExport(cmd *cobra.Command, _ []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	if format != "json" && format != "csv" {
		return fmt.Errorf("unknown format %q (json, csv)", format)
	}

	outDir = config.ExpandPath(outDir)
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	client, err := newAPIClient(true)
	if err != nil {
		return err
	}

	steps := exportSteps()
	bar := progressbar.NewOptions(len(steps),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Exporting dashboards..."),
	)

	manifest := exportManifest{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Format:    format,
	}

	for _, step := range steps {
		records, rows, err := step.fetch(cmd.Context(), client)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", step.name, err)
		}

		path := filepath.Join(outDir, step.name+"."+format)
		if format == "json" {
			err = writeJSONFile(path, records)
		} else {
			err = writeCSVFile(path, rows)
		}
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		manifest.Files = append(manifest.Files, filepath.Base(path))
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	manifest.SampleData = client.SampleMode()
	if manifest.SampleData {
		fmt.Fprintln(os.Stderr, cli.FormatSampleMode())
	}

	manifestPath := filepath.Join(outDir, "manifest.json")
	if err := writeJSONFile(manifestPath, manifest); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %d dashboards to %s (run %s)",
		len(steps), outDir, manifest.RunID)))
	return nil
}

func writeJSONFile(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // operator-chosen export path
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSVFile(path string, rows [][]string) error {
	f, err := os.Create(path) //nolint:gosec // operator-chosen export path
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
