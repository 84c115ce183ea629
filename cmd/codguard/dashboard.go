package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codguard/codguard/internal/dispatch"
	"github.com/codguard/codguard/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive order confirmation dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(true)
			if err != nil {
				return err
			}

			var recorder dispatch.Recorder
			if store := openHistory(); store != nil {
				defer store.Close()
				recorder = store
			}

			return tui.Run(client, recorder, viper.GetString("ui.theme"))
		},
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}
