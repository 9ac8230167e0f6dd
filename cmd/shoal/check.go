package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/print"
	"github.com/mfranczak/shoal/internal/transmission"
	"github.com/mfranczak/shoal/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to the daemon",
	Long:  "Connect to the configured Transmission daemon and report its version, RPC revision and defaults.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(dir)
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		client := transmission.NewHTTPClient(settings.URL, settings.Username, settings.Password)
		info, err := client.Session(ctx)
		if err != nil {
			print.Error("cannot reach %s: %v", settings.URL, err)
			return err
		}

		print.Section("Daemon")
		print.Success("connected to %s", settings.URL)
		print.Info("Transmission %s, RPC revision %d", info.Version, info.RPCVersion)
		print.Info("default download directory: %s", info.DownloadDir)

		if w := version.CheckDaemon(info.Version, info.RPCVersion, info.RPCVersionMin); w != nil {
			print.Warning("%s", w.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
