package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/tui"
	"github.com/mfranczak/shoal/internal/ui"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "shoal",
	Short: "shoal - a TUI for the Transmission daemon",
	Long: `shoal is a terminal client for a local or remote Transmission daemon.

It provides:
  - A live torrent table with fuzzy filtering
  - Add, pause, resume and remove, with confirmation for removals
  - Per-torrent file listings and session-wide statistics
  - A YAML keymap with strict validation
  - An optional watch directory that auto-adds .torrent files

Connection settings live in config.yaml and the keymap in keymap.yaml
under the shoal config directory.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	dir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(dir)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	registry, err := config.LoadRegistry(dir)
	if err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}

	if !ui.IsInteractive() {
		return fmt.Errorf("shoal needs a terminal; run `shoal check` for a non-interactive connection test")
	}

	return tui.Run(context.Background(), settings, registry)
}

func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	return config.Dir()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "override the config directory")
	rootCmd.SilenceUsage = true
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
