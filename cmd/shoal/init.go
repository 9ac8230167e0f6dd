package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/print"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration files",
	Long:  "Create the config directory with a default config.yaml and keymap.yaml. Existing files are left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		settings, err := yaml.Marshal(config.DefaultSettings())
		if err != nil {
			return err
		}
		if err := writeIfAbsent(filepath.Join(dir, config.SettingsFileName), settings); err != nil {
			return err
		}
		if err := writeIfAbsent(filepath.Join(dir, config.KeymapFileName), []byte(config.DefaultKeymapYAML)); err != nil {
			return err
		}

		print.Success("configuration written to %s", dir)
		print.Info("edit %s to point at your daemon", config.SettingsFileName)
		return nil
	},
}

func writeIfAbsent(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		print.Warning("%s already exists, skipping", filepath.Base(path))
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
