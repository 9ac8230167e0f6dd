package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfranczak/shoal/internal/config"
	"github.com/mfranczak/shoal/internal/print"
)

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Inspect and validate the keymap",
}

var keymapValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a keymap file",
	Long:  "Parse a keymap file and report the first configuration error, or confirm that every binding compiles.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := keymapPath(args)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		registry, err := config.BuildRegistry(data)
		if err != nil {
			print.Error("%s: %v", path, err)
			return err
		}

		print.Success("%s is valid", path)
		print.Info("%d bindings compiled", len(registry.Compiled()))
		return nil
	},
}

var keymapShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the active keymap",
	Long:  "Display every binding the TUI will use, falling back to the built-in keymap when no file exists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		registry, err := config.LoadRegistry(dir)
		if err != nil {
			return err
		}

		for _, section := range registry.HelpSections() {
			print.Section(section.Title)
			for _, e := range section.Entries {
				fmt.Printf("  %-12s %s\n", e.Key, e.Desc)
			}
		}
		return nil
	},
}

func keymapPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	dir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, config.KeymapFileName), nil
}

func init() {
	rootCmd.AddCommand(keymapCmd)
	keymapCmd.AddCommand(keymapValidateCmd)
	keymapCmd.AddCommand(keymapShowCmd)
}
