package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mfranczak/shoal/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shoal %s\n", version.Version)
		fmt.Printf("Built:      %s\n", version.BuildTime)
		fmt.Printf("Go version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
