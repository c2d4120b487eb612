package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.tui-snake/config.yaml and edit it to change grids, speeds, colors,
volumes or file locations.

Example:
  snake defaults > ~/.tui-snake/config.yaml`,
	Args: cobra.NoArgs,
	// Works even when the config on disk is broken.
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
