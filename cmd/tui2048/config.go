package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.tui2048/configs/2048.yaml or ./configs/2048.yaml to
change the defaults, or pass a copy with --config.

Examples:
  tui2048 config > ~/.tui2048/configs/2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML("2048")
	if data == nil {
		return fmt.Errorf("no default config embedded")
	}
	fmt.Print(string(data))
	return nil
}
