package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play and serve would use, after the config
search path and any board flags, as YAML.

Search order:
  --config <path>
  ~/.mines/configs/mines.yaml
  ./configs/mines.yaml
  built-in defaults

Examples:
  mines config
  mines config --width 30 > configs/mines.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
