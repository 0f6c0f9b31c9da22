// mines is a terminal Minesweeper.
//
// Usage:
//
//	mines play             - Play locally
//	mines serve            - Start SSH server for remote play
//	mines config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.mines/configs, ./configs)
//	--seed <value>      - Set RNG seed for a reproducible first board
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Board overrides shared by play and config
	flagWidth  int
	flagHeight int
	flagMines  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper. Reveal every cell that does not hide
a mine; numbers tell how many of the eight neighbors are mined.

Available commands:
  play     - Play a game locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  mines play
  mines play --width 30 --height 16 --mines 15
  mines serve --ssh :2222
  mines config > configs/mines.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMines, "mines", -1, "Mine probability per cell in percent (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	cfg.Apply(config.Overrides{
		Width:       flagWidth,
		Height:      flagHeight,
		MinePercent: flagMines,
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
