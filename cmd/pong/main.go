// pong runs the two-paddle ball game.
//
// Usage:
//
//	pong play   - Play in a desktop window
//	pong term   - Play in the terminal
//	pong sim    - Run a headless match and print a report
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.pong/pong.yaml, ./configs/pong.yaml, built-in)
//	--log-level <level>  - Override log.level from the config
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/pong/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Two-paddle ball game on an entity-component-system core",
	Long: `pong simulates a two-paddle ball game. Each paddle is driven by the
keyboard or by a bot, as configured per player.

Examples:
  pong play
  pong play --debug
  pong term --log-file pong.log
  pong sim --frames 36000 --until 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the configuration and builds a logger writing to w.
func setup(w io.Writer) (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return cfg, nil, fmt.Errorf("log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           parsed,
	})
	return cfg, logger, nil
}
