package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plus3/pong/frontend/desktop"
	"github.com/plus3/pong/pong"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a window and play.

Controls (defaults):
  A / Z   - Left paddle up / down
  F1      - Toggle the inspector (with --debug)
  Esc     - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the ECS inspector overlay")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(os.Stderr)
	if err != nil {
		return err
	}

	match, err := pong.NewMatch(cfg, nil, logger)
	if err != nil {
		return fmt.Errorf("new match: %w", err)
	}
	return desktop.Run(match, desktop.Options{Debug: flagDebug, Logger: logger})
}
