package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plus3/pong/frontend/terminal"
	"github.com/plus3/pong/pong"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play on the terminal's character grid.

Terminals report key presses, not key state, so a key counts as held
for terminal.key_hold_ms after its last press or auto-repeat.

Controls (defaults):
  A / Z        - Left paddle up / down
  Q/Esc/Ctrl+C - Quit

Logs would corrupt the screen, so they are discarded unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
}

func runTerm(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	cfg, logger, err := setup(out)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	match, err := pong.NewMatch(cfg, nil, logger)
	if err != nil {
		return fmt.Errorf("new match: %w", err)
	}
	return terminal.Run(match, width, height, logger)
}
