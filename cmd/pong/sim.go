package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/pong/config"
	"github.com/plus3/pong/pong"
)

var (
	flagFrames   int
	flagUntil    int
	flagRealtime bool
	flagBots     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match and print a report",
	Long: `Run a match without a window and print scores and per-system statistics.

The match stops after --frames frames or once a player reaches --until points.
Keyboard players receive no input unless --bots replaces them with bots.

Examples:
  pong sim
  pong sim --frames 36000 --until 3
  pong sim --realtime --frames 600`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagUntil, "until", 0, "Stop when a player reaches this score (0 = config target_score)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at tick_rate instead of running flat out")
	simCmd.Flags().BoolVar(&flagBots, "bots", true, "Let bots drive keyboard-controlled paddles")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	if flagUntil > 0 {
		cfg.TargetScore = flagUntil
	}
	if flagBots {
		cfg.Players.Left.Control = config.ControlBot
		cfg.Players.Right.Control = config.ControlBot
	}

	match, err := pong.NewMatch(cfg, nil, logger)
	if err != nil {
		return fmt.Errorf("new match: %w", err)
	}

	report := simulate(cmd.Context(), match, flagFrames, flagRealtime, logger)
	return report.Generate(cmd.OutOrStdout())
}

// simulate advances match until frames have run, a player wins, or ctx is
// cancelled. With realtime set, frames are paced at the configured tick rate.
func simulate(ctx context.Context, match *pong.Match, frames int, realtime bool, logger *log.Logger) *Report {
	cfg := match.Config()
	report := &Report{
		FrameBudget: frames,
		TickRate:    cfg.TickRate,
		TargetScore: cfg.TargetScore,
		Realtime:    realtime,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0, frames),
		},
	}

	var tick <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Info("simulating", "frames", frames, "realtime", realtime, "target", cfg.TargetScore)
	start := time.Now()

Loop:
	for report.Frames < frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				break Loop
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break
		}

		frameStart := time.Now()
		match.Process()
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		report.Frames++

		if side, ok := match.Winner(); ok {
			report.Winner = side.String()
			break
		}
	}

	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.FrameTime.Finalize()

	report.LeftScore, report.RightScore = match.Scores()
	report.Snapshot = match.Snapshot()
	report.World = match.Stats()
	report.Storage = match.World().Storage().CollectStats()

	logger.Info("simulation finished", "frames", report.Frames, "left", report.LeftScore, "right", report.RightScore)
	return report
}
