// Package config provides YAML-based configuration for a pong match and
// the programs that present it.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config contains all configuration for a match and its frontends.
type Config struct {
	// TickRate is the number of simulation frames per second for real-time runners.
	TickRate int `yaml:"tick_rate"`
	// TargetScore ends a match when either player reaches it. Zero means endless.
	TargetScore int      `yaml:"target_score"`
	Physics     Physics  `yaml:"physics"`
	Players     Players  `yaml:"players"`
	Window      Window   `yaml:"window"`
	Terminal    Terminal `yaml:"terminal"`
	Log         Log      `yaml:"log"`
}

// Physics holds speeds in world units per 60 ticks.
type Physics struct {
	BallSpeed      float64 `yaml:"ball_speed"`
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	DeadZone       float64 `yaml:"dead_zone"`
	DeflectionGain float64 `yaml:"deflection_gain"`
}

// Control selects who moves a paddle.
type Control string

const (
	ControlKeyboard Control = "keyboard"
	ControlBot      Control = "bot"
)

// Player configures one paddle. Up and Down name keys for keyboard control.
type Player struct {
	Control Control `yaml:"control"`
	Up      string  `yaml:"up"`
	Down    string  `yaml:"down"`
}

type Players struct {
	Left  Player `yaml:"left"`
	Right Player `yaml:"right"`
}

// Window configures the desktop frontend.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Terminal configures the terminal frontend.
type Terminal struct {
	// KeyHoldMillis is how long a key counts as held after its last key event.
	KeyHoldMillis int `yaml:"key_hold_ms"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.TargetScore < 0 {
		errs = append(errs, fmt.Errorf("target_score must not be negative, got %d", c.TargetScore))
	}
	if c.Physics.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_speed must be positive, got %g", c.Physics.BallSpeed))
	}
	if c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.paddle_speed must be positive, got %g", c.Physics.PaddleSpeed))
	}
	if c.Physics.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("physics.dead_zone must not be negative, got %g", c.Physics.DeadZone))
	}
	players := []struct {
		name   string
		player Player
	}{
		{"left", c.Players.Left},
		{"right", c.Players.Right},
	}
	for _, p := range players {
		if err := p.player.validate(); err != nil {
			errs = append(errs, fmt.Errorf("players.%s: %w", p.name, err))
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	return errors.Join(errs...)
}

func (p Player) validate() error {
	switch p.Control {
	case ControlBot:
		return nil
	case ControlKeyboard:
		if strings.TrimSpace(p.Up) == "" || strings.TrimSpace(p.Down) == "" {
			return errors.New("keyboard control needs both up and down keys")
		}
		for _, key := range []string{p.Up, p.Down} {
			if !KnownKey(key) {
				return fmt.Errorf("unknown key %q (want one of %s)", key, strings.Join(keyNames, ", "))
			}
		}
		if NormalizeKey(p.Up) == NormalizeKey(p.Down) {
			return fmt.Errorf("up and down are both bound to %q", NormalizeKey(p.Up))
		}
		return nil
	default:
		return fmt.Errorf("unknown control %q (want %q or %q)", p.Control, ControlKeyboard, ControlBot)
	}
}
