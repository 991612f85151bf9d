package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the hardcoded configuration, matching defaults/pong.yaml.
func Default() Config {
	return Config{
		TickRate:    60,
		TargetScore: 0,
		Physics: Physics{
			BallSpeed:      1.0,
			PaddleSpeed:    1.5,
			DeadZone:       0.2,
			DeflectionGain: 0.5,
		},
		Players: Players{
			Left:  Player{Control: ControlKeyboard, Up: "a", Down: "z"},
			Right: Player{Control: ControlBot},
		},
		Window: Window{
			Width:  1024,
			Height: 600,
			Title:  "pong",
		},
		Terminal: Terminal{
			KeyHoldMillis: 150,
		},
		Log: Log{
			Level: "info",
		},
	}
}
