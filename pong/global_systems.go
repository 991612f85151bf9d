package pong

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/plus3/pong/ecs"
)

type scoreDisplay struct {
	Sprite *Sprite
	Score  *Score `ecs:"optional"`
}

// ScoreUpdateSystem owns one player's running score. Each frame it drains
// every pending event from its queue, then points the counter's glyph at
// the new value and mirrors it into the counter's Score component.
type ScoreUpdateSystem struct {
	Counters ecs.View[scoreDisplay]
	Side     Side
	Paddle   ecs.EntityId
	Counter  ecs.EntityId
	Queue    *ScoreQueue
	Logger   *log.Logger

	score  int
	warned bool
}

// Score returns the running total.
func (s *ScoreUpdateSystem) Score() int {
	return s.score
}

func (s *ScoreUpdateSystem) Execute(frame *ecs.UpdateFrame) {
	for _, event := range s.Queue.Drain() {
		s.score += event.Points
		if s.Logger != nil {
			s.Logger.Info("point", "side", s.Side, "score", s.score, "scored_at", event.Tick, "tick", frame.Tick, "paddle", s.Paddle)
		}
	}

	counter := s.Counters.Get(s.Counter)
	if counter == nil {
		return
	}

	glyph, ok := GlyphForScore(s.score)
	if !ok && !s.warned {
		s.warned = true
		if s.Logger != nil {
			s.Logger.Warn("score has no single-digit glyph", "side", s.Side, "score", s.score, "glyph", string(glyph.Rune()))
		}
	}
	counter.Sprite.Glyph = &glyph
	if counter.Score != nil {
		counter.Score.Value = s.score
	}
}

type tracked struct {
	*Position
}

type steerable struct {
	*Position
	*VertVelocity
}

// BotInputSystem steers a paddle toward the ball's height. Inside the dead
// zone the paddle stops, which keeps it from jittering around the target.
type BotInputSystem struct {
	Targets ecs.View[tracked]
	Paddles ecs.View[steerable]
	Ball    ecs.EntityId
	Paddle  ecs.EntityId

	DeadZone float64
	Speed    float64
}

// NewBotInputSystem creates a bot with the default dead zone and speed.
func NewBotInputSystem(ball, paddle ecs.EntityId) *BotInputSystem {
	return &BotInputSystem{
		Ball:     ball,
		Paddle:   paddle,
		DeadZone: DefaultDeadZone,
		Speed:    DefaultPaddleSpeed,
	}
}

func (s *BotInputSystem) Execute(frame *ecs.UpdateFrame) {
	ball := s.Targets.Get(s.Ball)
	paddle := s.Paddles.Get(s.Paddle)
	if ball == nil || paddle == nil {
		return
	}

	d := ball.Position.Y - paddle.Position.Y
	switch {
	case math.Abs(d) <= s.DeadZone:
		paddle.VertVelocity.Y = 0
	case d > 0:
		paddle.VertVelocity.Y = s.Speed
	default:
		paddle.VertVelocity.Y = -s.Speed
	}
}

// KeyboardInputSystem sets a paddle's vertical velocity from two held keys.
// Up and Down together cancel out. The velocity is overwritten every frame.
type KeyboardInputSystem struct {
	Paddles ecs.View[steerable]
	Input   ecs.Singleton[Input]
	Paddle  ecs.EntityId
	Up      Key
	Down    Key
	Speed   float64
}

// NewKeyboardInputSystem creates a keyboard controller with the default speed.
func NewKeyboardInputSystem(paddle ecs.EntityId, up, down Key) *KeyboardInputSystem {
	return &KeyboardInputSystem{
		Paddle: paddle,
		Up:     up,
		Down:   down,
		Speed:  DefaultPaddleSpeed,
	}
}

// Direction returns +1, 0 or -1 for the held keys.
func (s *KeyboardInputSystem) Direction() float64 {
	input := s.Input.Get()
	if input == nil {
		return 0
	}
	dir := 0.0
	if input.Pressed(s.Up) {
		dir += 1
	}
	if input.Pressed(s.Down) {
		dir -= 1
	}
	return dir
}

func (s *KeyboardInputSystem) Execute(frame *ecs.UpdateFrame) {
	paddle := s.Paddles.Get(s.Paddle)
	if paddle == nil {
		return
	}
	paddle.VertVelocity.Y = s.Speed * s.Direction()
}
