package pong

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoreUpdate(w *testWorld, queue *ScoreQueue, logger *log.Logger) (*ScoreUpdateSystem, ecs.EntityId) {
	counter := w.spawn(NewScoreCounter(Left))
	sys := &ScoreUpdateSystem{
		Side:    Left,
		Counter: counter,
		Queue:   queue,
		Logger:  logger,
	}
	sys.Counters.Init(w.storage)
	return sys, counter
}

func TestScoreUpdateSystem(t *testing.T) {
	w := newTestWorld()
	queue := &ScoreQueue{}
	sys, counter := newScoreUpdate(w, queue, nil)

	t.Run("drains every pending event once", func(t *testing.T) {
		queue.Push(ScoreEvent{Points: 1})
		queue.Push(ScoreEvent{Points: 1})

		sys.Execute(w.frame())
		assert.Equal(t, 2, sys.Score())
		assert.Equal(t, 0, queue.Len())

		sys.Execute(w.frame())
		assert.Equal(t, 2, sys.Score())
	})

	t.Run("counter shows the score", func(t *testing.T) {
		e := w.get(counter)
		require.NotNil(t, e.Sprite.Glyph)
		assert.Equal(t, '2', e.Sprite.Glyph.Rune())
		assert.Equal(t, 2, e.Score.Value)
	})

	t.Run("no events keeps the glyph", func(t *testing.T) {
		sys.Execute(w.frame())
		assert.Equal(t, '2', w.get(counter).Sprite.Glyph.Rune())
	})

	t.Run("score never decreases", func(t *testing.T) {
		previous := sys.Score()
		for i := 0; i < 5; i++ {
			queue.Push(ScoreEvent{Points: 1})
			sys.Execute(w.frame())
			assert.GreaterOrEqual(t, sys.Score(), previous)
			previous = sys.Score()
		}
		assert.Equal(t, 7, sys.Score())
	})
}

func TestScoreUpdateBeyondSingleDigit(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	w := newTestWorld()
	queue := &ScoreQueue{}
	sys, counter := newScoreUpdate(w, queue, logger)

	for i := 0; i < 10; i++ {
		queue.Push(ScoreEvent{Points: 1})
	}
	sys.Execute(w.frame())
	queue.Push(ScoreEvent{Points: 1})
	sys.Execute(w.frame())

	assert.Equal(t, 11, sys.Score())
	assert.Equal(t, ';', w.get(counter).Sprite.Glyph.Rune())
	assert.Equal(t, 11, w.get(counter).Score.Value)
	assert.Equal(t, 1, strings.Count(buf.String(), "single-digit"))
	assert.Equal(t, 11, strings.Count(buf.String(), "point"))
}

func TestBotInputSystem(t *testing.T) {
	tests := []struct {
		name     string
		ballY    float64
		expected float64
	}{
		{"inside dead zone above", 1.5 + 0.15, 0},
		{"inside dead zone below", 1.5 - 0.15, 0},
		{"ball above", 2.5, DefaultPaddleSpeed},
		{"ball below", 0.5, -DefaultPaddleSpeed},
		{"just outside dead zone", 1.5 + 0.25, DefaultPaddleSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			paddle := paddleAt(Right, 1.5)
			paddle.VertVelocity.Y = 0.3
			paddleId := w.spawn(paddle)
			ballId := w.spawn(ballAt(2, tt.ballY, 0.01, 0))

			bot := NewBotInputSystem(ballId, paddleId)
			bot.Targets.Init(w.storage)
			bot.Paddles.Init(w.storage)
			bot.Execute(w.frame())

			assert.Equal(t, tt.expected, w.get(paddleId).VertVelocity.Y)
			assert.Equal(t, tt.ballY, w.get(ballId).Position.Y)
		})
	}
}

func TestKeyboardInputSystem(t *testing.T) {
	tests := []struct {
		name string
		held []Key
		dir  float64
	}{
		{"no keys", nil, 0},
		{"up", []Key{"a"}, 1},
		{"down", []Key{"z"}, -1},
		{"both cancel", []Key{"a", "z"}, 0},
		{"unrelated key", []Key{"q"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			paddle := paddleAt(Left, 1.5)
			paddle.VertVelocity.Y = 0.3
			paddleId := w.spawn(paddle)

			keys := KeySet{}
			keys.Hold(tt.held...)
			ecs.NewSingleton(w.storage, Input{Keys: keys})

			sys := NewKeyboardInputSystem(paddleId, "a", "z")
			world := ecs.NewWorld(w.storage)
			world.RegisterGlobal(sys)
			world.Process(1.0 / 60)

			assert.Equal(t, tt.dir, sys.Direction())
			assert.Equal(t, tt.dir*DefaultPaddleSpeed, w.get(paddleId).VertVelocity.Y)
		})
	}
}

func TestKeyboardInputWithoutSource(t *testing.T) {
	w := newTestWorld()
	paddle := paddleAt(Left, 1.5)
	paddle.VertVelocity.Y = 0.3
	paddleId := w.spawn(paddle)

	sys := NewKeyboardInputSystem(paddleId, "a", "z")
	world := ecs.NewWorld(w.storage)
	world.RegisterGlobal(sys)
	world.Process(1.0 / 60)

	assert.Equal(t, 0.0, w.get(paddleId).VertVelocity.Y)
}

func TestKeySet(t *testing.T) {
	keys := KeySet{}
	keys.Hold("up", "down")
	keys.Release("up")
	assert.False(t, keys.Pressed("up"))
	assert.True(t, keys.Pressed("down"))
	assert.False(t, Input{}.Pressed("down"))
	assert.Equal(t, Key("space"), ParseKey("  Space "))
}
