package pong

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/plus3/pong/config"
	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(t *testing.T, mutate func(*config.Config), keys KeySource) *Match {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewMatch(cfg, keys, log.New(&bytes.Buffer{}))
	require.NoError(t, err)
	return m
}

func TestNewMatch(t *testing.T) {
	m := newTestMatch(t, nil, nil)
	ids := m.Entities()

	t.Run("entity set", func(t *testing.T) {
		storage := m.World().Storage()
		assert.Equal(t, 7, storage.Len())
		assert.Equal(t, []ecs.EntityId{
			ids.Background, ids.Overlay,
			ids.LeftCounter, ids.RightCounter,
			ids.LeftPaddle, ids.RightPaddle,
			ids.Ball,
		}, collect(storage))
	})

	t.Run("systems in order", func(t *testing.T) {
		var names []string
		for _, s := range m.World().GetStats().Systems {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{
			"KeyboardInputSystem", "BotInputSystem",
			"ScoreUpdateSystem", "ScoreUpdateSystem",
			"MovementSystem", "EdgeCollisionSystem",
			"PaddleCollisionSystem", "PaddleCollisionSystem",
			"ScoreCollisionSystem", "RenderSystem",
		}, names)
	})

	t.Run("draw calls back to front", func(t *testing.T) {
		m.Process()
		calls := m.DrawCalls()
		require.Len(t, calls, 7)
		assert.Equal(t, uint64(ids.Background), calls[0].Entity)
		assert.Equal(t, uint64(ids.Ball), calls[6].Entity)
		assert.Equal(t, '0', calls[2].Glyph.Rune())

		m.Process()
		assert.Len(t, m.DrawCalls(), 7)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Players.Left.Control = "mind"
		_, err := NewMatch(cfg, nil, nil)
		assert.ErrorContains(t, err, "cannot build match")
	})
}

func collect(storage *ecs.Storage) []ecs.EntityId {
	var ids []ecs.EntityId
	for id := range storage.Entities() {
		ids = append(ids, id)
	}
	return ids
}

func TestMatchScoringIsVisibleNextFrame(t *testing.T) {
	m := newTestMatch(t, nil, nil)
	storage := m.World().Storage()

	ball := ecs.ReadComponent[Position](storage, m.Entities().Ball)
	ball.X = FieldWidth + 0.01

	m.Process()
	left, right := m.Scores()
	assert.Equal(t, 0, left, "the exit is queued, not yet counted")
	assert.Equal(t, 0, right)
	assert.Equal(t, CenterX, ball.X)
	counter := ecs.ReadComponent[Sprite](storage, m.Entities().LeftCounter)
	assert.Equal(t, '0', counter.Glyph.Rune())

	m.Process()
	left, right = m.Scores()
	assert.Equal(t, 1, left, "leaving past the right edge is a point for the left player")
	assert.Equal(t, 0, right)
	assert.Equal(t, '1', counter.Glyph.Rune())
	assert.Equal(t, 1, ecs.ReadComponent[Score](storage, m.Entities().LeftCounter).Value)
}

func TestMatchKeyboard(t *testing.T) {
	keys := KeySet{}
	m := newTestMatch(t, nil, keys)

	keys.Hold("a")
	m.Process()
	snap := m.Snapshot()
	assert.Equal(t, DefaultPaddleSpeed, snap.LeftPaddle.VY)
	assert.Equal(t, CenterY+DefaultPaddleSpeed, snap.LeftPaddle.Y)

	keys.Hold("z")
	m.Process()
	assert.Equal(t, 0.0, m.Snapshot().LeftPaddle.VY)

	replaced := KeySet{}
	replaced.Hold("z")
	m.SetKeys(replaced)
	m.Process()
	assert.Equal(t, -DefaultPaddleSpeed, m.Snapshot().LeftPaddle.VY)
}

func TestMatchIdlePlayerLoses(t *testing.T) {
	keys := KeySet{}
	keys.Hold("a")
	m := newTestMatch(t, func(c *config.Config) { c.TargetScore = 1 }, keys)

	for i := 0; i < 1200; i++ {
		m.Process()
		if _, done := m.Winner(); done {
			break
		}
	}

	winner, done := m.Winner()
	require.True(t, done)
	assert.Equal(t, Right, winner)
	left, right := m.Scores()
	assert.Equal(t, 0, left)
	assert.Equal(t, 1, right)

	snap := m.Snapshot()
	assert.LessOrEqual(t, snap.LeftPaddle.Y, FieldHeight)
}

func TestMatchStaysInField(t *testing.T) {
	m := newTestMatch(t, func(c *config.Config) {
		c.Players.Left = config.Player{Control: config.ControlBot}
	}, nil)

	for i := 0; i < 5000; i++ {
		m.Process()
		snap := m.Snapshot()
		for _, body := range []BodyState{snap.Ball, snap.LeftPaddle, snap.RightPaddle} {
			require.GreaterOrEqual(t, body.Y, 0.0, "tick %d", snap.Tick)
			require.LessOrEqual(t, body.Y, FieldHeight, "tick %d", snap.Tick)
		}
		require.GreaterOrEqual(t, snap.Ball.X, -1.0)
		require.LessOrEqual(t, snap.Ball.X, FieldWidth+1)
	}
}

func TestMatchDeterminism(t *testing.T) {
	run := func() []Snapshot {
		keys := KeySet{}
		m := newTestMatch(t, nil, keys)
		var snaps []Snapshot
		for i := 0; i < 3000; i++ {
			// A scripted player: hold up for a while, then down.
			switch i % 240 {
			case 0:
				keys.Release("z")
				keys.Hold("a")
			case 120:
				keys.Release("a")
				keys.Hold("z")
			}
			m.Process()
			snaps = append(snaps, m.Snapshot())
		}
		return snaps
	}

	assert.Equal(t, run(), run())
}

func TestMatchWinnerDisabled(t *testing.T) {
	m := newTestMatch(t, nil, nil)
	_, done := m.Winner()
	assert.False(t, done)
}
