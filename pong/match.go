package pong

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/plus3/pong/config"
	"github.com/plus3/pong/ecs"
)

// EntityIds names the handles of a match's fixed entity set.
type EntityIds struct {
	Background   ecs.EntityId
	Overlay      ecs.EntityId
	LeftCounter  ecs.EntityId
	RightCounter ecs.EntityId
	LeftPaddle   ecs.EntityId
	RightPaddle  ecs.EntityId
	Ball         ecs.EntityId
}

// Paddle returns the paddle handle for side.
func (e EntityIds) Paddle(side Side) ecs.EntityId {
	if side == Left {
		return e.LeftPaddle
	}
	return e.RightPaddle
}

// Counter returns the score counter handle for side.
func (e EntityIds) Counter(side Side) ecs.EntityId {
	if side == Left {
		return e.LeftCounter
	}
	return e.RightCounter
}

// Match is one game: a World with the pong entities and rules registered.
// Entities and systems are fixed once NewMatch returns.
type Match struct {
	cfg     config.Config
	logger  *log.Logger
	world   *ecs.World
	ids     EntityIds
	input   *ecs.Singleton[Input]
	display *DisplayList
	scores  [2]*ScoreUpdateSystem
	// exits holds the queue a ball lands on when it leaves past each side.
	exits [2]*ScoreQueue
}

// NewMatch validates cfg and builds the world. keys may be nil for a match
// without keyboard players, and can be replaced later with SetKeys.
func NewMatch(cfg config.Config, keys KeySource, logger *log.Logger) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot build match: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	storage := NewStorage()
	m := &Match{
		cfg:     cfg,
		logger:  logger,
		world:   ecs.NewWorld(storage),
		input:   ecs.NewSingleton(storage, Input{Keys: keys}),
		display: &DisplayList{},
		exits:   [2]*ScoreQueue{{}, {}},
	}

	m.spawnEntities(storage)
	m.registerGlobals()
	m.registerSystems()

	logger.Debug("match assembled",
		"entities", storage.Len(),
		"systems", m.world.GetStats().SystemCount,
		"left", cfg.Players.Left.Control,
		"right", cfg.Players.Right.Control)

	return m, nil
}

// spawnEntities creates the entity set back to front, which is also draw order.
func (m *Match) spawnEntities(storage *ecs.Storage) {
	entities := ecs.NewView[Entity](storage)

	ball := NewBall()
	ball.HorizVelocity.X = m.cfg.Physics.BallSpeed / TicksPerUnit

	m.ids = EntityIds{
		Background:   entities.Spawn(NewBackground()),
		Overlay:      entities.Spawn(NewBackgroundOverlay()),
		LeftCounter:  entities.Spawn(NewScoreCounter(Left)),
		RightCounter: entities.Spawn(NewScoreCounter(Right)),
		LeftPaddle:   entities.Spawn(NewPaddle(Left)),
		RightPaddle:  entities.Spawn(NewPaddle(Right)),
		Ball:         entities.Spawn(ball),
	}
}

// registerGlobals adds paddle controllers, then score updates.
func (m *Match) registerGlobals() {
	paddleSpeed := m.cfg.Physics.PaddleSpeed / TicksPerUnit

	for _, side := range []Side{Left, Right} {
		player := m.cfg.Players.Left
		if side == Right {
			player = m.cfg.Players.Right
		}

		switch player.Control {
		case config.ControlBot:
			bot := NewBotInputSystem(m.ids.Ball, m.ids.Paddle(side))
			bot.DeadZone = m.cfg.Physics.DeadZone
			bot.Speed = paddleSpeed
			m.world.RegisterGlobal(bot)
		case config.ControlKeyboard:
			keyboard := NewKeyboardInputSystem(m.ids.Paddle(side), ParseKey(player.Up), ParseKey(player.Down))
			keyboard.Speed = paddleSpeed
			m.world.RegisterGlobal(keyboard)
		}
	}

	for _, side := range []Side{Left, Right} {
		// A side scores when the ball leaves past the opponent's edge.
		update := &ScoreUpdateSystem{
			Side:    side,
			Paddle:  m.ids.Paddle(side),
			Counter: m.ids.Counter(side),
			Queue:   m.exits[side.Opponent()],
			Logger:  m.logger,
		}
		m.scores[side] = update
		m.world.RegisterGlobal(update)
	}
}

func (m *Match) registerSystems() {
	m.world.Register(&MovementSystem{})
	m.world.Register(&EdgeCollisionSystem{})
	for _, side := range []Side{Left, Right} {
		paddle := NewPaddleCollisionSystem(m.ids.Paddle(side))
		paddle.Gain = m.cfg.Physics.DeflectionGain
		m.world.Register(paddle)
	}
	m.world.Register(&ScoreCollisionSystem{
		LeftExit:  m.exits[Left],
		RightExit: m.exits[Right],
	})
	m.world.Register(&RenderSystem{Renderer: m.display})
}

// Process advances the match by one tick and rebuilds the display list.
func (m *Match) Process() {
	m.display.Reset()
	m.world.Process(1.0 / float64(m.cfg.TickRate))
}

// SetKeys replaces the input source read by keyboard-controlled paddles.
func (m *Match) SetKeys(keys KeySource) {
	m.input.Set(Input{Keys: keys})
}

// Scores returns the running totals.
func (m *Match) Scores() (left, right int) {
	return m.scores[Left].Score(), m.scores[Right].Score()
}

// Winner reports the side that reached the target score, if any.
func (m *Match) Winner() (Side, bool) {
	if m.cfg.TargetScore == 0 {
		return Left, false
	}
	left, right := m.Scores()
	switch {
	case left >= m.cfg.TargetScore:
		return Left, true
	case right >= m.cfg.TargetScore:
		return Right, true
	}
	return Left, false
}

// DrawCalls returns the draw calls issued by the last Process.
func (m *Match) DrawCalls() []DrawCall {
	return m.display.Calls()
}

// Stats reports per-system execution statistics.
func (m *Match) Stats() *ecs.WorldStats {
	return m.world.GetStats()
}

func (m *Match) World() *ecs.World {
	return m.world
}

func (m *Match) Entities() EntityIds {
	return m.ids
}

func (m *Match) Config() config.Config {
	return m.cfg
}

// BodyState is the motion state of one entity.
type BodyState struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot is the observable state of a match after a tick.
type Snapshot struct {
	Tick        uint64
	Ball        BodyState
	LeftPaddle  BodyState
	RightPaddle BodyState
	LeftScore   int
	RightScore  int
}

// Snapshot captures the current state.
func (m *Match) Snapshot() Snapshot {
	left, right := m.Scores()
	return Snapshot{
		Tick:        m.world.Tick(),
		Ball:        m.bodyState(m.ids.Ball),
		LeftPaddle:  m.bodyState(m.ids.LeftPaddle),
		RightPaddle: m.bodyState(m.ids.RightPaddle),
		LeftScore:   left,
		RightScore:  right,
	}
}

func (m *Match) bodyState(id ecs.EntityId) BodyState {
	storage := m.world.Storage()
	var state BodyState
	if pos := ecs.ReadComponent[Position](storage, id); pos != nil {
		state.X, state.Y = pos.X, pos.Y
	}
	if hv := ecs.ReadComponent[HorizVelocity](storage, id); hv != nil {
		state.VX = hv.X
	}
	if vv := ecs.ReadComponent[VertVelocity](storage, id); vv != nil {
		state.VY = vv.Y
	}
	return state
}
