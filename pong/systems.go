package pong

import (
	"math"

	"github.com/plus3/pong/ecs"
)

type movable struct {
	Position      *Position
	HorizVelocity *HorizVelocity `ecs:"optional"`
	VertVelocity  *VertVelocity  `ecs:"optional"`
}

// MovementSystem advances Position by whichever velocities the entity has.
type MovementSystem struct {
	Movers ecs.Query[movable] `ecs:"subject"`
}

func (s *MovementSystem) Process(frame *ecs.UpdateFrame, id ecs.EntityId) {
	e := s.Movers.Get(id)
	if e == nil {
		return
	}
	if e.VertVelocity != nil {
		e.Position.Y += e.VertVelocity.Y
	}
	if e.HorizVelocity != nil {
		e.Position.X += e.HorizVelocity.X
	}
}

type bouncer struct {
	*Position
	*VertVelocity
	*Sprite
}

// EdgeCollisionSystem reflects vertical motion at the top and bottom of the
// field and clamps the entity back inside.
type EdgeCollisionSystem struct {
	Bouncers ecs.View[bouncer] `ecs:"subject"`
}

func (s *EdgeCollisionSystem) Process(frame *ecs.UpdateFrame, id ecs.EntityId) {
	e := s.Bouncers.Get(id)
	if e == nil {
		return
	}
	half := e.Sprite.HalfHeight()
	// Both checks may fire for a sprite taller than the field; apply in order.
	if e.Position.Y+half >= FieldHeight {
		e.VertVelocity.Y = -e.VertVelocity.Y
		e.Position.Y = FieldHeight - half
	}
	if e.Position.Y-half <= 0 {
		e.VertVelocity.Y = -e.VertVelocity.Y
		e.Position.Y = half
	}
}

type scorer struct {
	*Position
	*VertVelocity
	*HorizVelocity
}

// ScoreCollisionSystem detects the ball leaving the field sideways. It
// queues one event on the matching exit queue and resets the ball to the
// center, reversed horizontally, in the same tick.
type ScoreCollisionSystem struct {
	Balls     ecs.View[scorer] `ecs:"subject"`
	LeftExit  *ScoreQueue
	RightExit *ScoreQueue
}

func (s *ScoreCollisionSystem) Process(frame *ecs.UpdateFrame, id ecs.EntityId) {
	e := s.Balls.Get(id)
	if e == nil {
		return
	}

	event := ScoreEvent{Points: 1, Tick: frame.Tick}
	switch {
	case e.Position.X > FieldWidth:
		s.RightExit.Push(event)
	case e.Position.X < 0:
		s.LeftExit.Push(event)
	default:
		return
	}

	e.Position.X = CenterX
	e.Position.Y = CenterY
	e.HorizVelocity.X = -e.HorizVelocity.X
	e.VertVelocity.Y = 0
}

// PaddleCollisionSystem bounces entities off one paddle. The vertical
// velocity after the bounce grows with the distance of the contact point
// from the paddle's center:
//
//	vy = Gain * vx' * sinh(pi * (y - paddle.y) / paddle.halfHeight)
//
// where vx' is the already-reversed horizontal velocity.
type PaddleCollisionSystem struct {
	Movers ecs.View[scorer] `ecs:"subject"`
	Bodies ecs.View[Body]
	Paddle ecs.EntityId
	Gain   float64
}

// DefaultDeflectionGain is the Gain used by NewPaddleCollisionSystem.
const DefaultDeflectionGain = 0.5

// NewPaddleCollisionSystem creates a system bound to paddle with the default gain.
func NewPaddleCollisionSystem(paddle ecs.EntityId) *PaddleCollisionSystem {
	return &PaddleCollisionSystem{Paddle: paddle, Gain: DefaultDeflectionGain}
}

func (s *PaddleCollisionSystem) Process(frame *ecs.UpdateFrame, id ecs.EntityId) {
	if !EntitiesCollide(&s.Bodies, s.Paddle, id) {
		return
	}
	e := s.Movers.Get(id)
	paddle := s.Bodies.Get(s.Paddle)
	if e == nil || paddle == nil {
		return
	}

	distance := e.Position.Y - paddle.Position.Y
	e.HorizVelocity.X = -e.HorizVelocity.X
	e.VertVelocity.Y = s.Gain * e.HorizVelocity.X * math.Sinh(math.Pi*distance/paddle.Sprite.HalfHeight())
}

// RenderSystem issues one draw call per entity with a Position and Sprite.
type RenderSystem struct {
	Drawables ecs.Query[Body] `ecs:"subject"`
	Renderer  Renderer
}

func (s *RenderSystem) Process(frame *ecs.UpdateFrame, id ecs.EntityId) {
	e := s.Drawables.Get(id)
	if e == nil || s.Renderer == nil {
		return
	}

	call := DrawCall{
		Entity: uint64(id),
		X:      e.Position.X,
		Y:      e.Position.Y,
		W:      e.Sprite.XSize,
		H:      e.Sprite.YSize,
		Color:  e.Sprite.Color,
	}
	if e.Sprite.Glyph != nil {
		glyph := *e.Sprite.Glyph
		call.Glyph = &glyph
	}
	s.Renderer.Draw(call)
}
