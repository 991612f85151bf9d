// Package pong implements the two-paddle ball game on top of the ecs
// package: components, entity constructors, the per-entity and per-frame
// rules, and Match, which assembles them into a fixed World.
package pong

import (
	"github.com/plus3/pong/ecs"
)

// Position is a point in world units. The playfield spans [0, FieldWidth] x [0, FieldHeight].
type Position struct {
	X, Y float64
}

// HorizVelocity is the horizontal velocity in world units per tick.
type HorizVelocity struct {
	X float64
}

// VertVelocity is the vertical velocity in world units per tick.
type VertVelocity struct {
	Y float64
}

// Color is RGBA with channels in [0, 1].
type Color [4]float64

// Sprite holds the full extents of an entity, used for both drawing and
// collision. Half-extents are XSize/2 and YSize/2.
type Sprite struct {
	XSize, YSize float64
	Color        Color
	Glyph        *Glyph
}

// HalfWidth returns XSize/2.
func (s Sprite) HalfWidth() float64 { return s.XSize / 2 }

// HalfHeight returns YSize/2.
func (s Sprite) HalfHeight() float64 { return s.YSize / 2 }

// Score is a player's point counter.
type Score struct {
	Value int
}

// Entity is the aggregate shape of every game object: an optional
// instance of each component kind. Absent components are nil.
type Entity struct {
	Position      *Position      `ecs:"optional"`
	HorizVelocity *HorizVelocity `ecs:"optional"`
	VertVelocity  *VertVelocity  `ecs:"optional"`
	Sprite        *Sprite        `ecs:"optional"`
	Score         *Score         `ecs:"optional"`
}

// RegisterComponents registers every pong component with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[HorizVelocity](registry)
	ecs.RegisterComponent[VertVelocity](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Score](registry)
}

// NewStorage returns a storage with the pong components registered.
func NewStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	return ecs.NewStorage(registry)
}

// Side identifies a player.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}
