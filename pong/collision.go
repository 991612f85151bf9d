package pong

import (
	"math"

	"github.com/plus3/pong/ecs"
)

// Body is the requirement set for collision: a position and extents.
type Body struct {
	*Position
	*Sprite
}

// Overlap reports whether two axis-aligned boxes, given by center and full
// extents, overlap or touch.
func Overlap(aPos Position, aSpr Sprite, bPos Position, bSpr Sprite) bool {
	return math.Abs(aPos.X-bPos.X)*2 <= aSpr.XSize+bSpr.XSize &&
		math.Abs(aPos.Y-bPos.Y)*2 <= aSpr.YSize+bSpr.YSize
}

// EntitiesCollide reports whether a and b overlap. An entity never collides
// with itself, and entities lacking a Position or Sprite never collide.
func EntitiesCollide(bodies *ecs.View[Body], a, b ecs.EntityId) bool {
	if a == b {
		return false
	}
	ba, bb := bodies.Get(a), bodies.Get(b)
	if ba == nil || bb == nil {
		return false
	}
	return Overlap(*ba.Position, *ba.Sprite, *bb.Position, *bb.Sprite)
}
