package pong

import (
	"github.com/plus3/pong/ecs"
)

type testWorld struct {
	storage  *ecs.Storage
	entities *ecs.View[Entity]
	tick     uint64
}

func newTestWorld() *testWorld {
	storage := NewStorage()
	return &testWorld{
		storage:  storage,
		entities: ecs.NewView[Entity](storage),
	}
}

func (w *testWorld) spawn(e Entity) ecs.EntityId {
	return w.entities.Spawn(e)
}

func (w *testWorld) get(id ecs.EntityId) *Entity {
	return w.entities.Get(id)
}

func (w *testWorld) frame() *ecs.UpdateFrame {
	w.tick++
	return ecs.NewUpdateFrame(w.tick, 1.0/60, w.storage)
}

func ballAt(x, y, hv, vv float64) Entity {
	ball := NewBall()
	ball.Position.X, ball.Position.Y = x, y
	ball.HorizVelocity.X = hv
	ball.VertVelocity.Y = vv
	return ball
}

func paddleAt(side Side, y float64) Entity {
	paddle := NewPaddle(side)
	paddle.Position.Y = y
	return paddle
}
