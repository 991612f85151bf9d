package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/pong/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(&Position{X: 1, Y: 2}, Temperature(32))

	view := ecs.NewView[struct {
		*Position
		*Temperature
	}](storage)

	item := view.Get(entityId)
	require.NotNil(t, item)
	assert.Equal(t, Temperature(32), *item.Temperature)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)
}

func TestViewMissingComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(&Position{X: 5, Y: 10})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	assert.Nil(t, view.Get(entityId))
	assert.False(t, view.Matches(entityId))
}

func TestViewMutationIsShared(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	entityId := storage.Spawn(Position{X: 1})

	view := ecs.NewView[struct{ *Position }](storage)
	view.Get(entityId).Position.X = 10

	// A second resolve observes the write.
	assert.Equal(t, float32(10), view.Get(entityId).Position.X)
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, entityId).X)
}

func TestViewOptional(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	withHealth := storage.Spawn(Position{}, Health{Current: 5})
	without := storage.Spawn(Position{})
	noPosition := storage.Spawn(Health{})

	view := ecs.NewView[struct {
		Position *Position
		Health   *Health `ecs:"optional"`
	}](storage)

	item := view.Get(withHealth)
	require.NotNil(t, item)
	require.NotNil(t, item.Health)
	assert.Equal(t, 5, item.Health.Current)

	item = view.Get(without)
	require.NotNil(t, item)
	assert.Nil(t, item.Health)

	assert.Nil(t, view.Get(noPosition))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Position]()}, view.Requires())
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2}, Velocity{})

	view := ecs.NewView[struct {
		Id ecs.EntityId
		*Position
	}](storage)

	assert.Equal(t, a, view.Get(a).Id)
	assert.Equal(t, b, view.Get(b).Id)
}

func TestViewIterSpawnOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 0})
	storage.Spawn(Position{X: 1}, Velocity{})
	storage.Spawn(Velocity{})
	storage.Spawn(Position{X: 3})
	storage.Spawn(Position{X: 4}, Velocity{})

	view := ecs.NewView[struct{ *Position }](storage)

	var xs []float32
	for item := range view.Values() {
		xs = append(xs, item.Position.X)
	}
	assert.Equal(t, []float32{0, 1, 3, 4}, xs)

	count := 0
	for range view.Iter() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	type aggregate struct {
		Position *Position `ecs:"optional"`
		Velocity *Velocity `ecs:"optional"`
		Name     *Name     `ecs:"optional"`
	}
	view := ecs.NewView[aggregate](storage)

	id := view.Spawn(aggregate{
		Position: &Position{X: 3},
		Name:     &Name{Value: "ball"},
	})

	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Name]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))

	item := view.Get(id)
	require.NotNil(t, item)
	assert.Nil(t, item.Velocity)
	assert.Equal(t, "ball", item.Name.Value)

	assert.Panics(t, func() { view.Spawn(aggregate{}) })
}

func TestViewSpawnRequiredNil(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[struct{ *Position }](storage)
	assert.Panics(t, func() { view.Spawn(struct{ *Position }{}) })
}

func TestViewInvalidLayout(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestViewUninitialized(t *testing.T) {
	var view ecs.View[struct{ *Position }]
	assert.Nil(t, view.Get(ecs.NewEntityId(1, 0)))
	assert.False(t, view.Matches(ecs.NewEntityId(1, 0)))
}
