package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

// ExampleView demonstrates resolving an entity handle through a View.
// Views describe a requirement set; Get returns nil when the entity lacks
// any required component.
func ExampleView() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	player := storage.Spawn(Position{X: 10, Y: 20}, Velocity{DX: 1, DY: 0})
	wall := storage.Spawn(Position{X: 0, Y: 0})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	if item := view.Get(player); item != nil {
		fmt.Printf("Player at (%.0f, %.0f) moving (%.0f, %.0f)\n",
			item.Position.X, item.Position.Y, item.Velocity.DX, item.Velocity.DY)
	}
	fmt.Println("Wall matches:", view.Matches(wall))

	// Output:
	// Player at (10, 20) moving (1, 0)
	// Wall matches: false
}

// ExampleView_optional shows an aggregate-style view: every field is
// optional, so the view matches any entity and reports which components it has.
func ExampleView_optional() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Position{X: 10, Y: 10}, Health{Current: 50, Max: 100})
	storage.Spawn(Position{X: 30, Y: 30})

	view := ecs.NewView[struct {
		Id       ecs.EntityId
		Position *Position
		Health   *Health `ecs:"optional"`
	}](storage)

	for item := range view.Values() {
		if item.Health != nil {
			fmt.Printf("Entity at (%.0f, %.0f) with health %d/%d\n",
				item.Position.X, item.Position.Y, item.Health.Current, item.Health.Max)
		} else {
			fmt.Printf("Invulnerable entity at (%.0f, %.0f)\n", item.Position.X, item.Position.Y)
		}
	}

	// Output:
	// Entity at (10, 10) with health 50/100
	// Invulnerable entity at (30, 30)
}
