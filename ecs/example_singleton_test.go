package ecs_test

import (
	"fmt"

	"github.com/plus3/pong/ecs"
)

type Keys struct {
	Up, Down bool
}

// ExampleSingleton shows a frame-wide resource. A presentation layer writes
// the latest input state before each frame; systems read it through the
// same Singleton.
func ExampleSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	var unbound ecs.Singleton[Keys]
	unbound.Init(storage)
	fmt.Println("exists:", unbound.Exists())

	keys := ecs.NewSingleton[Keys](storage)
	keys.Set(Keys{Up: true})
	fmt.Println("exists:", unbound.Exists())

	var read *Keys
	storage.ReadSingleton(&read)
	fmt.Println("up:", read.Up, "down:", read.Down)

	keys.Get().Down = true
	fmt.Println("up:", read.Up, "down:", read.Down)

	// Output:
	// exists: false
	// exists: true
	// up: true down: false
	// up: true down: true
}
