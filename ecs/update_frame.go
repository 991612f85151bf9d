package ecs

// UpdateFrame is passed to every system during one World.Process call.
type UpdateFrame struct {
	// Tick counts frames processed by the World, starting at 1.
	Tick      uint64
	DeltaTime float64
	Storage   *Storage
}

// NewUpdateFrame builds a frame for driving systems outside a World, e.g. in tests.
func NewUpdateFrame(tick uint64, dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		Tick:      tick,
		DeltaTime: dt,
		Storage:   storage,
	}
}
