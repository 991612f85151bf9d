package pong

// DrawCall is one entity's draw request, in world units.
type DrawCall struct {
	Entity uint64
	X, Y   float64
	W, H   float64
	Color  Color
	Glyph  *Glyph
}

// Renderer receives draw calls in system order. Implementations must not
// mutate simulation state.
type Renderer interface {
	Draw(call DrawCall)
}

// DisplayList buffers one frame of draw calls for a presentation layer to replay.
type DisplayList struct {
	calls []DrawCall
}

func (d *DisplayList) Draw(call DrawCall) {
	d.calls = append(d.calls, call)
}

// Reset discards the buffered frame, keeping capacity.
func (d *DisplayList) Reset() {
	d.calls = d.calls[:0]
}

// Calls returns the buffered draw calls in issue order.
func (d *DisplayList) Calls() []DrawCall {
	return d.calls
}
