package pong

// ScoreQueue is a FIFO of scoring events for one exit side. Events are
// pushed while per-entity systems run and drained by the next frame's
// global pass. Single-threaded use only.
type ScoreQueue struct {
	events []ScoreEvent
}

// ScoreEvent records one boundary exit.
type ScoreEvent struct {
	Points int
	Tick   uint64
}

// Push enqueues an event.
func (q *ScoreQueue) Push(event ScoreEvent) {
	q.events = append(q.events, event)
}

// Len returns the number of pending events.
func (q *ScoreQueue) Len() int {
	return len(q.events)
}

// Drain removes and returns every pending event, oldest first.
func (q *ScoreQueue) Drain() []ScoreEvent {
	if len(q.events) == 0 {
		return nil
	}
	drained := q.events
	q.events = nil
	return drained
}
