package terminal

import (
	"time"

	"github.com/plus3/pong/pong"
)

// HeldKeys emulates key-held state from terminal key events, which only
// report presses. A key counts as held for a window after its last press;
// auto-repeat keeps refreshing it while the physical key is down.
type HeldKeys struct {
	hold time.Duration
	now  func() time.Time
	seen map[pong.Key]time.Time
}

func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold: hold,
		now:  time.Now,
		seen: make(map[pong.Key]time.Time),
	}
}

// Touch records a press of key.
func (h *HeldKeys) Touch(key pong.Key) {
	h.seen[key] = h.now()
}

// Release forgets key immediately.
func (h *HeldKeys) Release(key pong.Key) {
	delete(h.seen, key)
}

func (h *HeldKeys) Pressed(key pong.Key) bool {
	at, ok := h.seen[key]
	return ok && h.now().Sub(at) < h.hold
}
