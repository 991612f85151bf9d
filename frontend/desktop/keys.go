package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/pong"
)

// keyCodes covers every key name config accepts.
var keyCodes = map[pong.Key]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace,
}

// KeyCode resolves a configured key name to an Ebiten key.
func KeyCode(key pong.Key) (ebiten.Key, bool) {
	code, ok := keyCodes[key]
	return code, ok
}

// Keyboard is a pong.KeySource over Ebiten's polled keyboard state.
type Keyboard struct {
	// Muted suppresses all keys, e.g. while the debug overlay has focus.
	Muted bool
}

func (k *Keyboard) Pressed(key pong.Key) bool {
	if k.Muted {
		return false
	}
	code, ok := KeyCode(key)
	return ok && ebiten.IsKeyPressed(code)
}
