package pong

import "github.com/plus3/pong/config"

// Key is a logical key name such as "a", "z", "up" or "down".
type Key string

// KeySource answers whether a key is held right now. Presentation layers
// implement it over their input devices.
type KeySource interface {
	Pressed(key Key) bool
}

// Input is the frame-wide input resource read by KeyboardInputSystem.
type Input struct {
	Keys KeySource
}

// Pressed reports whether key is held; with no source, nothing is.
func (in Input) Pressed(key Key) bool {
	return in.Keys != nil && in.Keys.Pressed(key)
}

// KeySet is a KeySource backed by an explicit set of held keys.
type KeySet map[Key]bool

func (ks KeySet) Pressed(key Key) bool {
	return ks[key]
}

// Hold marks keys as held.
func (ks KeySet) Hold(keys ...Key) {
	for _, key := range keys {
		ks[key] = true
	}
}

// Release marks keys as not held.
func (ks KeySet) Release(keys ...Key) {
	for _, key := range keys {
		delete(ks, key)
	}
}

// ParseKey normalizes a key name from configuration.
func ParseKey(name string) Key {
	return Key(config.NormalizeKey(name))
}
