package config

import (
	"slices"
	"strings"
)

// keyNames lists the key names every frontend can read, in normalized form.
var keyNames = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"up", "down", "left", "right", "space",
}

// KeyNames returns the bindable key names.
func KeyNames() []string {
	return slices.Clone(keyNames)
}

// NormalizeKey lowercases and trims a configured key name.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KnownKey reports whether name, once normalized, is a bindable key.
func KnownKey(name string) bool {
	return slices.Contains(keyNames, NormalizeKey(name))
}
