package desktop

import (
	"image/color"

	"github.com/plus3/pong/pong"
)

// Viewport maps playfield units onto a screen of Width x Height pixels.
// World y grows upward, screen y grows downward.
type Viewport struct {
	Width, Height int
}

// ToScreen converts a world point to pixel coordinates.
func (v Viewport) ToScreen(x, y float64) (float32, float32) {
	sx := x / pong.FieldWidth * float64(v.Width)
	sy := (1 - y/pong.FieldHeight) * float64(v.Height)
	return float32(sx), float32(sy)
}

// Rect returns the top-left corner and pixel size of a draw call's box.
func (v Viewport) Rect(call pong.DrawCall) (x, y, w, h float32) {
	x, y = v.ToScreen(call.X-call.W/2, call.Y+call.H/2)
	w = float32(call.W / pong.FieldWidth * float64(v.Width))
	h = float32(call.H / pong.FieldHeight * float64(v.Height))
	return x, y, w, h
}

// FillColor converts a sprite color to RGBA, keeping its alpha.
func FillColor(c pong.Color) color.NRGBA {
	return color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	}
}

// GlyphColor is the fully opaque variant of a sprite color used for its glyph.
func GlyphColor(c pong.Color) color.NRGBA {
	clr := FillColor(c)
	clr.A = 0xff
	return clr
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*0xff + 0.5)
}
