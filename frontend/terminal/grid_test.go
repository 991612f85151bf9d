package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/pong/pong"
)

func call(e pong.Entity) pong.DrawCall {
	return pong.DrawCall{
		X: e.Position.X, Y: e.Position.Y,
		W: e.Sprite.XSize, H: e.Sprite.YSize,
		Color: e.Sprite.Color,
		Glyph: e.Sprite.Glyph,
	}
}

func TestGridBackgroundCoversEveryCell(t *testing.T) {
	g := NewGrid(80, 24)
	g.Paint(call(pong.NewBackground()))

	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			require.Equal(t, pong.Color{0.45, 0.4, 1.0, 1}, g.At(col, row).BG, "cell %d,%d", col, row)
		}
	}
}

func TestGridOverlayBlends(t *testing.T) {
	g := NewGrid(80, 24)
	g.Paint(call(pong.NewBackground()))
	g.Paint(call(pong.NewBackgroundOverlay()))

	inside := g.At(40, 12).BG
	assert.InDelta(t, 0.45*0.7, inside[0], 1e-9)
	assert.InDelta(t, 0.4*0.7, inside[1], 1e-9)
	assert.InDelta(t, 1.0*0.7, inside[2], 1e-9)

	// The panel spans columns 10..69 and rows 4..19.
	assert.Equal(t, inside, g.At(10, 4).BG)
	assert.Equal(t, inside, g.At(69, 19).BG)
	assert.Equal(t, pong.Color{0.45, 0.4, 1.0, 1}, g.At(9, 4).BG)
	assert.Equal(t, pong.Color{0.45, 0.4, 1.0, 1}, g.At(10, 20).BG)
}

func TestGridGlyphOnlyForTransparentSprites(t *testing.T) {
	g := NewGrid(80, 24)
	g.Paint(call(pong.NewBall()))

	cell := g.At(40, 12)
	assert.Equal(t, '@', cell.Rune)
	assert.Equal(t, pong.Color{0.8, 0.7, 0.3, 1}, cell.FG)
	assert.Equal(t, pong.Color{0, 0, 0, 1}, cell.BG)
	assert.Equal(t, ' ', g.At(41, 12).Rune)
}

func TestGridSmallBoxCoversCenterCell(t *testing.T) {
	g := NewGrid(80, 24)
	g.Paint(pong.DrawCall{X: 1.01, Y: 1.51, W: 0.001, H: 0.001, Color: pong.Color{1, 0, 0, 1}})

	assert.Equal(t, pong.Color{1, 0, 0, 1}, g.At(20, 11).BG)

	painted := 0
	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			if g.At(col, row).BG[0] == 1 {
				painted++
			}
		}
	}
	assert.Equal(t, 1, painted)
}

func TestGridPaddleSpan(t *testing.T) {
	g := NewGrid(80, 24)
	g.Paint(call(pong.NewPaddle(pong.Left)))

	assert.NotEqual(t, pong.Color{0, 0, 0, 1}, g.At(1, 12).BG)
	assert.NotEqual(t, pong.Color{0, 0, 0, 1}, g.At(2, 12).BG)
	assert.Equal(t, pong.Color{0, 0, 0, 1}, g.At(0, 12).BG)
	assert.Equal(t, pong.Color{0, 0, 0, 1}, g.At(3, 12).BG)
}

func TestGridClampsOutOfField(t *testing.T) {
	g := NewGrid(10, 5)
	assert.NotPanics(t, func() {
		g.Paint(pong.DrawCall{X: 9, Y: -4, W: 0.1, H: 0.1, Color: pong.Color{1, 1, 1, 1}, Glyph: ptr(pong.GlyphForRune('x'))})
	})
	assert.Equal(t, 'x', g.At(9, 4).Rune)
	assert.Equal(t, pong.Color{1, 1, 1, 1}, g.At(9, 4).BG)
}

func TestGridTextAndRender(t *testing.T) {
	g := NewGrid(8, 3)
	g.Paint(pong.DrawCall{X: pong.CenterX, Y: pong.CenterY, W: 0.1, H: 0.1, Glyph: ptr(pong.GlyphForRune('7'))})

	assert.Equal(t, "        \n    7   \n        ", g.Text())

	rendered := g.Render()
	assert.Len(t, strings.Split(rendered, "\n"), 3)
	assert.Contains(t, rendered, "7")
}

func TestGridResizeFloorsAtOne(t *testing.T) {
	g := NewGrid(0, -3)
	cols, rows := g.Size()
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}

func ptr[T any](v T) *T {
	return &v
}
