package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/pong/pong"
)

// Cell is one character position of the raster.
type Cell struct {
	Rune rune
	FG   pong.Color
	BG   pong.Color
}

// Grid rasterizes draw calls onto a fixed character grid. A cell is covered
// by a box when the cell's center lies inside it; boxes smaller than a cell
// still cover the cell under their center.
type Grid struct {
	cols, rows int
	cells      []Cell
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize changes the grid dimensions and clears it. Sizes below one are raised to one.
func (g *Grid) Resize(cols, rows int) {
	g.cols = max(cols, 1)
	g.rows = max(rows, 1)
	g.cells = make([]Cell, g.cols*g.rows)
	g.Clear()
}

func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', FG: pong.Color{1, 1, 1, 1}, BG: pong.Color{0, 0, 0, 1}}
	}
}

func (g *Grid) At(col, row int) Cell {
	return g.cells[row*g.cols+col]
}

// Paint draws one call: its box blended by alpha, then its glyph in the
// center cell with the call's color made opaque.
func (g *Grid) Paint(call pong.DrawCall) {
	colScale := float64(g.cols) / pong.FieldWidth
	left := (call.X - call.W/2) * colScale
	right := (call.X + call.W/2) * colScale
	centerCol := clamp(int(math.Floor(call.X*colScale)), g.cols)

	top := (1 - (call.Y+call.H/2)/pong.FieldHeight) * float64(g.rows)
	bottom := (1 - (call.Y-call.H/2)/pong.FieldHeight) * float64(g.rows)
	centerRow := clamp(int(math.Floor((1-call.Y/pong.FieldHeight)*float64(g.rows))), g.rows)

	if alpha := call.Color[3]; alpha > 0 {
		col0, col1 := coveredSpan(left, right, centerCol, g.cols)
		row0, row1 := coveredSpan(top, bottom, centerRow, g.rows)
		for row := row0; row <= row1; row++ {
			for col := col0; col <= col1; col++ {
				cell := &g.cells[row*g.cols+col]
				cell.BG = blend(cell.BG, call.Color)
			}
		}
	}

	if call.Glyph != nil {
		cell := &g.cells[centerRow*g.cols+centerCol]
		cell.Rune = call.Glyph.Rune()
		cell.FG = call.Color
		cell.FG[3] = 1
	}
}

// Render returns the grid as styled rows joined by newlines. Adjacent cells
// sharing colors are rendered as one styled run.
func (g *Grid) Render() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := g.cells[row*g.cols : (row+1)*g.cols]
		start := 0
		for col := 1; col <= len(line); col++ {
			if col < len(line) && line[col].FG == line[start].FG && line[col].BG == line[start].BG {
				continue
			}
			run := make([]rune, 0, col-start)
			for _, cell := range line[start:col] {
				run = append(run, cell.Rune)
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(line[start].FG))).
				Background(lipgloss.Color(hexColor(line[start].BG)))
			b.WriteString(style.Render(string(run)))
			start = col
		}
	}
	return b.String()
}

// Text returns the grid's runes without styling.
func (g *Grid) Text() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range g.cells[row*g.cols : (row+1)*g.cols] {
			b.WriteRune(cell.Rune)
		}
	}
	return b.String()
}

func coveredSpan(lo, hi float64, center, n int) (int, int) {
	first := int(math.Ceil(lo - 0.5))
	last := int(math.Floor(hi - 0.5))
	if first > last {
		return center, center
	}
	return clamp(first, n), clamp(last, n)
}

func clamp(v, n int) int {
	return min(max(v, 0), n-1)
}

func blend(dst, src pong.Color) pong.Color {
	a := src[3]
	if a >= 1 {
		return pong.Color{src[0], src[1], src[2], 1}
	}
	return pong.Color{
		dst[0]*(1-a) + src[0]*a,
		dst[1]*(1-a) + src[1]*a,
		dst[2]*(1-a) + src[2]*a,
		1,
	}
}

func hexColor(c pong.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", byteOf(c[0]), byteOf(c[1]), byteOf(c[2]))
}

func byteOf(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 0xff))
}
