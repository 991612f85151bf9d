package pong

// The glyph atlas holds printable ASCII from ' ' in rows of 16 cells.
const (
	AtlasColumns = 16
	GlyphWidth   = 7
	GlyphHeight  = 14

	firstGlyph = ' '
	lastGlyph  = '~'
)

// Glyph locates one character cell in the shared atlas: the top-left pixel
// of the cell and the cell size.
type Glyph struct {
	Cell [2]int
	Size [2]int
}

// GlyphForByte maps an ASCII byte to its atlas cell. Non-printable bytes map to '?'.
func GlyphForByte(b byte) Glyph {
	if b < firstGlyph || b > lastGlyph {
		b = '?'
	}
	cb := int(b - firstGlyph)
	return Glyph{
		Cell: [2]int{(cb % AtlasColumns) * GlyphWidth, (cb / AtlasColumns) * GlyphHeight},
		Size: [2]int{GlyphWidth, GlyphHeight},
	}
}

// GlyphForRune maps r to its atlas cell. Runes outside printable ASCII map to '?'.
func GlyphForRune(r rune) Glyph {
	if r < firstGlyph || r > lastGlyph {
		return GlyphForByte('?')
	}
	return GlyphForByte(byte(r))
}

// GlyphForScore returns the digit glyph for score. Only 0-9 have a digit;
// for other values ok is false and the glyph is the character that follows
// '9' in ASCII order ('?' once past the printable range).
func GlyphForScore(score int) (glyph Glyph, ok bool) {
	ok = score >= 0 && score <= 9
	code := '0' + score
	if code < firstGlyph || code > lastGlyph {
		return GlyphForByte('?'), ok
	}
	return GlyphForByte(byte(code)), ok
}

// Rune returns the character at the glyph's atlas cell.
func (g Glyph) Rune() rune {
	col := g.Cell[0] / GlyphWidth
	row := g.Cell[1] / GlyphHeight
	return rune(firstGlyph + row*AtlasColumns + col)
}
