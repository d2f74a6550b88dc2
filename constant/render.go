package constant

// Terminal cell metrics in field units
// A cell is roughly twice as tall as wide, so an 800x600 field maps to 100x37 cells
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Terminal glyphs
const (
	GlyphBall   = '●'
	GlyphPaddle = '█'
	GlyphBound  = '─'
	GlyphNet    = '┊'
)
