package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/vmath"
)

// statusRows are reserved below the field
const statusRows = 1

// TerminalRenderer draws snapshots onto a tcell screen
// Field units map to cells through constant.CellWidth and constant.CellHeight
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer for a screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// WindowSize reports the field size of the current screen, the startup window query of the terminal frontend
func (r *TerminalRenderer) WindowSize() (float64, float64, bool) {
	cols, rows := r.screen.Size()
	return FieldSize(cols, rows)
}

// FieldSize converts a terminal size in cells to field units
func FieldSize(cols, rows int) (float64, float64, bool) {
	rows -= statusRows
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return float64(cols) * constant.CellWidth, float64(rows) * constant.CellHeight, true
}

// cell maps a field position to a screen cell
func cell(field, p vmath.Vec2F) (int, int) {
	col := int(math.Floor((p.X + field.X/2) / constant.CellWidth))
	row := int(math.Floor((field.Y/2 - p.Y) / constant.CellHeight))
	return col, row
}

// RenderFrame draws one snapshot and a status line
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot, status string) {
	r.screen.Clear()
	cols, rows := r.screen.Size()

	if snap.FieldKnown {
		field := snap.Field
		fieldRows := rows - statusRows

		// Centre net
		netCol, _ := cell(field, vmath.Vec2F{})
		for row := 0; row < fieldRows; row += 2 {
			r.put(netCol, row, constant.GlyphNet, styleNet)
		}

		for _, b := range snap.Bounds {
			_, row := cell(field, b.Center)
			row = clamp(row, 0, fieldRows-1)
			for col := 0; col < cols; col++ {
				r.put(col, row, constant.GlyphBound, styleBound)
			}
		}

		for _, p := range snap.Paddles {
			r.fillBox(field, p, constant.GlyphPaddle, stylePaddle)
		}

		for _, label := range snap.Scores {
			col, row := cell(field, label.Position)
			r.text(col-len(label.Text)/2, row, label.Text, styleScore)
		}

		for _, b := range snap.Balls {
			col, row := cell(field, b.Center)
			r.put(col, row, constant.GlyphBall, styleBall)
		}
	}

	r.text(0, rows-1, status, styleStatus)
	r.screen.Show()
}

// fillBox covers every cell whose centre lies inside the box, at least one cell
func (r *TerminalRenderer) fillBox(field vmath.Vec2F, b game.Box, glyph rune, style tcell.Style) {
	minCol, minRow := cell(field, vmath.V2F(b.Center.X-b.HalfExtents.X, b.Center.Y+b.HalfExtents.Y))
	maxCol, maxRow := cell(field, vmath.V2F(b.Center.X+b.HalfExtents.X, b.Center.Y-b.HalfExtents.Y))
	if maxCol < minCol {
		maxCol = minCol
	}
	if maxRow < minRow {
		maxRow = minRow
	}
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			r.put(col, row, glyph, style)
		}
	}
}

func (r *TerminalRenderer) put(col, row int, glyph rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *TerminalRenderer) text(col, row int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(col+i, row, ch, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
