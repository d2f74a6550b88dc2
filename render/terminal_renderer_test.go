package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/vmath"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, col, row int) rune {
	r, _, _, _ := screen.GetContent(col, row)
	return r
}

func TestFieldSize(t *testing.T) {
	w, h, ok := FieldSize(100, 38)
	if !ok || w != 800 || h != 592 {
		t.Errorf("Expected 800x592, got %fx%f ok=%v", w, h, ok)
	}
	if _, _, ok := FieldSize(100, 1); ok {
		t.Error("Expected no field when only the status row fits")
	}
}

func TestRenderFrameDrawsField(t *testing.T) {
	screen := newScreen(t, 100, 38)
	r := NewTerminalRenderer(screen)

	w, h, ok := r.WindowSize()
	if !ok {
		t.Fatal("Expected window size")
	}
	field := vmath.V2F(w, h)

	snap := game.Snapshot{
		Field:      field,
		FieldKnown: true,
		Balls:      []game.Box{{Center: vmath.V2F(0, 0), HalfExtents: vmath.V2F(5, 5)}},
		Paddles:    []game.Box{{Center: vmath.V2F(-w/3, 0), HalfExtents: vmath.V2F(5, 20)}},
		Bounds:     []game.Box{{Center: vmath.V2F(0, h/2), HalfExtents: vmath.V2F(w/2, 0.5)}},
		Scores:     []game.Label{{Side: core.SideLeft, Position: vmath.V2F(-w/4, h*3/8), Text: "7"}},
	}
	r.RenderFrame(snap, "status")

	if got := runeAt(screen, 50, 18); got != '●' {
		t.Errorf("Expected ball at (50,18), got %q", got)
	}
	if got := runeAt(screen, 10, 0); got != '─' {
		t.Errorf("Expected top bound on row 0, got %q", got)
	}

	paddleCol, paddleRow := cell(field, vmath.V2F(-w/3, 0))
	if got := runeAt(screen, paddleCol, paddleRow); got != '█' {
		t.Errorf("Expected paddle at (%d,%d), got %q", paddleCol, paddleRow, got)
	}

	scoreCol, scoreRow := cell(field, vmath.V2F(-w/4, h*3/8))
	if got := runeAt(screen, scoreCol, scoreRow); got != '7' {
		t.Errorf("Expected score text at (%d,%d), got %q", scoreCol, scoreRow, got)
	}

	if got := runeAt(screen, 0, 37); got != 's' {
		t.Errorf("Expected status line on the last row, got %q", got)
	}
}

func TestRenderFrameWithoutField(t *testing.T) {
	screen := newScreen(t, 40, 10)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(game.Snapshot{Balls: []game.Box{{}}}, "no window")

	if got := runeAt(screen, 20, 4); got == '●' {
		t.Error("Expected nothing drawn without a known field")
	}
	if got := runeAt(screen, 0, 9); got != 'n' {
		t.Errorf("Expected status text, got %q", got)
	}
}
