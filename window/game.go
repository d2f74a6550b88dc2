package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/vmath"
)

// ErrClosed ends RunGame on a quit request
var ErrClosed = errors.New("window closed")

var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorForeground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorNet        = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	colorGoal       = color.RGBA{R: 60, G: 20, B: 20, A: 255}
)

// Display answers the startup window size query from the configured window
type Display struct {
	Width, Height int
}

func (d Display) WindowSize() (float64, float64, bool) {
	if d.Width <= 0 || d.Height <= 0 {
		return 0, 0, false
	}
	return float64(d.Width), float64(d.Height), true
}

// Game adapts a session to ebiten.Game
// One field unit is one logical pixel; the field tracks the outside window size
type Game struct {
	session *game.Session
	log     logrus.FieldLogger

	legend string
	audio  engine.AudioPlayer

	width, height int
}

// NewGame wraps a session whose field starts at width x height
// A nil player marks the status line as running without audio
func NewGame(session *game.Session, width, height int, legend string, player engine.AudioPlayer) *Game {
	return &Game{
		session: session,
		log:     session.Log(),
		legend:  legend,
		audio:   player,
		width:   width,
		height:  height,
	}
}

// Update handles system keys and advances one tick
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrClosed
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.session.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Reset()
	}

	g.session.Tick()
	return nil
}

// Draw renders the latest snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.session.Snapshot()
	if !snap.FieldKnown {
		ebitenutil.DebugPrintAt(screen, "no window size", 4, 4)
		return
	}
	field := snap.Field

	for y := float32(0); y < float32(field.Y); y += 16 {
		vector.FillRect(screen, float32(field.X/2)-1, y, 2, 8, colorNet, false)
	}
	for _, b := range snap.Goals {
		fillBox(screen, field, b, colorGoal)
	}
	for _, b := range snap.Bounds {
		fillBox(screen, field, b, colorForeground)
	}
	for _, b := range snap.Paddles {
		fillBox(screen, field, b, colorForeground)
	}
	for _, b := range snap.Balls {
		x, y := toScreen(field, b.Center)
		vector.FillCircle(screen, x, y, float32(b.HalfExtents.X), colorForeground, true)
	}
	for _, label := range snap.Scores {
		x, y := toScreen(field, label.Position)
		ebitenutil.DebugPrintAt(screen, label.Text, int(x)-3*len(label.Text), int(y)-8)
	}

	status := game.StatusLine(g.legend, "M mute  R reset  Esc quit", g.audio)
	ebitenutil.DebugPrintAt(screen, status, 4, int(field.Y)-16)
}

// Layout follows the outside size and queues a resize when it changes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.log.WithFields(logrus.Fields{
			"width":  outsideWidth,
			"height": outsideHeight,
		}).Debug("window resized")
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// Run opens the window and blocks until it closes
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond(g.session))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrClosed) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func ticksPerSecond(s *game.Session) int {
	interval := s.TickInterval()
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return int(1e9 / interval.Nanoseconds())
}

func toScreen(field, p vmath.Vec2F) (float32, float32) {
	return float32(p.X + field.X/2), float32(field.Y/2 - p.Y)
}

func fillBox(dst *ebiten.Image, field vmath.Vec2F, b game.Box, clr color.Color) {
	x, y := toScreen(field, vmath.V2F(b.Center.X-b.HalfExtents.X, b.Center.Y+b.HalfExtents.Y))
	w := float32(2 * b.HalfExtents.X)
	h := float32(2 * b.HalfExtents.Y)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	vector.FillRect(dst, x, y, w, h, clr, false)
}
