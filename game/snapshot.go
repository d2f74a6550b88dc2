package game

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

// Box is an axis-aligned rectangle in field units, origin at the field centre, y up
type Box struct {
	Center      vmath.Vec2F
	HalfExtents vmath.Vec2F
}

// Label is a positioned text
type Label struct {
	Side     core.Side
	Position vmath.Vec2F
	Text     string
}

// Snapshot is the render view of one tick
type Snapshot struct {
	Field      vmath.Vec2F
	FieldKnown bool

	Balls   []Box
	Paddles []Box
	Bounds  []Box
	Goals   []Box
	Scores  []Label
	Frame   int64
}

// Snapshot collects drawable state from the world
func (s *Session) Snapshot() Snapshot {
	w := s.World
	cs := &w.Component
	window := w.Resource.Window

	snap := Snapshot{
		Field:      vmath.V2F(window.Width, window.Height),
		FieldKnown: window.Known,
		Frame:      w.Resource.Time.FrameNumber,
	}

	box := func(e core.Entity) (Box, bool) {
		tr, ok := cs.Transform.Get(e)
		if !ok {
			return Box{}, false
		}
		col, ok := cs.Collider.Get(e)
		if !ok {
			return Box{}, false
		}
		half := col.HalfExtents
		if col.Kind == component.ShapeCircle {
			half = vmath.V2F(col.Radius, col.Radius)
		}
		return Box{Center: tr.Position, HalfExtents: half}, true
	}

	collect := func(entities []core.Entity) []Box {
		out := make([]Box, 0, len(entities))
		for _, e := range entities {
			if b, ok := box(e); ok {
				out = append(out, b)
			}
		}
		return out
	}

	snap.Balls = collect(cs.Ball.All())
	snap.Paddles = collect(cs.Player.All())
	snap.Bounds = collect(cs.Bound.All())
	snap.Goals = collect(cs.Goal.All())

	for _, e := range cs.ScoreText.All() {
		text, _ := cs.ScoreText.Get(e)
		tr, _ := cs.Transform.Get(e)
		snap.Scores = append(snap.Scores, Label{Side: text.Side, Position: tr.Position, Text: text.Text})
	}

	return snap
}
