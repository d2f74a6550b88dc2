package rule

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Placement is a position plus box half-extents
type Placement struct {
	Position    vmath.Vec2F
	HalfExtents vmath.Vec2F
}

// BoundPlacement spans the full width on the top or bottom edge of the field
func BoundPlacement(edge core.Edge, size vmath.Vec2F) Placement {
	return Placement{
		Position:    vmath.V2F(0, edge.Sign()*size.Y/2),
		HalfExtents: vmath.V2F(size.X/2, parameter.BoundHalfThickness),
	}
}

// GoalPlacement spans the full height on the left or right edge of the field
func GoalPlacement(side core.Side, size vmath.Vec2F) Placement {
	return Placement{
		Position:    vmath.V2F(side.Sign()*size.X/2, 0),
		HalfExtents: vmath.V2F(parameter.BoundHalfThickness, size.Y/2),
	}
}

// PaddleStart is the spawn position of a side's paddle
func PaddleStart(side core.Side, size vmath.Vec2F) vmath.Vec2F {
	return vmath.V2F(side.Sign()*size.X*parameter.PaddleXFraction, 0)
}

// ScoreTextStart is the spawn position of a side's score text
func ScoreTextStart(side core.Side, size vmath.Vec2F) vmath.Vec2F {
	return vmath.V2F(side.Sign()*size.X*parameter.ScoreTextXFraction, size.Y*parameter.ScoreTextYFraction)
}

// Rescale maps a position proportionally from one field size to another
func Rescale(position, from, to vmath.Vec2F) vmath.Vec2F {
	return vmath.V2FMul(vmath.V2FDiv(position, from), to)
}

// ValidSize reports whether a size can serve as a rescale basis
func ValidSize(size vmath.Vec2F) bool {
	return vmath.V2FIsFinite(size) && size.X > 0 && size.Y > 0
}
