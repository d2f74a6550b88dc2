package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
)

// Collision is a contact start between two bodies
// Pairs involving a sensor report the sensor as A
type Collision struct {
	A, B   core.Entity
	Sensor bool
}

// orderSensorFirst swaps a pair so the sensor participant leads
func orderSensorFirst(a, b core.Entity, aSensor, bSensor bool) Collision {
	if bSensor && !aSensor {
		a, b = b, a
	}
	return Collision{A: a, B: b, Sensor: aSensor || bSensor}
}

// validCollider rejects degenerate geometry before it reaches the solver
func validCollider(c component.ColliderComponent) bool {
	switch c.Kind {
	case component.ShapeCircle:
		return c.Radius > 0
	case component.ShapeBox:
		return c.HalfExtents.X > 0 && c.HalfExtents.Y > 0
	default:
		return false
	}
}
