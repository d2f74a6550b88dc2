package component

import (
	"github.com/lixenwraith/pong/vmath"
)

// TransformComponent is the entity position in field units
type TransformComponent struct {
	Position vmath.Vec2F
}

// VelocityComponent is the linear velocity in field units per second
type VelocityComponent struct {
	Linear vmath.Vec2F
}

// SpeedComponent is the fixed velocity magnitude an entity is held to every tick
type SpeedComponent struct {
	Value float64
}
