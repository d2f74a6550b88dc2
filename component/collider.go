package component

import (
	"github.com/lixenwraith/pong/vmath"
)

// ShapeKind selects the collider geometry
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// ColliderComponent mirrors the collider registered with the physics port
// Kept on the entity so renderers and layout rules can read extents without querying physics
type ColliderComponent struct {
	Kind        ShapeKind
	Radius      float64     // ShapeCircle
	HalfExtents vmath.Vec2F // ShapeBox
	Sensor      bool        // Detection only, no collision response
}

// Circle builds a circular collider
func Circle(radius float64) ColliderComponent {
	return ColliderComponent{Kind: ShapeCircle, Radius: radius}
}

// Cuboid builds a box collider from half-extents
func Cuboid(halfX, halfY float64) ColliderComponent {
	return ColliderComponent{Kind: ShapeBox, HalfExtents: vmath.V2F(halfX, halfY)}
}
