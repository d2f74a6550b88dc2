package physics

import (
	"errors"
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

var (
	ErrUnknownBody   = errors.New("unknown physics body")
	ErrDuplicateBody = errors.New("physics body already registered")
	ErrInvalidShape  = errors.New("invalid collider shape")
)

// BodyKind selects how the solver treats a body
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyStatic
)

// BodyDef describes a body at registration time
type BodyDef struct {
	Kind     BodyKind
	Collider component.ColliderComponent
	Position vmath.Vec2F
	Velocity vmath.Vec2F

	// Dynamic only; rotation is always locked
	Mass float64

	// Combined multiplicatively between the two shapes of a contact
	Elasticity float64
	Friction   float64

	// LockX pins the horizontal position, paddles move vertically only
	LockX bool

	// ReportEvents enables collision-start reporting for contacts involving this body
	ReportEvents bool
}

// BodyState is the solver-owned state of a body after a step
type BodyState struct {
	Position vmath.Vec2F
	Velocity vmath.Vec2F
}

// Port is the physics engine boundary consumed by the simulation systems
// All calls happen on the tick goroutine
type Port interface {
	// AddBody registers a body for an entity
	AddBody(e core.Entity, def BodyDef) error

	// RemoveBody drops the body, no-op for unknown entities
	RemoveBody(e core.Entity)

	// Step advances the solver by dt
	Step(dt time.Duration)

	// Body returns the current state of an entity's body
	Body(e core.Entity) (BodyState, bool)

	// SetVelocity overwrites the linear velocity of a dynamic body
	SetVelocity(e core.Entity, v vmath.Vec2F) error

	// SetPosition teleports a body
	SetPosition(e core.Entity, p vmath.Vec2F) error

	// SetShape replaces the collider geometry of a body, keeping its position
	SetShape(e core.Entity, c component.ColliderComponent) error

	// DrainCollisions returns and clears the collision-starts recorded since the last drain
	DrainCollisions() []Collision
}
