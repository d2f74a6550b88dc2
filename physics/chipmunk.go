package physics

import (
	"fmt"
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

// Collision types partition shapes into reporting and silent sets
// Handlers are registered per pair so each contact start fires exactly once
const (
	collisionSilent cp.CollisionType = iota + 1
	collisionReport
)

// chipmunkBody tracks the solver objects of one entity
type chipmunkBody struct {
	entity core.Entity
	def    BodyDef
	body   *cp.Body
	shape  *cp.Shape
	lockX  float64
}

// Space is the Chipmunk2D-backed Port
type Space struct {
	space    *cp.Space
	substeps int
	bodies   map[core.Entity]*chipmunkBody
	pending  []Collision
}

// NewSpace creates a zero-gravity space stepping substeps times per Step call
func NewSpace(substeps int) *Space {
	if substeps < 1 {
		substeps = 1
	}

	s := &Space{
		space:    cp.NewSpace(),
		substeps: substeps,
		bodies:   make(map[core.Entity]*chipmunkBody),
		pending:  make([]Collision, 0, 8),
	}
	s.space.SetGravity(cp.Vector{})

	for _, other := range []cp.CollisionType{collisionSilent, collisionReport} {
		handler := s.space.NewCollisionHandler(collisionReport, other)
		handler.BeginFunc = s.begin
	}
	return s
}

// begin records a contact start, always accepting the contact
func (s *Space) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	shapeA, shapeB := arb.Shapes()
	a, okA := s.lookup(shapeA)
	b, okB := s.lookup(shapeB)
	if !okA || !okB {
		return true
	}
	s.pending = append(s.pending, orderSensorFirst(a.entity, b.entity, a.def.Collider.Sensor, b.def.Collider.Sensor))
	return true
}

func (s *Space) lookup(shape *cp.Shape) (*chipmunkBody, bool) {
	e, ok := shape.UserData.(core.Entity)
	if !ok {
		return nil, false
	}
	rec, ok := s.bodies[e]
	return rec, ok
}

// AddBody registers a body with its single shape
func (s *Space) AddBody(e core.Entity, def BodyDef) error {
	if _, exists := s.bodies[e]; exists {
		return fmt.Errorf("entity %d: %w", e, ErrDuplicateBody)
	}
	if !validCollider(def.Collider) {
		return fmt.Errorf("entity %d: %w", e, ErrInvalidShape)
	}

	var body *cp.Body
	switch def.Kind {
	case BodyStatic:
		body = cp.NewStaticBody()
	default:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.UserData = e
	s.space.AddBody(body)
	body.SetPosition(toVector(def.Position))

	rec := &chipmunkBody{
		entity: e,
		def:    def,
		body:   body,
		lockX:  def.Position.X,
	}

	if def.Kind == BodyDynamic {
		body.SetVelocity(def.Velocity.X, def.Velocity.Y)
		if def.LockX {
			body.SetVelocity(0, def.Velocity.Y)
			body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
				cp.BodyUpdateVelocity(b, gravity, damping, dt)
				b.SetVelocity(0, b.Velocity().Y)
			})
		}
	}

	rec.shape = s.space.AddShape(s.newShape(rec, def.Collider))
	s.bodies[e] = rec
	return nil
}

func (s *Space) newShape(rec *chipmunkBody, c component.ColliderComponent) *cp.Shape {
	var shape *cp.Shape
	switch c.Kind {
	case component.ShapeCircle:
		shape = cp.NewCircle(rec.body, c.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(rec.body, c.HalfExtents.X*2, c.HalfExtents.Y*2, 0)
	}

	shape.SetElasticity(rec.def.Elasticity)
	shape.SetFriction(rec.def.Friction)
	shape.SetSensor(c.Sensor)
	if rec.def.ReportEvents {
		shape.SetCollisionType(collisionReport)
	} else {
		shape.SetCollisionType(collisionSilent)
	}
	shape.UserData = rec.entity
	return shape
}

// RemoveBody drops the body and its shape
func (s *Space) RemoveBody(e core.Entity) {
	rec, ok := s.bodies[e]
	if !ok {
		return
	}
	s.space.RemoveShape(rec.shape)
	s.space.RemoveBody(rec.body)
	delete(s.bodies, e)
}

// Step advances the space in equal substeps
// Locked axes are re-pinned after every substep to cancel contact push
func (s *Space) Step(dt time.Duration) {
	sub := dt.Seconds() / float64(s.substeps)
	if sub <= 0 {
		return
	}
	for i := 0; i < s.substeps; i++ {
		s.space.Step(sub)
		for _, rec := range s.bodies {
			if rec.def.Kind != BodyDynamic || !rec.def.LockX {
				continue
			}
			pos := rec.body.Position()
			if pos.X != rec.lockX {
				rec.body.SetPosition(cp.Vector{X: rec.lockX, Y: pos.Y})
			}
			rec.body.SetVelocity(0, rec.body.Velocity().Y)
		}
	}
}

// Body returns the current state of an entity's body
func (s *Space) Body(e core.Entity) (BodyState, bool) {
	rec, ok := s.bodies[e]
	if !ok {
		return BodyState{}, false
	}
	return BodyState{
		Position: fromVector(rec.body.Position()),
		Velocity: fromVector(rec.body.Velocity()),
	}, true
}

// SetVelocity overwrites the linear velocity of a dynamic body
func (s *Space) SetVelocity(e core.Entity, v vmath.Vec2F) error {
	rec, ok := s.bodies[e]
	if !ok {
		return fmt.Errorf("set velocity on entity %d: %w", e, ErrUnknownBody)
	}
	if rec.def.Kind != BodyDynamic {
		return nil
	}
	if rec.def.LockX {
		v.X = 0
	}
	rec.body.SetVelocity(v.X, v.Y)
	return nil
}

// SetPosition teleports a body, static shapes are reinserted at the new transform
func (s *Space) SetPosition(e core.Entity, p vmath.Vec2F) error {
	rec, ok := s.bodies[e]
	if !ok {
		return fmt.Errorf("set position on entity %d: %w", e, ErrUnknownBody)
	}
	rec.body.SetPosition(toVector(p))
	rec.lockX = p.X
	if rec.def.Kind == BodyStatic {
		s.reinsert(rec)
	}
	return nil
}

// SetShape swaps the collider geometry
func (s *Space) SetShape(e core.Entity, c component.ColliderComponent) error {
	rec, ok := s.bodies[e]
	if !ok {
		return fmt.Errorf("set shape on entity %d: %w", e, ErrUnknownBody)
	}
	if !validCollider(c) {
		return fmt.Errorf("set shape on entity %d: %w", e, ErrInvalidShape)
	}

	rec.def.Collider = c
	s.reinsert(rec)
	return nil
}

// reinsert replaces the shape of a body with a fresh one built from its collider
// Static shapes cache their bounding box and index slot when added
func (s *Space) reinsert(rec *chipmunkBody) {
	s.space.RemoveShape(rec.shape)
	rec.shape = s.space.AddShape(s.newShape(rec, rec.def.Collider))
}

// DrainCollisions returns contact starts in the order the solver produced them
func (s *Space) DrainCollisions() []Collision {
	if len(s.pending) == 0 {
		return nil
	}
	out := s.pending
	s.pending = make([]Collision, 0, cap(out))
	return out
}

func toVector(v vmath.Vec2F) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) vmath.Vec2F {
	return vmath.Vec2F{X: v.X, Y: v.Y}
}
