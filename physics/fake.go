package physics

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

// FakeSpace is an in-memory Port that integrates velocities without contact resolution
// Collisions are injected by tests and surface on the next DrainCollisions
type FakeSpace struct {
	bodies  map[core.Entity]*fakeBody
	pending []Collision
	steps   int
}

type fakeBody struct {
	def   BodyDef
	state BodyState
}

// NewFakeSpace creates an empty fake
func NewFakeSpace() *FakeSpace {
	return &FakeSpace{bodies: make(map[core.Entity]*fakeBody)}
}

// Inject queues a collision start
func (f *FakeSpace) Inject(c Collision) {
	f.pending = append(f.pending, c)
}

// Steps returns the number of Step calls
func (f *FakeSpace) Steps() int {
	return f.steps
}

// Collider returns the registered collider of an entity
func (f *FakeSpace) Collider(e core.Entity) (component.ColliderComponent, bool) {
	b, ok := f.bodies[e]
	if !ok {
		return component.ColliderComponent{}, false
	}
	return b.def.Collider, true
}

func (f *FakeSpace) AddBody(e core.Entity, def BodyDef) error {
	if _, exists := f.bodies[e]; exists {
		return fmt.Errorf("entity %d: %w", e, ErrDuplicateBody)
	}
	if !validCollider(def.Collider) {
		return fmt.Errorf("entity %d: %w", e, ErrInvalidShape)
	}
	b := &fakeBody{def: def, state: BodyState{Position: def.Position}}
	if def.Kind == BodyDynamic {
		b.state.Velocity = def.Velocity
		if def.LockX {
			b.state.Velocity.X = 0
		}
	}
	f.bodies[e] = b
	return nil
}

func (f *FakeSpace) RemoveBody(e core.Entity) {
	delete(f.bodies, e)
}

// Step moves dynamic bodies along their velocity
func (f *FakeSpace) Step(dt time.Duration) {
	f.steps++
	secs := dt.Seconds()
	for _, b := range f.bodies {
		if b.def.Kind != BodyDynamic {
			continue
		}
		b.state.Position = vmath.V2FAdd(b.state.Position, vmath.V2FScale(b.state.Velocity, secs))
	}
}

func (f *FakeSpace) Body(e core.Entity) (BodyState, bool) {
	b, ok := f.bodies[e]
	if !ok {
		return BodyState{}, false
	}
	return b.state, true
}

func (f *FakeSpace) SetVelocity(e core.Entity, v vmath.Vec2F) error {
	b, ok := f.bodies[e]
	if !ok {
		return fmt.Errorf("set velocity on entity %d: %w", e, ErrUnknownBody)
	}
	if b.def.Kind != BodyDynamic {
		return nil
	}
	if b.def.LockX {
		v.X = 0
	}
	b.state.Velocity = v
	return nil
}

func (f *FakeSpace) SetPosition(e core.Entity, p vmath.Vec2F) error {
	b, ok := f.bodies[e]
	if !ok {
		return fmt.Errorf("set position on entity %d: %w", e, ErrUnknownBody)
	}
	b.state.Position = p
	return nil
}

func (f *FakeSpace) SetShape(e core.Entity, c component.ColliderComponent) error {
	b, ok := f.bodies[e]
	if !ok {
		return fmt.Errorf("set shape on entity %d: %w", e, ErrUnknownBody)
	}
	if !validCollider(c) {
		return fmt.Errorf("set shape on entity %d: %w", e, ErrInvalidShape)
	}
	b.def.Collider = c
	return nil
}

func (f *FakeSpace) DrainCollisions() []Collision {
	out := f.pending
	f.pending = nil
	return out
}
