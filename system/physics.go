package system

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/physics"
)

// PhysicsSystem steps the physics port and mirrors body state into components
// Collision starts are forwarded as EventCollisionStarted
type PhysicsSystem struct {
	engine.SystemBase
	port physics.Port
}

// NewPhysicsSystem creates the physics bridge for a port
func NewPhysicsSystem(world *engine.World, port physics.Port) engine.System {
	return &PhysicsSystem{
		SystemBase: engine.NewSystemBase(world),
		port:       port,
	}
}

func (s *PhysicsSystem) Priority() int {
	return constant.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	log := s.Resource.Log

	// Push velocities written by earlier systems
	for _, e := range s.Component.Velocity.All() {
		vel, _ := s.Component.Velocity.Get(e)
		if err := s.port.SetVelocity(e, vel.Linear); err != nil {
			log.WithError(err).Debug("velocity push skipped")
		}
	}

	s.port.Step(s.Resource.Time.DeltaTime)

	// Pull solver state
	for _, e := range s.Component.Transform.All() {
		state, ok := s.port.Body(e)
		if !ok {
			continue
		}
		s.Component.Transform.Set(e, component.TransformComponent{Position: state.Position})
		if s.Component.Velocity.Has(e) {
			s.Component.Velocity.Set(e, component.VelocityComponent{Linear: state.Velocity})
		}
	}

	for _, c := range s.port.DrainCollisions() {
		s.World.PushEvent(event.EventCollisionStarted, &event.CollisionStartedPayload{
			A:      c.A,
			B:      c.B,
			Sensor: c.Sensor,
		})
	}
}
