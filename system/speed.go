package system

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/rule"
)

// SpeedSystem forces |velocity| to the entity's scalar speed after the physics step
type SpeedSystem struct {
	engine.SystemBase
	port physics.Port
}

// NewSpeedSystem creates the speed alignment system
func NewSpeedSystem(world *engine.World, port physics.Port) engine.System {
	return &SpeedSystem{
		SystemBase: engine.NewSystemBase(world),
		port:       port,
	}
}

func (s *SpeedSystem) Priority() int {
	return constant.PrioritySpeed
}

func (s *SpeedSystem) Update() {
	entities := s.World.Query().
		With(s.Component.Speed).
		With(s.Component.Velocity).
		Execute()

	for _, e := range entities {
		speed, _ := s.Component.Speed.Get(e)
		vel, _ := s.Component.Velocity.Get(e)

		aligned := rule.AlignVelocity(vel.Linear, speed.Value)
		s.Component.Velocity.Set(e, component.VelocityComponent{Linear: aligned})
		if err := s.port.SetVelocity(e, aligned); err != nil {
			s.Resource.Log.WithError(err).Debug("aligned velocity not applied")
		}
	}
}
