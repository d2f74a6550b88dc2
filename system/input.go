package system

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/rule"
)

// InputSystem maps held keys to paddle velocity every tick
type InputSystem struct {
	engine.SystemBase
}

// NewInputSystem creates the paddle input system
func NewInputSystem(world *engine.World) engine.System {
	return &InputSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InputSystem) Priority() int {
	return constant.PriorityInput
}

// Update overwrites paddle velocity from the current key state
// A frontend without key state leaves every key released
func (s *InputSystem) Update() {
	var keys engine.KeyState
	if s.Resource.Input != nil {
		keys = s.Resource.Input.Keys
	}

	players := s.World.Query().
		With(s.Component.Player).
		With(s.Component.Speed).
		With(s.Component.Velocity).
		Execute()

	for _, e := range players {
		player, _ := s.Component.Player.Get(e)
		speed, _ := s.Component.Speed.Get(e)

		up, down := false, false
		if keys != nil {
			up = keys.Pressed(player.Up)
			down = keys.Pressed(player.Down)
		}

		s.Component.Velocity.Set(e, component.VelocityComponent{
			Linear: rule.PaddleVelocity(up, down, speed.Value),
		})
	}
}
