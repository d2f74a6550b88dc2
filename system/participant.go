package system

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/rule"
)

// participant resolves the gameplay role of an entity from its components
func participant(cs *engine.ComponentStore, e core.Entity) rule.Participant {
	p := rule.Participant{Entity: e, Ball: cs.Ball.Has(e)}
	if goal, ok := cs.Goal.Get(e); ok {
		p.Goal = true
		p.GoalSide = goal.Side
	}
	return p
}

// contact converts a collision-start payload into rule input
func contact(cs *engine.ComponentStore, payload *event.CollisionStartedPayload) rule.Contact {
	return rule.Contact{
		A:      participant(cs, payload.A),
		B:      participant(cs, payload.B),
		Sensor: payload.Sensor,
	}
}
