package system

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/rule"
)

// SoundCueSystem turns every collision start into one sound request
type SoundCueSystem struct {
	engine.SystemBase
}

// NewSoundCueSystem creates the collision sound classifier
func NewSoundCueSystem(world *engine.World) engine.System {
	return &SoundCueSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *SoundCueSystem) Priority() int {
	return constant.PriorityGame
}

// Update implements System interface (no tick-based logic)
func (s *SoundCueSystem) Update() {}

func (s *SoundCueSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventCollisionStarted}
}

func (s *SoundCueSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.CollisionStartedPayload)
	if !ok {
		return
	}
	s.World.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{
		SoundType: rule.ClassifyCue(contact(s.Component, payload)),
	})
}
