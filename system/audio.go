package system

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from direct audio manager access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system bound to the world's audio resource
// The player may be nil if audio is disabled
func NewAudioSystem(world *engine.World) engine.System {
	var player engine.AudioPlayer
	if world.Resource.Audio != nil {
		player = world.Resource.Audio.Player
	}

	return &AudioSystem{
		world:  world,
		player: player,
	}
}

// Priority returns the system's priority
func (s *AudioSystem) Priority() int {
	return constant.PriorityUI
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventAudioMuteToggle,
	}
}

// HandleEvent processes sound request and mute events, the player owns the mute state
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case event.EventSoundRequest:
		if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			s.player.Play(payload.SoundType)
		}
	case event.EventAudioMuteToggle:
		enabled := s.player.ToggleMute()
		s.world.Resource.Log.WithField("enabled", enabled).Info("audio mute toggled")
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update() {}
