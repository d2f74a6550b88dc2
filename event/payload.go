package event

import (
	"github.com/lixenwraith/pong/core"
)

// WindowResizedPayload carries the new window size in field units
type WindowResizedPayload struct {
	Width  float64
	Height float64
}

// CollisionStartedPayload names the two participants of a collision-start
// Sensor is set when either participant is a sensor; sensor pairs are reported sensor-first
type CollisionStartedPayload struct {
	A, B   core.Entity
	Sensor bool
}

// ScoreChangedPayload carries the counters after the change
type ScoreChangedPayload struct {
	Left, Right uint32
}

// SoundRequestPayload requests one sound effect
type SoundRequestPayload struct {
	SoundType core.SoundType
}
