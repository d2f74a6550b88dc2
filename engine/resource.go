package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
)

// Resource holds singleton simulation state, owned by the World and passed to every system
// Nothing here is package-global: two worlds never share scores or window size
type Resource struct {
	Time   *TimeResource
	Score  *ScoreResource
	Window *WindowResource
	Event  *EventQueueResource
	Rand   *RandResource

	// Bridged collaborators, nil-safe at every consumer
	Audio *AudioResource
	Input *InputResource

	Log logrus.FieldLogger
}

func newResource(queue *event.EventQueue) *Resource {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &Resource{
		Time:   &TimeResource{},
		Score:  &ScoreResource{},
		Window: &WindowResource{},
		Event:  &EventQueueResource{Queue: queue},
		Rand:   &RandResource{Rng: rand.New(rand.NewSource(1))},
		Log:    discard,
	}
}

// TimeResource is updated by the World at the start of each tick
type TimeResource struct {
	// DeltaTime is the fixed step of the current tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count, starting at 1 for the first tick
	FrameNumber int64
}

// ScoreResource holds the match counters
// Only the scoring rule increments them; a change is announced with EventScoreChanged
type ScoreResource struct {
	Left  uint32
	Right uint32
}

// Get returns the counter for a side
func (s *ScoreResource) Get(side core.Side) uint32 {
	if side == core.SideLeft {
		return s.Left
	}
	return s.Right
}

// Increment bumps the counter for a side
func (s *ScoreResource) Increment(side core.Side) {
	if side == core.SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}

// Reset zeroes both counters
func (s *ScoreResource) Reset() {
	s.Left, s.Right = 0, 0
}

// WindowResource caches the last applied window size, the basis for proportional rescale
// Known is false until the startup window query succeeds
type WindowResource struct {
	Width  float64
	Height float64
	Known  bool
}

// Set records a size and marks it known
func (wr *WindowResource) Set(width, height float64) {
	wr.Width, wr.Height, wr.Known = width, height, true
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// RandResource is the seedable random source for gameplay choices
type RandResource struct {
	Rng *rand.Rand
}

// Display answers the one-shot startup query for the primary window size
type Display interface {
	// WindowSize returns the field size in field units, ok is false when no primary window exists
	WindowSize() (width, height float64, ok bool)
}

// AudioPlayer defines the minimal audio interface used by game systems
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
	IsRunning() bool
}

// AudioResource wraps the audio player interface
type AudioResource struct {
	Player AudioPlayer
}

// KeyState answers held/released queries for a key
type KeyState interface {
	Pressed(key core.Key) bool
}

// InputResource wraps the key state of the active frontend
type InputResource struct {
	Keys KeyState
}
