package event

// EventType represents the type of game event
type EventType int

const (
	// === Engine Event ===

	// EventGameReset restarts the match
	// Trigger: Frontend reset key
	// Consumer: ScoringSystem | Payload: nil
	EventGameReset EventType = iota

	// EventWindowResized signals the field window changed size
	// Trigger: Frontend resize notification
	// Consumer: LayoutSystem | Payload: *WindowResizedPayload
	EventWindowResized

	// === Physics Event ===

	// EventCollisionStarted signals two bodies began touching this tick
	// Trigger: PhysicsSystem after each step | Payload: *CollisionStartedPayload
	// Consumer: ScoringSystem, SoundCueSystem
	EventCollisionStarted

	// === Game Event ===

	// EventScoreChanged signals a score counter changed
	// Trigger: ScoringSystem
	// Consumer: ScoreTextSystem | Payload: *ScoreChangedPayload
	EventScoreChanged

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: SoundCueSystem
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventAudioMuteToggle flips the audio mute state
	// Trigger: Frontend mute key
	// Consumer: AudioSystem | Payload: nil
	EventAudioMuteToggle
)

func (t EventType) String() string {
	switch t {
	case EventGameReset:
		return "GameReset"
	case EventWindowResized:
		return "WindowResized"
	case EventCollisionStarted:
		return "CollisionStarted"
	case EventScoreChanged:
		return "ScoreChanged"
	case EventSoundRequest:
		return "SoundRequest"
	case EventAudioMuteToggle:
		return "AudioMuteToggle"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event
// Frame is the tick number the event was produced on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
