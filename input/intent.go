package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, q, Ctrl+C
	IntentToggleMute // m
	IntentReset      // r

	// Gameplay key, resolved by paddle bindings
	IntentPaddle
)

func (i IntentType) String() string {
	switch i {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentReset:
		return "reset"
	case IntentPaddle:
		return "paddle"
	default:
		return "none"
	}
}
