package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Ball hit a paddle or bound
	SoundScore                   // Ball entered a goal
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}
