package parameter

import "time"

// Audio output
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	AudioMasterVolume  = 0.6
)

// Bounce: single short square blip
const (
	BounceSoundFrequency = 660.0
	BounceSoundDuration  = 60 * time.Millisecond
	BounceSoundAttack    = 3 * time.Millisecond
	BounceSoundRelease   = 30 * time.Millisecond
)

// Score: two rising sine notes
const (
	ScoreSoundNote1Frequency = 523.25 // C5
	ScoreSoundNote2Frequency = 783.99 // G5
	ScoreSoundNoteDuration   = 110 * time.Millisecond
	ScoreSoundAttack         = 4 * time.Millisecond
	ScoreSoundRelease        = 60 * time.Millisecond
	ScoreSoundGain           = 0.5
)
