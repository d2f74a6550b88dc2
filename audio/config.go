package audio

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// AudioConfig holds playback settings for the sound manager
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns stock playback settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundBounce: 1.0,
			core.SoundScore:  1.0,
		},
	}
}

// effectVolume returns the combined gain for a sound, unknown types default to unity
func (c *AudioConfig) effectVolume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
