package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// SoundManager plays synthesized effects through the system speaker
// Play calls are dropped while muted or before Initialize succeeds
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig
	mixer  *beep.Mixer

	running atomic.Bool
	muted   atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a sound manager, a nil config selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.running.Load() {
		return nil
	}

	sampleRate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferLatency)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.running.Store(true)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running.CompareAndSwap(true, false) {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Play queues a sound effect, returns false when the sound was dropped
func (sm *SoundManager) Play(st core.SoundType) bool {
	if !sm.running.Load() || sm.muted.Load() {
		sm.dropped.Add(1)
		return false
	}

	sm.mu.Lock()
	streamer := GetSoundEffect(st, sm.config)
	sm.mu.Unlock()
	if streamer == nil {
		sm.dropped.Add(1)
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning returns true once the speaker is open
func (sm *SoundManager) IsRunning() bool {
	return sm.running.Load()
}

// GetStats returns played and dropped counts
func (sm *SoundManager) GetStats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
