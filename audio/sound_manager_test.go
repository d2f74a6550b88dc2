package audio

import (
	"testing"

	"github.com/lixenwraith/pong/core"
)

// TestSoundManagerDropsBeforeInitialize verifies Play is a no-op without a speaker
func TestSoundManagerDropsBeforeInitialize(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsRunning() {
		t.Fatal("Expected manager to not be running before Initialize()")
	}
	if sm.Play(core.SoundBounce) {
		t.Error("Expected Play to drop before Initialize()")
	}

	played, dropped := sm.GetStats()
	if played != 0 || dropped != 1 {
		t.Errorf("Expected 0 played and 1 dropped, got %d and %d", played, dropped)
	}

	// Cleanup on a stopped manager must be safe
	sm.Cleanup()
}

// TestSoundManagerMuteToggle verifies mute functionality
func TestSoundManagerMuteToggle(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig())

	if sm.IsMuted() {
		t.Fatal("Expected enabled config to start unmuted")
	}
	if enabled := sm.ToggleMute(); enabled {
		t.Error("Expected ToggleMute to report disabled")
	}
	if !sm.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	if enabled := sm.ToggleMute(); !enabled {
		t.Error("Expected ToggleMute to report enabled")
	}
}

// TestSoundManagerDisabledStartsMuted verifies the enabled flag
func TestSoundManagerDisabledStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false

	if !NewSoundManager(cfg).IsMuted() {
		t.Error("Expected disabled config to start muted")
	}
}
