package game

import (
	"testing"

	"github.com/lixenwraith/pong/core"
)

type mutePlayer struct{ muted bool }

func (p *mutePlayer) Play(core.SoundType) bool { return true }
func (p *mutePlayer) ToggleMute() bool         { p.muted = !p.muted; return !p.muted }
func (p *mutePlayer) IsMuted() bool            { return p.muted }
func (p *mutePlayer) IsRunning() bool          { return true }

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		player *mutePlayer
		want   string
	}{
		{"no audio", nil, "W/S  O/L  m mute  [no audio]"},
		{"playing", &mutePlayer{}, "W/S  O/L  m mute"},
		{"muted", &mutePlayer{muted: true}, "W/S  O/L  m mute  [muted]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.player == nil {
				got = StatusLine("W/S  O/L", "m mute", nil)
			} else {
				got = StatusLine("W/S  O/L", "m mute", tt.player)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStatusLineUsesConfiguredKeys(t *testing.T) {
	cfg := testConfig(t)
	cfg.Keys.LeftUp, cfg.Keys.LeftDown = "up", "down"

	got := StatusLine(cfg.Keys.Legend(), "m mute", &mutePlayer{})
	if got != "UP/DOWN  O/L  m mute" {
		t.Errorf("Expected configured bindings in status, got %q", got)
	}
}
