package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

func TestTrackerHoldWindow(t *testing.T) {
	now := time.Unix(0, 0)
	tr := NewTracker(100 * time.Millisecond)
	tr.SetClock(func() time.Time { return now })

	if tr.Pressed("w") {
		t.Fatal("Expected key released initially")
	}

	tr.Press("w")
	now = now.Add(99 * time.Millisecond)
	if !tr.Pressed("w") {
		t.Error("Expected key held inside window")
	}

	now = now.Add(time.Millisecond)
	if tr.Pressed("w") {
		t.Error("Expected key released at window end")
	}

	// Auto-repeat extends the hold
	tr.Press("w")
	now = now.Add(50 * time.Millisecond)
	tr.Press("w")
	now = now.Add(80 * time.Millisecond)
	if !tr.Pressed("w") {
		t.Error("Expected repeat to extend hold")
	}

	tr.Release("w")
	if tr.Pressed("w") {
		t.Error("Expected explicit release")
	}

	tr.Press("s")
	tr.Reset()
	if tr.Pressed("s") {
		t.Error("Expected reset to clear keys")
	}
}

func TestKeyTableResolve(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		intent IntentType
		key    core.Key
	}{
		{"paddle rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), IntentPaddle, "w"},
		{"uppercase rune", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), IntentPaddle, "s"},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), IntentPaddle, "up"},
		{"quit rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit, ""},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, ""},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, ""},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute, ""},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), IntentReset, ""},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, key := kt.Resolve(tt.ev)
			if intent != tt.intent {
				t.Errorf("Expected intent %s, got %s", tt.intent, intent)
			}
			if key != tt.key {
				t.Errorf("Expected key %q, got %q", tt.key, key)
			}
		})
	}
}

func TestKeyTableBound(t *testing.T) {
	kt := DefaultKeyTable()
	if !kt.Bound("q") || !kt.Bound("M") {
		t.Error("Expected q and m to be system keys")
	}
	if kt.Bound("w") || kt.Bound("up") {
		t.Error("Expected w and up to be free")
	}
}
