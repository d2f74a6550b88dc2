package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

// KeyTable maps terminal keys to intents
// Keys absent from both maps are gameplay keys
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default system bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'r': IntentReset,
		},
	}
}

// specialNames names non-rune keys usable as paddle bindings
var specialNames = map[tcell.Key]core.Key{
	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",
	tcell.KeyPgUp:  "pgup",
	tcell.KeyPgDn:  "pgdn",
	tcell.KeyHome:  "home",
	tcell.KeyEnd:   "end",
}

// Resolve classifies a key event
// Gameplay keys return IntentPaddle with the normalized key name
func (kt *KeyTable) Resolve(ev *tcell.EventKey) (IntentType, core.Key) {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if intent, ok := kt.Runes[r]; ok {
			return intent, ""
		}
		if r == ' ' {
			return IntentPaddle, "space"
		}
		return IntentPaddle, core.Key(string(r))
	}

	if intent, ok := kt.SpecialKeys[ev.Key()]; ok {
		return intent, ""
	}
	if name, ok := specialNames[ev.Key()]; ok {
		return IntentPaddle, name
	}
	return IntentNone, ""
}

// Bound reports whether a key is claimed by a system intent, paddle bindings must avoid these
func (kt *KeyTable) Bound(key core.Key) bool {
	runes := []rune(string(key))
	if len(runes) != 1 {
		return false
	}
	_, ok := kt.Runes[unicode.ToLower(runes[0])]
	return ok
}
