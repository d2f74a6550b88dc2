package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pong/core"
)

// keyCodes maps normalized key names to ebiten keys
var keyCodes = map[core.Key]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2, "3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5, "6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8, "9": ebiten.KeyDigit9,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"pgup":  ebiten.KeyPageUp,
	"pgdn":  ebiten.KeyPageDown,
	"home":  ebiten.KeyHome,
	"end":   ebiten.KeyEnd,
	"space": ebiten.KeySpace,
}

// Keyboard reports held keys from ebiten's polled keyboard state
type Keyboard struct{}

// Pressed reports whether a bound key is held, unknown names are never held
func (Keyboard) Pressed(key core.Key) bool {
	code, ok := keyCodes[core.NormalizeKey(string(key))]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(code)
}

// Known reports whether a key name maps to a physical key
func Known(key core.Key) bool {
	_, ok := keyCodes[core.NormalizeKey(string(key))]
	return ok
}
