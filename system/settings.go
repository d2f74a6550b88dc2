package system

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Bindings are the up/down keys of one paddle
type Bindings struct {
	Up   core.Key
	Down core.Key
}

// Settings are the startup constants read by the spawner
type Settings struct {
	BallRadius  float64
	BallSpeed   float64
	PaddleSize  vmath.Vec2F
	PaddleSpeed float64
	Left        Bindings
	Right       Bindings
}

// DefaultSettings returns the stock game constants
func DefaultSettings() Settings {
	return Settings{
		BallRadius:  parameter.BallRadius,
		BallSpeed:   parameter.BallSpeed,
		PaddleSize:  vmath.V2F(parameter.PaddleWidth, parameter.PaddleHeight),
		PaddleSpeed: parameter.PaddleSpeed,
		Left:        Bindings{Up: parameter.KeyLeftUp, Down: parameter.KeyLeftDown},
		Right:       Bindings{Up: parameter.KeyRightUp, Down: parameter.KeyRightDown},
	}
}

// KeysFor returns the key pair of a side
func (s Settings) KeysFor(side core.Side) Bindings {
	if side == core.SideLeft {
		return s.Left
	}
	return s.Right
}
