package rule

import (
	"github.com/lixenwraith/pong/vmath"
)

// AlignVelocity rescales a velocity to the given magnitude keeping its direction
// Zero and non-finite inputs have no direction and stay at zero
func AlignVelocity(velocity vmath.Vec2F, speed float64) vmath.Vec2F {
	return vmath.V2FScale(vmath.V2FNormalizeOrZero(velocity), speed)
}
