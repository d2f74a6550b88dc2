package rule

import (
	"github.com/lixenwraith/pong/vmath"
)

// PaddleVelocity maps held keys to a vertical velocity
// Opposing keys cancel; horizontal component is always zero
func PaddleVelocity(up, down bool, speed float64) vmath.Vec2F {
	modifier := 0.0
	if up {
		modifier++
	}
	if down {
		modifier--
	}
	return vmath.Vec2F{X: 0, Y: modifier * speed}
}
