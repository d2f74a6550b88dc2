package rule

import (
	"github.com/lixenwraith/pong/core"
)

// ClassifyCue picks the sound for a collision-start
// Any goal involvement is a score cue, everything else bounces
func ClassifyCue(c Contact) core.SoundType {
	if c.HasGoal() {
		return core.SoundScore
	}
	return core.SoundBounce
}
