package rule

import (
	"github.com/lixenwraith/pong/core"
)

// Participant is the gameplay role of one side of a collision pair
// Built by systems from the entity's components; rules never touch the world
type Participant struct {
	Entity   core.Entity
	Ball     bool
	Goal     bool
	GoalSide core.Side
}

// Contact is a collision-start expressed in gameplay roles
type Contact struct {
	A, B   Participant
	Sensor bool
}

// HasGoal reports whether either participant is a goal
func (c Contact) HasGoal() bool {
	return c.A.Goal || c.B.Goal
}

// goalAndBall returns the pair ordered as (goal, ball) regardless of reported order
func (c Contact) goalAndBall() (goal, ball Participant, ok bool) {
	switch {
	case c.A.Goal && c.B.Ball:
		return c.A, c.B, true
	case c.B.Goal && c.A.Ball:
		return c.B, c.A, true
	default:
		return Participant{}, Participant{}, false
	}
}
