package rule

import (
	"math/rand"
	"strconv"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

// Diagonals are the four serve directions before normalization
var Diagonals = [4]vmath.Vec2F{
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: -1},
}

// Goal is the outcome of a qualifying goal contact
type Goal struct {
	// Scorer is the side whose counter increments, opposite of the goal entered
	Scorer core.Side
	Ball   core.Entity
}

// ScoreContact resolves a collision-start into a goal outcome
// Requires the sensor flag and exactly a goal plus the ball; participant order does not matter
func ScoreContact(c Contact) (Goal, bool) {
	if !c.Sensor {
		return Goal{}, false
	}
	goal, ball, ok := c.goalAndBall()
	if !ok {
		return Goal{}, false
	}
	return Goal{Scorer: goal.GoalSide.Opposite(), Ball: ball.Entity}, true
}

// RandomDiagonal picks one of the four diagonals uniformly and scales it to speed
func RandomDiagonal(rng *rand.Rand, speed float64) vmath.Vec2F {
	d := Diagonals[rng.Intn(len(Diagonals))]
	return AlignVelocity(d, speed)
}

// Serve returns the ball state after a goal: centred, heading along a random diagonal
func Serve(rng *rand.Rand, speed float64) (position, velocity vmath.Vec2F) {
	return vmath.Vec2F{}, RandomDiagonal(rng, speed)
}

// ScoreText formats a counter for display
func ScoreText(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}
