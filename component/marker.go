package component

import (
	"github.com/lixenwraith/pong/core"
)

// BallComponent marks the ball
type BallComponent struct{}

// PlayerComponent marks a paddle and holds its key bindings
type PlayerComponent struct {
	Side core.Side
	Up   core.Key
	Down core.Key
}

// GoalComponent marks a goal sensor
type GoalComponent struct {
	Side core.Side
}

// BoundComponent marks a top or bottom wall
type BoundComponent struct {
	Edge core.Edge
}

// ScoreTextComponent is a score display mirroring one side's counter
type ScoreTextComponent struct {
	Side core.Side
	Text string
}

// MainCameraComponent marks the camera that renders the field
// Exactly one is expected to exist
type MainCameraComponent struct{}
