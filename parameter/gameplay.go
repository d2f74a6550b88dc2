package parameter

// Window defaults, in field units (one unit is one window pixel)
const (
	WindowWidth  = 800.0
	WindowHeight = 600.0
	WindowTitle  = "pong"
)

// Ball
const (
	BallRadius = 5.0
	BallSpeed  = 300.0
	BallMass   = 1.0
)

// Paddle
const (
	PaddleWidth  = 10.0
	PaddleHeight = 40.0
	PaddleSpeed  = 1000.0

	// PaddleMass dwarfs the ball so contacts never push a paddle off its line
	PaddleMass = 1e6

	// PaddleXFraction places paddles at +-width/3
	PaddleXFraction = 1.0 / 3.0
)

// Field geometry
const (
	// BoundHalfThickness is the half-extent of bounds and goals across their thin axis
	BoundHalfThickness = 0.5

	// ScoreTextXFraction and ScoreTextYFraction place score texts at (+-width/4, 3*height/8)
	ScoreTextXFraction = 1.0 / 4.0
	ScoreTextYFraction = 3.0 / 8.0
)

// Default key bindings
const (
	KeyLeftUp    = "w"
	KeyLeftDown  = "s"
	KeyRightUp   = "o"
	KeyRightDown = "l"
)
