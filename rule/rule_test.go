package rule

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/vmath"
)

const eps = 1e-9

func TestAlignVelocityPreservesDirection(t *testing.T) {
	tests := []struct {
		name  string
		in    vmath.Vec2F
		speed float64
		want  vmath.Vec2F
	}{
		{"axis", vmath.V2F(0, 5), 300, vmath.V2F(0, 300)},
		{"diagonal", vmath.V2F(-2, 2), math.Sqrt2, vmath.V2F(-1, 1)},
		{"already aligned", vmath.V2F(300, 0), 300, vmath.V2F(300, 0)},
		{"zero stays zero", vmath.V2F(0, 0), 300, vmath.V2F(0, 0)},
		{"nan is zero", vmath.V2F(math.NaN(), 1), 300, vmath.V2F(0, 0)},
		{"inf is zero", vmath.V2F(math.Inf(1), 0), 300, vmath.V2F(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignVelocity(tt.in, tt.speed)
			if !vmath.V2FApproxEqual(got, tt.want, eps) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAlignVelocityMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := vmath.V2F(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		got := vmath.V2FMag(AlignVelocity(v, 300))
		if math.Abs(got-300)/300 > eps {
			t.Fatalf("Expected magnitude 300 for %v, got %f", v, got)
		}
	}
}

func TestScoreContact(t *testing.T) {
	ball := Participant{Entity: 1, Ball: true}
	leftGoal := Participant{Entity: 2, Goal: true, GoalSide: core.SideLeft}
	rightGoal := Participant{Entity: 3, Goal: true, GoalSide: core.SideRight}
	paddle := Participant{Entity: 4}

	tests := []struct {
		name    string
		contact Contact
		want    core.Side
		ok      bool
	}{
		{"left goal first", Contact{A: leftGoal, B: ball, Sensor: true}, core.SideRight, true},
		{"right goal first", Contact{A: rightGoal, B: ball, Sensor: true}, core.SideLeft, true},
		{"ball first", Contact{A: ball, B: leftGoal, Sensor: true}, core.SideRight, true},
		{"not a sensor", Contact{A: leftGoal, B: ball}, 0, false},
		{"ball and paddle", Contact{A: ball, B: paddle}, 0, false},
		{"goal and paddle", Contact{A: leftGoal, B: paddle, Sensor: true}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal, ok := ScoreContact(tt.contact)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if goal.Scorer != tt.want {
				t.Errorf("Expected scorer %s, got %s", tt.want, goal.Scorer)
			}
			if goal.Ball != ball.Entity {
				t.Errorf("Expected ball entity %d, got %d", ball.Entity, goal.Ball)
			}
		})
	}
}

func TestRandomDiagonalCoversAllDirections(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	speed := 300.0
	seen := make(map[vmath.Vec2F]bool)

	for i := 0; i < 400; i++ {
		v := RandomDiagonal(rng, speed)
		if math.Abs(vmath.V2FMag(v)-speed) > eps*speed {
			t.Fatalf("Expected magnitude %f, got %f", speed, vmath.V2FMag(v))
		}
		if math.Abs(math.Abs(v.X)-math.Abs(v.Y)) > eps {
			t.Fatalf("Expected 45 degree direction, got %v", v)
		}
		seen[vmath.V2F(math.Copysign(1, v.X), math.Copysign(1, v.Y))] = true
	}

	for _, d := range Diagonals {
		if !seen[d] {
			t.Errorf("Expected diagonal %v to be chosen at least once", d)
		}
	}
}

func TestServeCentresBall(t *testing.T) {
	pos, vel := Serve(rand.New(rand.NewSource(1)), 300)
	if pos != (vmath.Vec2F{}) {
		t.Errorf("Expected origin, got %v", pos)
	}
	if math.Abs(vmath.V2FMag(vel)-300) > eps*300 {
		t.Errorf("Expected speed 300, got %f", vmath.V2FMag(vel))
	}
}

func TestClassifyCue(t *testing.T) {
	ball := Participant{Entity: 1, Ball: true}
	goal := Participant{Entity: 2, Goal: true}
	wall := Participant{Entity: 3}

	tests := []struct {
		name    string
		contact Contact
		want    core.SoundType
	}{
		{"ball and bound", Contact{A: ball, B: wall}, core.SoundBounce},
		{"goal first", Contact{A: goal, B: ball, Sensor: true}, core.SoundScore},
		{"goal second", Contact{A: ball, B: goal, Sensor: true}, core.SoundScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyCue(tt.contact); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPaddleVelocity(t *testing.T) {
	tests := []struct {
		up, down bool
		want     float64
	}{
		{true, false, 1000},
		{false, true, -1000},
		{true, true, 0},
		{false, false, 0},
	}

	for _, tt := range tests {
		got := PaddleVelocity(tt.up, tt.down, 1000)
		if got.X != 0 {
			t.Errorf("Expected zero horizontal velocity, got %f", got.X)
		}
		if got.Y != tt.want {
			t.Errorf("up=%v down=%v: expected %f, got %f", tt.up, tt.down, tt.want, got.Y)
		}
	}
}

func TestPlacements(t *testing.T) {
	size := vmath.V2F(800, 600)

	top := BoundPlacement(core.EdgeTop, size)
	if top.Position != vmath.V2F(0, 300) || top.HalfExtents != vmath.V2F(400, 0.5) {
		t.Errorf("Expected top bound at (0,300) half (400,0.5), got %+v", top)
	}
	bottom := BoundPlacement(core.EdgeBottom, size)
	if bottom.Position != vmath.V2F(0, -300) {
		t.Errorf("Expected bottom bound at (0,-300), got %v", bottom.Position)
	}

	left := GoalPlacement(core.SideLeft, size)
	if left.Position != vmath.V2F(-400, 0) || left.HalfExtents != vmath.V2F(0.5, 300) {
		t.Errorf("Expected left goal at (-400,0) half (0.5,300), got %+v", left)
	}
	right := GoalPlacement(core.SideRight, size)
	if right.Position != vmath.V2F(400, 0) {
		t.Errorf("Expected right goal at (400,0), got %v", right.Position)
	}

	if p := PaddleStart(core.SideLeft, size); math.Abs(p.X+800.0/3) > eps || p.Y != 0 {
		t.Errorf("Expected left paddle at (-800/3,0), got %v", p)
	}
	if p := ScoreTextStart(core.SideRight, size); p != vmath.V2F(200, 225) {
		t.Errorf("Expected right score text at (200,225), got %v", p)
	}
}

func TestRescale(t *testing.T) {
	from := vmath.V2F(800, 600)

	paddle := vmath.V2F(-800.0/3, 12)
	got := Rescale(paddle, from, vmath.V2F(1600, 600))
	if !vmath.V2FApproxEqual(got, vmath.V2F(-1600.0/3, 12), eps) {
		t.Errorf("Expected (-1600/3,12), got %v", got)
	}

	same := Rescale(paddle, from, from)
	if !vmath.V2FApproxEqual(same, paddle, eps) {
		t.Errorf("Expected unchanged position on same-size rescale, got %v", same)
	}
}

func TestValidSize(t *testing.T) {
	if !ValidSize(vmath.V2F(800, 600)) {
		t.Error("Expected 800x600 to be valid")
	}
	for _, s := range []vmath.Vec2F{{X: 0, Y: 600}, {X: 800, Y: -1}, {X: math.NaN(), Y: 1}} {
		if ValidSize(s) {
			t.Errorf("Expected %v to be invalid", s)
		}
	}
}

func TestScoreText(t *testing.T) {
	if got := ScoreText(0); got != "0" {
		t.Errorf("Expected \"0\", got %q", got)
	}
	if got := ScoreText(12); got != "12" {
		t.Errorf("Expected \"12\", got %q", got)
	}
}
