package physics

import (
	"testing"
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/vmath"
)

func TestFakeSpaceIntegratesAndDrains(t *testing.T) {
	f := NewFakeSpace()
	if err := f.AddBody(1, BodyDef{Kind: BodyDynamic, Collider: component.Circle(5), Velocity: vmath.V2F(60, -30)}); err != nil {
		t.Fatalf("AddBody: %v", err)
	}
	if err := f.AddBody(2, BodyDef{Kind: BodyStatic, Collider: component.Cuboid(1, 1), Position: vmath.V2F(5, 5)}); err != nil {
		t.Fatalf("AddBody: %v", err)
	}

	f.Step(time.Second / 2)

	ball, _ := f.Body(1)
	if ball.Position != vmath.V2F(30, -15) {
		t.Errorf("Expected (30,-15), got %v", ball.Position)
	}
	wall, _ := f.Body(2)
	if wall.Position != vmath.V2F(5, 5) {
		t.Errorf("Expected static body unmoved, got %v", wall.Position)
	}

	f.Inject(Collision{A: 2, B: 1})
	if got := f.DrainCollisions(); len(got) != 1 {
		t.Errorf("Expected 1 injected collision, got %d", len(got))
	}
	if got := f.DrainCollisions(); len(got) != 0 {
		t.Errorf("Expected drain to clear, got %d", len(got))
	}
}

func TestOrderSensorFirst(t *testing.T) {
	c := orderSensorFirst(1, 2, false, true)
	if c.A != 2 || c.B != 1 || !c.Sensor {
		t.Errorf("Expected (2,1,sensor), got %+v", c)
	}
	c = orderSensorFirst(1, 2, false, false)
	if c.A != 1 || c.B != 2 || c.Sensor {
		t.Errorf("Expected (1,2,solid), got %+v", c)
	}
}
