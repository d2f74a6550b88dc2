package vmath

import (
	"math"
	"testing"
)

func TestV2FNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2F
		want Vec2F
	}{
		{"zero", Vec2F{}, Vec2F{}},
		{"axis", V2F(0, -5), V2F(0, -1)},
		{"diagonal", V2F(3, 4), V2F(0.6, 0.8)},
		{"nan", V2F(math.NaN(), 1), Vec2F{}},
		{"inf", V2F(math.Inf(1), 0), Vec2F{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2FNormalizeOrZero(tt.in)
			if !V2FApproxEqual(got, tt.want, 1e-12) {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestV2FComponentWise(t *testing.T) {
	a := V2F(-200, 150)
	b := V2F(800, 600)

	if got := V2FDiv(a, b); !V2FApproxEqual(got, V2F(-0.25, 0.25), 1e-12) {
		t.Errorf("Expected (-0.25, 0.25), got %+v", got)
	}
	if got := V2FMul(V2F(-0.25, 0.25), b); got != a {
		t.Errorf("Expected %+v, got %+v", a, got)
	}
}

func TestV2FMag(t *testing.T) {
	if got := V2FMag(V2F(3, 4)); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := V2FMagSq(V2FScale(V2F(1, 1), 2)); got != 8 {
		t.Errorf("Expected 8, got %v", got)
	}
	if got := V2FSub(V2FAdd(V2F(1, 2), V2F(3, 4)), V2F(4, 6)); got != (Vec2F{}) {
		t.Errorf("Expected zero vector, got %+v", got)
	}
}
