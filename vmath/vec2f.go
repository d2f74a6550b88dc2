package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in field units
// Field origin is the center of the window, X grows right, Y grows up
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

// V2FMul multiplies component-wise
func V2FMul(a, b Vec2F) Vec2F {
	return Vec2F{a.X * b.X, a.Y * b.Y}
}

// V2FDiv divides component-wise, caller guarantees non-zero divisor components
func V2FDiv(a, b Vec2F) Vec2F {
	return Vec2F{a.X / b.X, a.Y / b.Y}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FIsFinite reports whether both components are neither NaN nor Inf
func V2FIsFinite(v Vec2F) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// V2FNormalizeOrZero returns the unit vector of v
// Zero-length or non-finite input has no direction and yields the zero vector
func V2FNormalizeOrZero(v Vec2F) Vec2F {
	if !V2FIsFinite(v) {
		return Vec2F{}
	}
	mag := V2FMag(v)
	if mag == 0 || math.IsInf(mag, 0) {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FApproxEqual compares component-wise within an absolute tolerance
func V2FApproxEqual(a, b Vec2F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
