// Package geom holds the small 2D math types shared by the navigation code.
package geom

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// SqrMagnitude returns the squared length
func (v Vec2) SqrMagnitude() float64 { return v.X*v.X + v.Y*v.Y }

// Magnitude returns the length
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.SqrMagnitude()) }

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// AngleTo returns the unsigned angle between v and o in degrees (0..180).
// Returns 0 when either vector has zero length.
func (v Vec2) AngleTo(o Vec2) float64 {
	denom := math.Sqrt(v.SqrMagnitude() * o.SqrMagnitude())
	if denom == 0 {
		return 0
	}
	cos := v.Dot(o) / denom
	// Rounding can push cos just outside [-1, 1]
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}
