package geom

import "math"

// Frame maps a local coordinate space into its parent's space.
//
// A point p in local space lands at Position + Rot(Rotation) * (Scale * p)
// in the parent. Frames chain through Parent up to a shared root; a nil
// *Frame is the identity (the root itself). Scale is used as given, so a
// zero component collapses the space; use NewFrame for a unit-scale frame.
type Frame struct {
	Position Vec2
	Rotation float64 // radians, counter-clockwise
	Scale    Vec2
	Parent   *Frame
}

// NewFrame creates a frame at pos with unit scale and no rotation.
func NewFrame(pos Vec2, parent *Frame) *Frame {
	return &Frame{Position: pos, Scale: Vec2{1, 1}, Parent: parent}
}

func (f *Frame) toParent(p Vec2) Vec2 {
	p = p.Mul(f.Scale)
	if f.Rotation != 0 {
		sin, cos := math.Sincos(f.Rotation)
		p = Vec2{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
	}
	return p.Add(f.Position)
}

func (f *Frame) fromParent(p Vec2) Vec2 {
	p = p.Sub(f.Position)
	if f.Rotation != 0 {
		sin, cos := math.Sincos(-f.Rotation)
		p = Vec2{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
	}
	s := f.Scale
	// Division by a zero scale component yields Inf/NaN; callers reject non-finite results
	return Vec2{p.X / s.X, p.Y / s.Y}
}

// LocalToWorld maps a local point to root space.
func (f *Frame) LocalToWorld(p Vec2) Vec2 {
	for fr := f; fr != nil; fr = fr.Parent {
		p = fr.toParent(p)
	}
	return p
}

// WorldToLocal maps a root-space point into this frame's local space.
func (f *Frame) WorldToLocal(p Vec2) Vec2 {
	if f == nil {
		return p
	}
	return f.fromParent(f.Parent.WorldToLocal(p))
}

// Depth returns the number of frames in the chain, including f.
func (f *Frame) Depth() int {
	n := 0
	for fr := f; fr != nil; fr = fr.Parent {
		n++
	}
	return n
}

// IsInvertible reports whether every frame in the chain has a finite,
// non-zero scale. A nil frame is invertible.
func (f *Frame) IsInvertible() bool {
	for fr := f; fr != nil; fr = fr.Parent {
		if fr.Scale.X == 0 || fr.Scale.Y == 0 || !fr.Scale.IsFinite() {
			return false
		}
		if !fr.Position.IsFinite() || math.IsNaN(fr.Rotation) || math.IsInf(fr.Rotation, 0) {
			return false
		}
	}
	return true
}
