package geom

import "math"

// Rect is an axis-aligned rectangle: position of the minimum corner plus size.
type Rect struct {
	X, Y float64
	W, H float64
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) XMin() float64 { return r.X }
func (r Rect) XMax() float64 { return r.X + r.W }
func (r Rect) YMin() float64 { return r.Y }
func (r Rect) YMax() float64 { return r.Y + r.H }

// Min returns the minimum corner
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Size returns (W, H)
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0 && r.H > 0)
}

// IsFinite reports whether every field is a finite number.
func (r Rect) IsFinite() bool {
	for _, f := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.XMin() && p.X <= r.XMax() && p.Y >= r.YMin() && p.Y <= r.YMax()
}

// Corners returns the four corners: min, (max x, min y), max, (min x, max y).
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.XMin(), r.YMin()},
		{r.XMax(), r.YMin()},
		{r.XMax(), r.YMax()},
		{r.XMin(), r.YMax()},
	}
}

// FlipY mirrors the rectangle about the X axis. Used to move between
// screen space (Y down) and math space (Y up).
func (r Rect) FlipY() Rect {
	return Rect{X: r.X, Y: -(r.Y + r.H), W: r.W, H: r.H}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// FromCorners returns the smallest rectangle containing every point.
// Returns the zero Rect for no points.
func FromCorners(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
