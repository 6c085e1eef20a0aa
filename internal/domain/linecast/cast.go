package linecast

import (
	"math"

	"github.com/younwookim/focusnav/internal/domain/geom"
)

// Entry is the result of a line cast: the parametric fraction along the
// segment where it first enters the rectangle. No intersection is +Inf.
type Entry struct {
	Fraction float64
}

// NoEntry is the result for a segment that does not enter the rectangle.
var NoEntry = Entry{Fraction: math.Inf(1)}

// Hit returns true if the segment entered the rectangle.
func (e Entry) Hit() bool {
	return e.Fraction >= 0 && e.Fraction <= 1
}

// Point returns the entry point on the segment start→end.
func (e Entry) Point(start, end geom.Vec2) geom.Vec2 {
	return start.Add(end.Sub(start).Scale(e.Fraction))
}

// RayToHorizontalSide intersects the segment start + dir*t, t in [0,1], with
// the horizontal side from (sideX, sideY) to (sideX+sideWidth, sideY).
// Returns t, or +Inf if they do not meet.
func RayToHorizontalSide(start, dir geom.Vec2, sideX, sideY, sideWidth float64) float64 {
	t := (sideY - start.Y) / dir.Y
	// Written so that NaN (0/0) also rejects
	if !(t >= 0 && t <= 1) {
		return math.Inf(1)
	}

	x := start.X + dir.X*t
	u := (x - sideX) / sideWidth
	if !(u >= 0 && u <= 1) {
		return math.Inf(1)
	}
	return t
}

// RayToVerticalSide intersects the segment start + dir*t, t in [0,1], with
// the vertical side from (sideX, sideY) to (sideX, sideY+sideHeight).
func RayToVerticalSide(start, dir geom.Vec2, sideX, sideY, sideHeight float64) float64 {
	t := (sideX - start.X) / dir.X
	if !(t >= 0 && t <= 1) {
		return math.Inf(1)
	}

	y := start.Y + dir.Y*t
	v := (y - sideY) / sideHeight
	if !(v >= 0 && v <= 1) {
		return math.Inf(1)
	}
	return t
}

func castSide(side Side, start, dir geom.Vec2, rect geom.Rect) float64 {
	switch side {
	case SideTop:
		return RayToHorizontalSide(start, dir, rect.XMin(), rect.YMax(), rect.W)
	case SideBottom:
		return RayToHorizontalSide(start, dir, rect.XMin(), rect.YMin(), rect.W)
	case SideLeft:
		return RayToVerticalSide(start, dir, rect.XMin(), rect.YMin(), rect.H)
	case SideRight:
		return RayToVerticalSide(start, dir, rect.XMax(), rect.YMin(), rect.H)
	default:
		return math.Inf(1)
	}
}

// CastLineEntryIntersection returns where the segment start→end first enters
// rect. A segment starting on the boundary and heading inward (or along the
// side) enters at fraction 0. Segments that start strictly inside report NoEntry.
func CastLineEntryIntersection(start, end geom.Vec2, rect geom.Rect) Entry {
	dir := end.Sub(start)

	startRegion := GetRegion(rect, start)
	if startRegion == MiddleCenter {
		if entersFromBoundary(start, dir, rect) {
			return Entry{Fraction: 0}
		}
		return NoEntry
	}

	side := SidesFor(startRegion, GetRegion(rect, end))
	if side == SideNone {
		return NoEntry
	}

	first, fallback := side.Split()

	f := castSide(first, start, dir, rect)
	if math.IsInf(f, 1) && fallback != SideNone {
		f = castSide(fallback, start, dir, rect)
	}
	return Entry{Fraction: f}
}

// entersFromBoundary reports whether a segment starting at p, which is known
// to be within rect, sits on a side and does not point out through it.
func entersFromBoundary(p, dir geom.Vec2, rect geom.Rect) bool {
	if rect.IsEmpty() || (dir.X == 0 && dir.Y == 0) {
		return false
	}

	onSide := false
	if p.X == rect.XMin() {
		onSide = true
		if dir.X < 0 {
			return false
		}
	}
	if p.X == rect.XMax() {
		onSide = true
		if dir.X > 0 {
			return false
		}
	}
	if p.Y == rect.YMin() {
		onSide = true
		if dir.Y < 0 {
			return false
		}
	}
	if p.Y == rect.YMax() {
		onSide = true
		if dir.Y > 0 {
			return false
		}
	}
	return onSide
}
