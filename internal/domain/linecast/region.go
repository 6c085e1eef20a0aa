// Package linecast implements line segment versus rectangle entry tests.
//
// Space is Y-up: "Upper" means above YMax. The plane around a rectangle is
// split into a 3x3 grid of regions; the regions of the two segment endpoints
// decide which rectangle side(s) the segment can enter through.
package linecast

import "github.com/younwookim/focusnav/internal/domain/geom"

// Region is one cell of the 3x3 grid around a rectangle.
// Encoded as row*3 + col (row 0 = upper, col 0 = left).
type Region int

const (
	UpperLeft Region = iota
	UpperCenter
	UpperRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	LowerLeft
	LowerCenter
	LowerRight
)

// RegionCount is the number of regions
const RegionCount = 9

// String returns the string representation of the region
func (r Region) String() string {
	switch r {
	case UpperLeft:
		return "UpperLeft"
	case UpperCenter:
		return "UpperCenter"
	case UpperRight:
		return "UpperRight"
	case MiddleLeft:
		return "MiddleLeft"
	case MiddleCenter:
		return "MiddleCenter"
	case MiddleRight:
		return "MiddleRight"
	case LowerLeft:
		return "LowerLeft"
	case LowerCenter:
		return "LowerCenter"
	case LowerRight:
		return "LowerRight"
	default:
		return "Unknown"
	}
}

// Row returns 0 (upper), 1 (middle) or 2 (lower).
func (r Region) Row() int { return int(r) / 3 }

// Col returns 0 (left), 1 (center) or 2 (right).
func (r Region) Col() int { return int(r) % 3 }

// GetRegion classifies p against rect. The middle bands are inclusive, so a
// point on an edge belongs to the band the edge bounds.
func GetRegion(rect geom.Rect, p geom.Vec2) Region {
	row := 1
	if p.Y > rect.YMax() {
		row = 0
	} else if p.Y < rect.YMin() {
		row = 2
	}

	col := 1
	if p.X < rect.XMin() {
		col = 0
	} else if p.X > rect.XMax() {
		col = 2
	}

	return Region(row*3 + col)
}
