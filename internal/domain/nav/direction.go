package nav

import "github.com/younwookim/focusnav/internal/domain/geom"

// Direction is a requested navigation direction
type Direction int

const (
	DirNone  Direction = -1
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// Directions lists the four real directions in enum order
var Directions = [4]Direction{DirRight, DirUp, DirLeft, DirDown}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// Vector returns the unit search vector in Y-up space.
// DirNone returns the zero vector.
func (d Direction) Vector() geom.Vec2 {
	switch d {
	case DirRight:
		return geom.V(1, 0)
	case DirUp:
		return geom.V(0, 1)
	case DirLeft:
		return geom.V(-1, 0)
	case DirDown:
		return geom.V(0, -1)
	default:
		return geom.Vec2{}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	if d == DirNone {
		return DirNone
	}
	return (d + 2) % 4
}

// IsHorizontal returns true for Left and Right
func (d Direction) IsHorizontal() bool {
	return d == DirLeft || d == DirRight
}

// IsVertical returns true for Up and Down
func (d Direction) IsVertical() bool {
	return d == DirUp || d == DirDown
}

// DirectionFromDelta picks the dominant-axis direction for a screen-space
// delta (Y grows downward). Deltas inside the diamond |dx|+|dy| < minDistance
// return DirNone.
func DirectionFromDelta(dx, dy, minDistance int) Direction {
	if abs(dx)+abs(dy) < minDistance {
		return DirNone
	}

	if abs(dx) >= abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
