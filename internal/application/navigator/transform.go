package navigator

import (
	"github.com/younwookim/focusnav/internal/domain/geom"
)

// TransformRectToCallerSpaceInvertedY maps rect from the local space of frame
// from into the local space of frame to, then flips Y so the result is in the
// Y-up space the search runs in. Rotated frames yield the axis-aligned bounds
// of the rotated rectangle.
func TransformRectToCallerSpaceInvertedY(rect geom.Rect, from, to *geom.Frame) geom.Rect {
	if from == to {
		return rect.FlipY()
	}

	c := rect.Corners()
	for i := range c {
		c[i] = to.WorldToLocal(from.LocalToWorld(c[i]))
	}
	return geom.FromCorners(c[:]...).FlipY()
}
