package navigator

import (
	"math"

	"github.com/younwookim/focusnav/internal/domain/nav"
)

// FindClosestSelectable returns the available widget whose center is nearest
// to caller's center, ignoring direction. Used to re-home focus when the
// focused widget goes away. forcePermission lifts the same-parent restriction.
func (c *Context) FindClosestSelectable(caller nav.Navigable, forcePermission bool) nav.Navigable {
	if c.blocked || caller == nil {
		return nil
	}

	callerBounds := caller.Bounds()
	callerFrame := caller.Frame()
	if callerBounds.IsEmpty() || !callerBounds.IsFinite() || !callerFrame.IsInvertible() {
		return nil
	}
	center := callerBounds.FlipY().Center()
	callerSettings := caller.Navigation()

	var (
		best    nav.Navigable
		bestSqr = math.Inf(1)
	)

	candidates, release := c.snapshot()
	defer release()

	for _, cand := range candidates {
		if !eligible(caller, cand, callerSettings, forcePermission) {
			continue
		}
		rect, ok := candidateRect(cand, callerFrame)
		if !ok {
			continue
		}

		sqr := rect.Center().Sub(center).SqrMagnitude()
		if sqr < bestSqr {
			bestSqr = sqr
			best = cand
		}
	}
	return best
}
