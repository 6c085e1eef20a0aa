package navigator

import (
	"math"

	"github.com/younwookim/focusnav/internal/domain/geom"
	"github.com/younwookim/focusnav/internal/domain/linecast"
	"github.com/younwookim/focusnav/internal/domain/nav"
)

// FindNextSelectable returns the widget that should receive focus when moving
// from caller in direction dir, or nil.
func (c *Context) FindNextSelectable(caller nav.Navigable, dir nav.Direction) nav.Navigable {
	return c.findNext(caller, dir, false)
}

// FindNextSelectableAcrossParents is FindNextSelectable with the same-parent
// restriction lifted for this query.
func (c *Context) FindNextSelectableAcrossParents(caller nav.Navigable, dir nav.Direction) nav.Navigable {
	return c.findNext(caller, dir, true)
}

func (c *Context) findNext(caller nav.Navigable, dir nav.Direction, forcePermission bool) nav.Navigable {
	if c.blocked || caller == nil || dir == nav.DirNone {
		return nil
	}

	settings := caller.Navigation()
	switch settings.Mode {
	case nav.ModeNone:
		return nil
	case nav.ModeExplicit:
		target, automatic := resolveExplicit(settings, dir)
		if !automatic {
			return target
		}
	default:
		if !settings.Mode.Allows(dir) {
			return nil
		}
	}

	return c.findAutomatic(caller, dir, forcePermission)
}

// resolveExplicit returns the explicit target for dir. automatic is true
// when the caller's overrides ask to fall through to automatic search.
func resolveExplicit(settings nav.Navigation, dir nav.Direction) (target nav.Navigable, automatic bool) {
	if t := settings.Target(dir); nav.IsAvailable(t) {
		return t, false
	}

	o := settings.Explicit
	if o == nil {
		return nil, false
	}

	if o.AddNewSelections {
		for _, n := range o.List(dir) {
			if nav.IsAvailable(n) {
				return n, false
			}
		}
	}
	return nil, o.UseAutomaticIfNull
}

// searchStart returns the point on rect's boundary in direction d.
// d is scaled so its dominant axis is 1, which keeps the point on the edge
// midpoint for axis-aligned directions.
func searchStart(rect geom.Rect, d geom.Vec2) geom.Vec2 {
	m := math.Max(math.Abs(d.X), math.Abs(d.Y))
	if m == 0 {
		return rect.Center()
	}
	return rect.Center().Add(d.Scale(1 / m).Mul(rect.Size().Scale(0.5)))
}

// eligible applies the candidate filters shared by every query.
func eligible(caller, cand nav.Navigable, callerSettings nav.Navigation, forcePermission bool) bool {
	// Availability first: it rules out non-comparable widgets before ==
	if !nav.IsAvailable(cand) || cand == caller {
		return false
	}

	settings := cand.Navigation()
	if settings.Mode == nav.ModeNone || !settings.AllowToThisObject {
		return false
	}

	if !forcePermission && !callerSettings.AllowToOtherParent && cand.ParentID() != caller.ParentID() {
		return false
	}
	return true
}

// candidateRect returns cand's rectangle in the caller's Y-up space.
// ok is false when the rectangle is unusable (empty or not finite).
func candidateRect(cand nav.Navigable, callerFrame *geom.Frame) (geom.Rect, bool) {
	bounds := cand.Bounds()
	if bounds.IsEmpty() || !cand.Frame().IsInvertible() {
		return geom.Rect{}, false
	}
	r := TransformRectToCallerSpaceInvertedY(bounds, cand.Frame(), callerFrame)
	if !r.IsFinite() || r.IsEmpty() {
		return geom.Rect{}, false
	}
	return r, true
}

func (c *Context) findAutomatic(caller nav.Navigable, dir nav.Direction, forcePermission bool) nav.Navigable {
	callerBounds := caller.Bounds()
	callerFrame := caller.Frame()
	if callerBounds.IsEmpty() || !callerBounds.IsFinite() || !callerFrame.IsInvertible() {
		return nil
	}
	callerRect := callerBounds.FlipY()
	callerSettings := caller.Navigation()

	d := dir.Vector()
	start := searchStart(callerRect, d)
	forwardEnd := start.Add(d.Scale(c.tuning.LineLength))
	backwardEnd := start.Sub(d.Scale(c.tuning.LineLength))

	var (
		bestDirect      nav.Navigable
		bestDirectSqr   = math.Inf(1)
		bestCenter      nav.Navigable
		bestCenterScore = math.Inf(1)
		bestBack        nav.Navigable
		bestBackSqr     = math.Inf(-1)
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

		if e := linecast.CastLineEntryIntersection(start, forwardEnd, rect); e.Hit() {
			sqr := e.Point(start, forwardEnd).Sub(start).SqrMagnitude()
			if sqr < bestDirectSqr {
				bestDirectSqr = sqr
				bestDirect = cand
			}
		}

		if e := linecast.CastLineEntryIntersection(start, backwardEnd, rect); e.Hit() {
			sqr := e.Point(start, backwardEnd).Sub(start).SqrMagnitude()
			if sqr > bestBackSqr {
				bestBackSqr = sqr
				bestBack = cand
			}
		}

		toCenter := rect.Center().Sub(start)
		angle := d.AngleTo(toCenter)
		if angle > c.tuning.MaxAngle {
			continue
		}
		score := c.tuning.CenterScore(toCenter.SqrMagnitude(), angle)
		if score < bestCenterScore {
			bestCenterScore = score
			bestCenter = cand
		}
	}

	switch {
	case bestDirect != nil && bestCenter != nil:
		if bestDirectSqr < bestCenterScore {
			return bestDirect
		}
		return bestCenter
	case bestDirect != nil:
		return bestDirect
	case bestCenter != nil:
		return bestCenter
	default:
		return bestBack
	}
}
