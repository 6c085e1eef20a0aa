package nav

import "github.com/younwookim/focusnav/internal/domain/geom"

// ElementID identifies an element within a screen layout
type ElementID string

// Element is a plain focusable rectangle. It is the Navigable used by the
// layout builder and the demo; real widget types may implement Navigable
// themselves.
type Element struct {
	ID           ElementID
	Rect         geom.Rect // local space, Y down
	Transform    *geom.Frame
	Parent       ParentID
	Interactable bool
	Nav          Navigation

	destroyed bool
	hidden    bool
}

// NewElement creates an interactable, automatic-mode element that accepts
// focus from anywhere under the same parent.
func NewElement(id ElementID, rect geom.Rect, frame *geom.Frame, parent ParentID) *Element {
	return &Element{
		ID:           id,
		Rect:         rect,
		Transform:    frame,
		Parent:       parent,
		Interactable: true,
		Nav: Navigation{
			Mode:              ModeAutomatic,
			AllowToThisObject: true,
		},
	}
}

// IsActive returns false for nil, hidden or destroyed elements
func (e *Element) IsActive() bool {
	return e != nil && !e.destroyed && !e.hidden
}

// IsInteractable returns whether the element accepts focus
func (e *Element) IsInteractable() bool {
	return e != nil && e.Interactable
}

// Bounds returns the local rectangle
func (e *Element) Bounds() geom.Rect {
	if e == nil {
		return geom.Rect{}
	}
	return e.Rect
}

// Frame returns the local-to-root frame
func (e *Element) Frame() *geom.Frame {
	if e == nil {
		return nil
	}
	return e.Transform
}

// ParentID returns the container identity
func (e *Element) ParentID() ParentID {
	if e == nil {
		return 0
	}
	return e.Parent
}

// Navigation returns the navigation settings
func (e *Element) Navigation() Navigation {
	if e == nil {
		return Navigation{}
	}
	return e.Nav
}

// SetHidden hides or shows the element
func (e *Element) SetHidden(hidden bool) {
	e.hidden = hidden
}

// Destroy marks the element as gone. A destroyed element stays inactive.
func (e *Element) Destroy() {
	e.destroyed = true
}

// IsDestroyed reports whether Destroy was called
func (e *Element) IsDestroyed() bool {
	return e != nil && e.destroyed
}

// WorldRect returns the axis-aligned bounds of the element in root space (Y down).
func (e *Element) WorldRect() geom.Rect {
	if e == nil {
		return geom.Rect{}
	}
	c := e.Rect.Corners()
	for i := range c {
		c[i] = e.Transform.LocalToWorld(c[i])
	}
	return geom.FromCorners(c[:]...)
}
