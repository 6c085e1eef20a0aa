// Package nav defines the contract between focusable UI widgets and the
// directional navigation resolver.
package nav

import (
	"reflect"

	"github.com/younwookim/focusnav/internal/domain/geom"
)

// Mode governs how an element resolves directional moves.
type Mode int

const (
	ModeNone Mode = iota
	ModeHorizontal
	ModeVertical
	ModeAutomatic
	ModeExplicit
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeHorizontal:
		return "Horizontal"
	case ModeVertical:
		return "Vertical"
	case ModeAutomatic:
		return "Automatic"
	case ModeExplicit:
		return "Explicit"
	default:
		return "Unknown"
	}
}

// ParseMode converts a config string ("none", "horizontal", "vertical",
// "automatic", "explicit") into a Mode. Empty means automatic.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "automatic":
		return ModeAutomatic, true
	case "none":
		return ModeNone, true
	case "horizontal":
		return ModeHorizontal, true
	case "vertical":
		return ModeVertical, true
	case "explicit":
		return ModeExplicit, true
	default:
		return ModeNone, false
	}
}

// Allows reports whether automatic search may run in direction d.
func (m Mode) Allows(d Direction) bool {
	switch m {
	case ModeAutomatic, ModeExplicit:
		return d != DirNone
	case ModeHorizontal:
		return d.IsHorizontal()
	case ModeVertical:
		return d.IsVertical()
	default:
		return false
	}
}

// ParentID identifies an element's parent container. Only compared for equality.
type ParentID uint64

// Navigable is implemented by widgets that can take part in directional navigation.
//
// Widgets are tracked by identity, so implementations must be comparable;
// use a pointer receiver. Widgets of a non-comparable type (a struct value
// holding a slice or map) are never available and the registry refuses them.
type Navigable interface {
	// IsActive returns false once the widget is hidden or destroyed.
	IsActive() bool

	// IsInteractable returns whether the widget currently accepts focus.
	IsInteractable() bool

	// Bounds returns the widget rectangle in its own local space (Y down).
	Bounds() geom.Rect

	// Frame maps local space to the shared root space. nil means root.
	Frame() *geom.Frame

	// ParentID returns the identity of the widget's container.
	ParentID() ParentID

	// Navigation returns the widget's navigation settings.
	Navigation() Navigation
}

// Navigation holds per-widget navigation settings.
type Navigation struct {
	Mode Mode

	// Explicit targets, used when Mode is ModeExplicit
	SelectOnUp    Navigable
	SelectOnDown  Navigable
	SelectOnLeft  Navigable
	SelectOnRight Navigable

	// AllowToOtherParent lets automatic search from this widget land on
	// widgets under a different parent.
	AllowToOtherParent bool
	// AllowToThisObject is false for widgets that must never be a target.
	AllowToThisObject bool

	Explicit *ExplicitOverrides
}

// Target returns the explicit target for d, or nil.
func (n Navigation) Target(d Direction) Navigable {
	switch d {
	case DirUp:
		return n.SelectOnUp
	case DirDown:
		return n.SelectOnDown
	case DirLeft:
		return n.SelectOnLeft
	case DirRight:
		return n.SelectOnRight
	default:
		return nil
	}
}

// ExplicitOverrides are hand-authored fallback lists consulted when an
// explicit target is missing or unavailable.
type ExplicitOverrides struct {
	// AddNewSelections enables the per-direction lists below.
	AddNewSelections bool
	// UseAutomaticIfNull falls through to automatic search when nothing
	// explicit is available.
	UseAutomaticIfNull bool

	Up, Down, Left, Right []Navigable
}

// List returns the override list for d.
func (o *ExplicitOverrides) List(d Direction) []Navigable {
	if o == nil {
		return nil
	}
	switch d {
	case DirUp:
		return o.Up
	case DirDown:
		return o.Down
	case DirLeft:
		return o.Left
	case DirRight:
		return o.Right
	default:
		return nil
	}
}

// IsAvailable reports whether n is non-nil, comparable, active and interactable.
// Safe to call with typed-nil widgets that implement the nil check themselves.
func IsAvailable(n Navigable) bool {
	return IsComparable(n) && n.IsActive() && n.IsInteractable()
}

// IsComparable reports whether n is non-nil and can be compared with ==
// without panicking.
func IsComparable(n Navigable) bool {
	return n != nil && reflect.TypeOf(n).Comparable()
}
