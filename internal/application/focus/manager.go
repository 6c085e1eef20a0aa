// Package focus owns the single focused widget and moves it using the
// navigation context.
package focus

import (
	"github.com/younwookim/focusnav/internal/application/navigator"
	"github.com/younwookim/focusnav/internal/domain/nav"
)

// Manager tracks which widget holds focus. Exactly one widget (or none) is
// focused at a time.
type Manager struct {
	ctx     *navigator.Context
	src     navigator.Source
	current nav.Navigable

	// OnChange is called after focus moves. prev or next may be nil.
	OnChange func(prev, next nav.Navigable)

	history []nav.Navigable
}

// NewManager creates a manager that resolves moves through ctx and falls back
// to src when it needs any available widget.
func NewManager(ctx *navigator.Context, src navigator.Source) *Manager {
	return &Manager{ctx: ctx, src: src}
}

// Focused returns the currently focused widget, or nil if none.
func (m *Manager) Focused() nav.Navigable {
	return m.current
}

// SetFocus moves focus to n. Returns false (and leaves focus unchanged) if n
// is not available.
func (m *Manager) SetFocus(n nav.Navigable) bool {
	if !nav.IsAvailable(n) {
		return false
	}
	m.transfer(n)
	return true
}

// Clear drops focus.
func (m *Manager) Clear() {
	m.transfer(nil)
}

// Move asks the navigation context for the next widget in dir and focuses it.
// Returns true if focus changed.
func (m *Manager) Move(dir nav.Direction) bool {
	if m.current == nil {
		return false
	}
	next := m.ctx.FindNextSelectable(m.current, dir)
	if next == nil || next == m.current {
		return false
	}
	m.transfer(next)
	return true
}

// Reconcile re-homes focus when the focused widget is gone or no longer
// interactable: first to the nearest available widget, then to the first
// available widget in source order. Returns true if focus changed.
func (m *Manager) Reconcile() bool {
	if nav.IsAvailable(m.current) {
		return false
	}

	if m.current != nil {
		if next := m.ctx.FindClosestSelectable(m.current, true); next != nil {
			m.transfer(next)
			return true
		}
	}

	if m.ctx.Blocked() {
		return false
	}
	if first := m.firstAvailable(); first != nil {
		m.transfer(first)
		return true
	}

	if m.current != nil {
		m.transfer(nil)
		return true
	}
	return false
}

func (m *Manager) firstAvailable() nav.Navigable {
	if m.src == nil {
		return nil
	}
	for _, n := range m.src.AppendNavigables(nil) {
		if nav.IsAvailable(n) && n.Navigation().AllowToThisObject {
			return n
		}
	}
	return nil
}

func (m *Manager) transfer(next nav.Navigable) {
	prev := m.current
	m.current = next
	if next != nil {
		m.history = append(m.history, next)
	}
	if m.OnChange != nil {
		m.OnChange(prev, next)
	}
}

// History returns every widget that received focus, in order.
func (m *Manager) History() []nav.Navigable {
	return m.history
}
