// Package navigator resolves directional focus moves between UI widgets.
//
// A Context is owned by the UI framework and passed to every query. Queries
// are pure: they read a snapshot of the registered widgets and return the
// widget that should receive focus, or nil. They never change focus.
package navigator

import "github.com/younwookim/focusnav/internal/domain/nav"

// Source enumerates the currently registered widgets.
type Source interface {
	AppendNavigables(dst []nav.Navigable) []nav.Navigable
}

// Context holds the navigation state shared by all queries: the candidate
// source, tuning, the block switch and a reusable scratch buffer.
//
// A Context is meant for the UI thread. It is not safe for concurrent use.
type Context struct {
	src     Source
	tuning  Tuning
	blocked bool

	scratch  []nav.Navigable
	querying bool
}

// NewContext creates a context over src.
func NewContext(src Source, tuning Tuning) *Context {
	tuning = tuning.withDefaults()
	return &Context{
		src:     src,
		tuning:  tuning,
		scratch: make([]nav.Navigable, 0, tuning.InitialCapacity),
	}
}

// Tuning returns the active tuning
func (c *Context) Tuning() Tuning {
	return c.tuning
}

// SetBlocked enables or disables the navigation block. While blocked every
// query returns nil.
func (c *Context) SetBlocked(blocked bool) {
	c.blocked = blocked
}

// Blocked reports whether navigation is blocked
func (c *Context) Blocked() bool {
	return c.blocked
}

// snapshot copies the candidates into the scratch buffer. The returned
// release func clears the buffer; it must be called when the query is done.
// A query started while another is in flight gets a private buffer.
func (c *Context) snapshot() ([]nav.Navigable, func()) {
	if c.src == nil {
		return nil, func() {}
	}

	if c.querying {
		return c.src.AppendNavigables(nil), func() {}
	}

	c.querying = true
	c.scratch = c.src.AppendNavigables(c.scratch[:0])
	return c.scratch, func() {
		clear(c.scratch)
		c.scratch = c.scratch[:0]
		c.querying = false
	}
}
