// Package registry tracks the navigable widgets that currently exist.
//
// Widgets are registered as they are created and unregistered when they are
// destroyed. Enumeration follows registration order so that navigation
// queries over the same layout always see candidates in the same order.
package registry

import "github.com/younwookim/focusnav/internal/domain/nav"

// ID is a unique identifier for a registered widget (never recycled)
type ID uint64

// Registry holds registered widgets keyed by ID
type Registry struct {
	nextID ID

	items map[ID]nav.Navigable
	order []ID // registration order; compacted lazily
	dead  int  // unregistered IDs still present in order
}

// New creates an empty registry with room for capacity widgets.
func New(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		nextID: 1, // 0 is "nil"
		items:  make(map[ID]nav.Navigable, capacity),
		order:  make([]ID, 0, capacity),
	}
}

// Register adds n and returns its ID. Registering nil or a widget of a
// non-comparable type returns 0.
func (r *Registry) Register(n nav.Navigable) ID {
	if !nav.IsComparable(n) {
		return 0
	}
	id := r.nextID
	r.nextID++

	r.items[id] = n
	r.order = append(r.order, id)
	return id
}

// Unregister removes the widget with the given ID. Unknown IDs are ignored.
func (r *Registry) Unregister(id ID) {
	if _, ok := r.items[id]; !ok {
		return
	}
	delete(r.items, id)
	r.dead++

	// Compact once half of the order slice is stale
	if r.dead*2 > len(r.order) {
		r.compact()
	}
}

// UnregisterNavigable removes every registration of n.
func (r *Registry) UnregisterNavigable(n nav.Navigable) {
	for _, id := range r.IDs() {
		if r.items[id] == n {
			r.Unregister(id)
		}
	}
}

func (r *Registry) compact() {
	live := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.items[id]; ok {
			live = append(live, id)
		}
	}
	r.order = live
	r.dead = 0
}

// Get returns the widget with the given ID
func (r *Registry) Get(id ID) (nav.Navigable, bool) {
	n, ok := r.items[id]
	return n, ok
}

// Exists checks if id is registered
func (r *Registry) Exists(id ID) bool {
	_, ok := r.items[id]
	return ok
}

// Len returns the number of registered widgets
func (r *Registry) Len() int {
	return len(r.items)
}

// IDs returns the registered IDs in registration order
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.items))
	for _, id := range r.order {
		if _, ok := r.items[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// AppendNavigables appends every registered widget to dst in registration
// order and returns the extended slice.
func (r *Registry) AppendNavigables(dst []nav.Navigable) []nav.Navigable {
	for _, id := range r.order {
		if n, ok := r.items[id]; ok {
			dst = append(dst, n)
		}
	}
	return dst
}
