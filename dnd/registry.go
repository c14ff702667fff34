package dnd

import (
	"sync"
)

// Payload describes the item being moved. It is an immutable snapshot
// taken at lift time; the engine forwards it verbatim and never
// inspects Item
type Payload struct {
	Item     any    // The moved item's identity, opaque to the engine
	SourceID string // Container the item was lifted from
	Index    int    // Index within the source container at lift time
}

// Handler receives drop and lifecycle notifications for one container.
// OnDrop is the sole channel by which a drag produces an effect; the
// lifecycle callbacks carry no data
type Handler struct {
	OnDrop      func(p Payload, index int)
	OnDragStart func()
	OnDragEnd   func()
}

type entry struct {
	surface *Surface
	handler Handler
}

// Registry maps container ids to their surface and drop handler.
// Registration order is preserved so that resolver tie-breaks stay
// deterministic across runs
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register adds or replaces the entry for id. Re-registering an id
// keeps its original position in iteration order. Containers mount
// and unmount in unpredictable order during view updates, so
// double-registration is not an error
func (r *Registry) Register(id string, s *Surface, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = &entry{surface: s, handler: h}
}

// Unregister removes the entry for id. Unknown ids are a no-op
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Surface returns the surface registered under id
func (r *Registry) Surface(id string) (*Surface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.surface, true
}

// Handler returns the handler registered under id
func (r *Registry) Handler(id string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Handler{}, false
	}
	return e.handler, true
}

// IDFor reverse-looks-up the id registered for surface s.
// Used when finalizing a drop from the placeholder's parent
func (r *Registry) IDFor(s *Surface) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if r.entries[id].surface == s {
			return id, true
		}
	}
	return "", false
}

// Len returns the number of registered containers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Each visits entries in registration order until fn returns false
func (r *Registry) Each(fn func(id string, s *Surface) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if !fn(id, r.entries[id].surface) {
			return
		}
	}
}
