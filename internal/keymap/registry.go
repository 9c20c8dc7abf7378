package keymap

import "errors"

// ErrEmptyKey rejects definitions no real key event can ever produce.
var ErrEmptyKey = errors.New("shortcut key is empty")

type entry struct {
	def     Definition
	handler Handler
}

// Registry maps chords to registered shortcuts. It preserves
// registration order so help rendering is deterministic. Like the rest
// of the engine it belongs to the host event loop goroutine and is not
// safe for concurrent use.
type Registry struct {
	entries map[string]entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds or replaces the binding for the definition's chord.
// Registering an already-bound chord silently replaces the previous
// entry; the binding keeps its original position in the help order.
func (r *Registry) Register(def Definition, handler Handler) error {
	if def.Key == "" {
		return ErrEmptyKey
	}
	c := def.Chord()
	if _, exists := r.entries[c]; !exists {
		r.order = append(r.order, c)
	}
	r.entries[c] = entry{def: def, handler: handler}
	return nil
}

// Unregister removes the binding for the definition's chord. Removing
// an absent chord is a no-op, not an error.
func (r *Registry) Unregister(def Definition) {
	c := def.Chord()
	if _, exists := r.entries[c]; !exists {
		return
	}
	delete(r.entries, c)
	for i, o := range r.order {
		if o == c {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Clear drops every binding.
func (r *Registry) Clear() {
	r.entries = make(map[string]entry)
	r.order = nil
}

// Shortcuts returns the registered definitions in registration order.
// The slice is a snapshot: mutating the registry afterwards does not
// affect it.
func (r *Registry) Shortcuts() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, c := range r.order {
		defs = append(defs, r.entries[c].def)
	}
	return defs
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	return len(r.entries)
}

// lookup returns the handler bound to a chord.
func (r *Registry) lookup(c string) (Handler, bool) {
	e, ok := r.entries[c]
	return e.handler, ok
}
