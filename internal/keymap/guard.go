package keymap

// EscapeHatchKey is the one shortcut allowed to fire while an editable
// surface has focus. It rescues the user from an unrelated field; it
// never overrides typing a slash into the search field itself.
const EscapeHatchKey = "/"

// shouldDispatch reports whether the event may reach the registry.
// Pure predicate over (key, modifiers, target): typing into an
// editable surface suppresses dispatch, with the escape hatch as the
// only exception.
func shouldDispatch(e *Event) bool {
	if !e.Target.Editable() {
		return true
	}
	if key, _ := normalizeKey(e.Key, e.Shift); key != EscapeHatchKey {
		return false
	}
	if e.Target.SearchField && !e.HasModifiers() {
		return false
	}
	return true
}
