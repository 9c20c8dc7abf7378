package keymap

import "strings"

// A chord is the canonical lookup key for a binding: the primary
// modifier marker, the shift marker, the alt marker and the normalized
// key, joined by "+" in that fixed order. Ctrl and Meta collapse into
// the same primary marker, so a binding declared with Ctrl also fires
// for Cmd.
func chord(key string, ctrl, shift, alt, meta bool) string {
	key, shift = normalizeKey(key, shift)
	parts := make([]string, 0, 4)
	if ctrl || meta {
		parts = append(parts, "ctrl")
	}
	if shift {
		parts = append(parts, "shift")
	}
	if alt {
		parts = append(parts, "alt")
	}
	parts = append(parts, key)
	return strings.Join(parts, "+")
}

// Chord returns the canonical chord for a definition. Encoding is
// total and pure: any definition yields a chord, even one no real key
// event can produce.
func (d Definition) Chord() string {
	return chord(d.Key, d.Ctrl, d.Shift, d.Alt, d.Meta)
}

// Chord returns the canonical chord for an event, using the same
// algorithm as Definition.Chord so the two always agree.
func (e Event) Chord() string {
	return chord(e.Key, e.Ctrl, e.Shift, e.Alt, e.Meta)
}
