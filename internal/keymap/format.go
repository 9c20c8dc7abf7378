package keymap

import "strings"

// keyLabels maps canonical named keys to their display form. Keys not
// listed here render upper-cased.
var keyLabels = map[string]string{
	"space":     "Space",
	"left":      "←",
	"right":     "→",
	"up":        "↑",
	"down":      "↓",
	"enter":     "Enter",
	"esc":       "Esc",
	"tab":       "Tab",
	"delete":    "Del",
	"backspace": "⌫",
	"pgup":      "PgUp",
	"pgdown":    "PgDn",
	"home":      "Home",
	"end":       "End",
}

// Format renders a definition for help display. Display strings never
// feed matching; chords do. On Mac-like platforms modifiers render as
// glyphs concatenated without separators (⌘K), elsewhere as words
// joined by "+" (Ctrl+K). Part order mirrors chord encoding: primary
// modifier, shift, alt, key.
func Format(d Definition, macGlyphs bool) string {
	key, shift := normalizeKey(d.Key, d.Shift)

	label, ok := keyLabels[key]
	if !ok {
		label = strings.ToUpper(key)
	}

	var parts []string
	if d.Ctrl || d.Meta {
		parts = append(parts, pick(macGlyphs, "⌘", "Ctrl"))
	}
	if shift {
		parts = append(parts, pick(macGlyphs, "⇧", "Shift"))
	}
	if d.Alt {
		parts = append(parts, pick(macGlyphs, "⌥", "Alt"))
	}
	parts = append(parts, label)

	if macGlyphs {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, "+")
}

func pick(mac bool, glyph, word string) string {
	if mac {
		return glyph
	}
	return word
}
