package keymap

import (
	"strings"
	"unicode"
)

// TargetKind identifies the focused surface a key event originated
// from.
type TargetKind int

const (
	// TargetNone means no editable surface had focus.
	TargetNone TargetKind = iota
	// TargetInput is a single-line text input.
	TargetInput
	// TargetTextArea is a multi-line text input.
	TargetTextArea
	// TargetSelect is a choice widget that consumes arrow keys.
	TargetSelect
	// TargetEditable is any other surface with editable content.
	TargetEditable
)

// Target describes the element that had focus when a key was pressed.
// SearchField marks the input that the search shortcut itself focuses,
// so the escape hatch does not override typing a slash into it.
type Target struct {
	Kind        TargetKind
	SearchField bool
}

// Editable reports whether typing into the target produces text or
// changes a value.
func (t Target) Editable() bool {
	return t.Kind != TargetNone
}

// Event is a single key press as seen by the engine.
type Event struct {
	Key    string
	Ctrl   bool
	Shift  bool
	Alt    bool
	Meta   bool
	Target Target

	consumed bool
}

// Consume marks the event handled so the host does not also forward
// the key to the focused component.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether a matched handler claimed the event.
func (e *Event) Consumed() bool {
	return e.consumed
}

// HasModifiers reports whether any modifier key is held.
func (e Event) HasModifiers() bool {
	return e.Ctrl || e.Shift || e.Alt || e.Meta
}

// keyAliases maps alternate key names (browser-style and common
// variants) to the canonical bubbletea-style name used in chords.
var keyAliases = map[string]string{
	"spacebar":   "space",
	"arrowleft":  "left",
	"arrowright": "right",
	"arrowup":    "up",
	"arrowdown":  "down",
	"return":     "enter",
	"escape":     "esc",
	"del":        "delete",
	"pageup":     "pgup",
	"pagedown":   "pgdown",
}

// normalizeKey canonicalizes a key name together with its shift flag.
// Single uppercase letters fold into shift+lowercase; shift-produced
// punctuation ("?", "+") already encodes shift in the character
// itself, so the flag is dropped for non-letter runes. Named keys
// lowercase and resolve through the alias table.
func normalizeKey(key string, shift bool) (string, bool) {
	if key == " " {
		return "space", shift
	}
	runes := []rune(key)
	if len(runes) == 1 {
		r := runes[0]
		if unicode.IsLetter(r) {
			if unicode.IsUpper(r) {
				return string(unicode.ToLower(r)), true
			}
			return string(r), shift
		}
		return string(r), false
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias, shift
	}
	return lower, shift
}

// ParseKey translates a bubbletea key string ("ctrl+shift+k",
// "alt+enter", "K", "?") into an event originating from target.
func ParseKey(s string, target Target) Event {
	ev := Event{Target: target}
	if s == "" {
		return ev
	}
	if s == " " || s == "+" {
		// Lone space and lone plus would confuse the separator split.
		ev.Key = s
		return ev
	}
	parts := strings.Split(s, "+")
	ev.Key = parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "ctrl", "control":
			ev.Ctrl = true
		case "shift":
			ev.Shift = true
		case "alt", "option", "opt":
			ev.Alt = true
		case "meta", "cmd", "super":
			ev.Meta = true
		}
	}
	return ev
}
