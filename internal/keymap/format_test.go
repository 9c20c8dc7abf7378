//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		def      Definition
		mac      bool
		expected string
	}{
		{"plain letter", Definition{Key: "k"}, false, "K"},
		{"plain letter mac", Definition{Key: "k"}, true, "K"},
		{"ctrl letter", Definition{Key: "k", Ctrl: true}, false, "Ctrl+K"},
		{"ctrl letter mac renders cmd glyph", Definition{Key: "k", Ctrl: true}, true, "⌘K"},
		{"meta letter", Definition{Key: "k", Meta: true}, false, "Ctrl+K"},
		{"meta letter mac", Definition{Key: "k", Meta: true}, true, "⌘K"},
		{"shift named key", Definition{Key: "left", Shift: true}, false, "Shift+←"},
		{"shift named key mac", Definition{Key: "left", Shift: true}, true, "⇧←"},
		{"alt letter", Definition{Key: "x", Alt: true}, false, "Alt+X"},
		{"alt letter mac", Definition{Key: "x", Alt: true}, true, "⌥X"},
		{"all modifiers ordered", Definition{Key: "p", Ctrl: true, Shift: true, Alt: true}, false, "Ctrl+Shift+Alt+P"},
		{"all modifiers ordered mac", Definition{Key: "p", Ctrl: true, Shift: true, Alt: true}, true, "⌘⇧⌥P"},
		{"arrow left glyph", Definition{Key: "ArrowLeft"}, false, "←"},
		{"arrow right glyph", Definition{Key: "right"}, false, "→"},
		{"arrow up glyph", Definition{Key: "up"}, false, "↑"},
		{"arrow down glyph", Definition{Key: "down"}, false, "↓"},
		{"space word", Definition{Key: " "}, false, "Space"},
		{"enter word", Definition{Key: "enter"}, false, "Enter"},
		{"escape word", Definition{Key: "esc"}, false, "Esc"},
		{"delete word", Definition{Key: "delete"}, false, "Del"},
		{"page down", Definition{Key: "pgdown"}, false, "PgDn"},
		{"question mark unchanged", Definition{Key: "?"}, false, "?"},
		{"uppercase letter folds to shift", Definition{Key: "K"}, false, "Shift+K"},
		{"uppercase letter mac", Definition{Key: "K"}, true, "⇧K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.def, tt.mac); got != tt.expected {
				t.Errorf("Format(%+v, mac=%v) = %q, want %q", tt.def, tt.mac, got, tt.expected)
			}
		})
	}
}

func TestFormatOrderMirrorsChordOrder(t *testing.T) {
	// Display and chord part ordering must stay consistent so the help
	// popup and the matcher never diverge visually.
	def := Definition{Key: "enter", Ctrl: true, Shift: true, Alt: true}

	if got := def.Chord(); got != "ctrl+shift+alt+enter" {
		t.Errorf("Chord() = %q, want %q", got, "ctrl+shift+alt+enter")
	}
	if got := Format(def, false); got != "Ctrl+Shift+Alt+Enter" {
		t.Errorf("Format() = %q, want %q", got, "Ctrl+Shift+Alt+Enter")
	}
}
