// Package keymap implements the keyboard-shortcut dispatch engine:
// chord encoding, the shortcut registry, the input guard and the
// dispatch lifecycle. The engine never performs navigation or I/O
// itself; it matches key events to registered handlers and formats
// chords for help display.
package keymap

// Category groups shortcuts for help display. The set is closed:
// adding a category is a code change, not runtime data.
type Category string

const (
	CategoryGlobal     Category = "global"
	CategoryPlayback   Category = "playback"
	CategoryNavigation Category = "navigation"
	CategoryLibrary    Category = "library"
	CategoryQueue      Category = "queue"
)

// Categories lists all categories in help display order.
var Categories = []Category{
	CategoryGlobal,
	CategoryPlayback,
	CategoryNavigation,
	CategoryLibrary,
	CategoryQueue,
}

// Definition describes a shortcut binding: the key chord that triggers
// it and the metadata shown in the help popup. Ctrl and Meta are
// interchangeable on input (a ctrl binding also fires for cmd on a Mac
// keyboard) but render differently per platform.
type Definition struct {
	Key         string
	Ctrl        bool
	Shift       bool
	Alt         bool
	Meta        bool
	Description string
	Category    Category
}

// Handler is the callable invoked when a shortcut's chord matches.
// Handlers may kick off asynchronous work; the engine never waits
// for it.
type Handler func()

// ByCategory returns the definitions belonging to a category,
// preserving their order.
func ByCategory(defs []Definition, c Category) []Definition {
	var result []Definition
	for _, d := range defs {
		if d.Category == c {
			result = append(result, d)
		}
	}
	return result
}
