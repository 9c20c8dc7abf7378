// Package helpbindings provides a scrollable popup listing the
// registered shortcuts, grouped by category.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/mkarren/keychord/internal/keymap"
	"github.com/mkarren/keychord/internal/ui"
)

// categoryLabels maps categories to display labels.
var categoryLabels = map[keymap.Category]string{
	keymap.CategoryGlobal:     "Global",
	keymap.CategoryPlayback:   "Playback",
	keymap.CategoryNavigation: "Navigation",
	keymap.CategoryLibrary:    "Library",
	keymap.CategoryQueue:      "Queue",
}

// Model holds the state for the help bindings popup. The shortcut
// list is a snapshot taken at SetShortcuts time, never a live view of
// the registry.
type Model struct {
	ui.Base
	shortcuts    []keymap.Definition
	macGlyphs    bool
	scrollOffset int
}

// New creates a help model. macGlyphs selects the platform rendering
// of modifier keys.
func New(macGlyphs bool) Model {
	return Model{macGlyphs: macGlyphs}
}

// SetShortcuts replaces the displayed shortcuts, regrouped into
// category display order, and resets scrolling.
func (m *Model) SetShortcuts(defs []keymap.Definition) {
	m.shortcuts = nil
	for _, c := range keymap.Categories {
		m.shortcuts = append(m.shortcuts, keymap.ByCategory(defs, c)...)
	}
	m.scrollOffset = 0
}

// ScrollDown moves the view down one line.
func (m *Model) ScrollDown() {
	if m.scrollOffset < m.maxScroll() {
		m.scrollOffset++
	}
}

// ScrollUp moves the view up one line.
func (m *Model) ScrollUp() {
	if m.scrollOffset > 0 {
		m.scrollOffset--
	}
}

// View renders the help popup content.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	content := m.buildContent()
	lines := strings.Split(content, "\n")

	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if limit := m.Width() - 4; maxWidth > limit && limit > 0 {
		maxWidth = limit
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, limit, "…")
		}
	}

	visibleHeight := m.visibleHeight()
	if visibleHeight <= 0 {
		visibleHeight = len(lines)
	}

	startLine := min(m.scrollOffset, len(lines))
	endLine := min(startLine+visibleHeight, len(lines))
	visibleLines := lines[startLine:endLine]

	// Pad visible lines to max width for consistent popup sizing.
	for i, line := range visibleLines {
		if w := lipgloss.Width(line); w < maxWidth {
			visibleLines[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var result strings.Builder
	result.WriteString(titleStyle.Render("Shortcuts"))
	result.WriteString("\n\n")
	result.WriteString(strings.Join(visibleLines, "\n"))
	result.WriteString("\n\n")
	result.WriteString(footerStyle.Render(m.buildFooter()))

	return result.String()
}

func (m Model) buildContent() string {
	var sb strings.Builder

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Max key-column width; formatted chords may contain wide glyphs,
	// so measure with runewidth rather than len.
	maxKeyWidth := 0
	for _, d := range m.shortcuts {
		if w := runewidth.StringWidth(m.format(d)); w > maxKeyWidth {
			maxKeyWidth = w
		}
	}

	var currentCategory keymap.Category
	for _, d := range m.shortcuts {
		if d.Category != currentCategory {
			if currentCategory != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[d.Category]
			if label == "" {
				label = string(d.Category)
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentCategory = d.Category
		}

		keyStr := m.format(d)
		padded := keyStr + strings.Repeat(" ", maxKeyWidth-runewidth.StringWidth(keyStr))
		sb.WriteString(keyStyle.Render(padded))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(d.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) format(d keymap.Definition) string {
	return keymap.Format(d, m.macGlyphs)
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders, margins).
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	total := m.totalLines()
	visible := m.visibleHeight()
	if total <= visible {
		return 0
	}
	return total - visible
}
