package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarren/keychord/internal/config"
	"github.com/mkarren/keychord/internal/errmsg"
	"github.com/mkarren/keychord/internal/keymap"
	"github.com/mkarren/keychord/internal/ui/helpbindings"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type view int

const (
	viewLibrary view = iota
	viewQueue
	viewNowPlaying
)

func (v view) String() string {
	switch v {
	case viewQueue:
		return "Queue"
	case viewNowPlaying:
		return "Now Playing"
	default:
		return "Library"
	}
}

// demoLibrary stands in for a scanned music library.
var demoLibrary = []string{
	"Solar Fields - Night Traffic",
	"Carbon Based Lifeforms - Photosynthesis",
	"Stellardrone - Eternity",
	"Tycho - A Walk",
	"Boards of Canada - Roygbiv",
	"Jon Hopkins - Open Eye Signal",
}

// appState is the mutable state shortcut handlers act on. It lives
// behind a pointer because bubbletea copies the model on every update
// while handler closures must keep mutating the same state.
type appState struct {
	playing   bool
	muted     bool
	volume    int
	position  int // seconds into the current track
	track     int // index into demoLibrary
	cursor    int
	view      view
	queue     []string
	favorites map[int]bool
	status    string
	errText   string

	quit           bool
	focusSearch    bool
	showHelp       bool
	resumeDispatch bool
}

func (st *appState) currentTrack() string {
	return demoLibrary[st.track]
}

type model struct {
	state  *appState
	engine *keymap.Engine
	feed   *keymap.Feed
	search textinput.Model
	help   helpbindings.Model
	width  int
	height int
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	st := &appState{
		volume:    70,
		favorites: make(map[int]bool),
		status:    "Stopped",
	}

	feed := &keymap.Feed{}
	engine := keymap.NewEngine(feed, func(err error) {
		st.errText = errmsg.Format(errmsg.OpShortcutDispatch, err)
	})

	search := textinput.New()
	search.Placeholder = "Search library"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := model{
		state:  st,
		engine: engine,
		feed:   feed,
		search: search,
		help:   helpbindings.New(cfg.GlyphsEnabled()),
	}
	m.registerShortcuts()

	engine.StartListening()
	if !cfg.DispatchEnabled() {
		engine.Disable()
	}
	m.help.SetShortcuts(engine.Shortcuts())

	return m, nil
}

// registerShortcuts binds handlers to the default definitions. The
// engine owns the matching; handlers only mutate app state.
func (m *model) registerShortcuts() {
	st := m.state
	engine := m.engine

	bind := func(def keymap.Definition, handler keymap.Handler) {
		if err := engine.Register(def, handler); err != nil {
			st.errText = errmsg.FormatWith(errmsg.OpShortcutRegister, def.Description, err)
		}
	}

	bind(keymap.DefFocusSearch, func() { st.focusSearch = true })
	bind(keymap.DefQuit, func() { st.quit = true })
	bind(keymap.DefHelp, func() {
		// Dispatch pauses while the help popup is open so its scroll
		// keys do not collide with global bindings; the shell restores
		// the gate on close.
		st.showHelp = true
		st.resumeDispatch = engine.Enabled()
		engine.Disable()
	})

	bind(keymap.DefPlayPause, func() {
		st.playing = !st.playing
		if st.playing {
			st.status = "Playing " + st.currentTrack()
		} else {
			st.status = "Paused"
		}
	})
	bind(keymap.DefStop, func() {
		st.playing = false
		st.position = 0
		st.status = "Stopped"
	})
	bind(keymap.DefNextTrack, func() {
		st.track = (st.track + 1) % len(demoLibrary)
		st.position = 0
		st.playing = true
		st.status = "Playing " + st.currentTrack()
	})
	bind(keymap.DefPrevTrack, func() {
		st.track = (st.track + len(demoLibrary) - 1) % len(demoLibrary)
		st.position = 0
		st.playing = true
		st.status = "Playing " + st.currentTrack()
	})
	bind(keymap.DefSeekFwd, func() {
		st.position += 5
		st.status = fmt.Sprintf("Seek to %ds", st.position)
	})
	bind(keymap.DefSeekBack, func() {
		st.position = max(0, st.position-5)
		st.status = fmt.Sprintf("Seek to %ds", st.position)
	})
	bind(keymap.DefVolumeUp, func() {
		st.volume = min(100, st.volume+5)
		st.status = fmt.Sprintf("Volume %d%%", st.volume)
	})
	bind(keymap.DefVolumeDn, func() {
		st.volume = max(0, st.volume-5)
		st.status = fmt.Sprintf("Volume %d%%", st.volume)
	})
	bind(keymap.DefMute, func() {
		st.muted = !st.muted
		if st.muted {
			st.status = "Muted"
		} else {
			st.status = fmt.Sprintf("Volume %d%%", st.volume)
		}
	})

	bind(keymap.DefViewLibrary, func() { st.view = viewLibrary; st.cursor = 0 })
	bind(keymap.DefViewQueue, func() { st.view = viewQueue; st.cursor = 0 })
	bind(keymap.DefViewPlaying, func() { st.view = viewNowPlaying })
	bind(keymap.DefMoveDown, func() {
		if st.cursor < st.listLen()-1 {
			st.cursor++
		}
	})
	bind(keymap.DefMoveUp, func() {
		if st.cursor > 0 {
			st.cursor--
		}
	})

	bind(keymap.DefFavorite, func() {
		if st.view != viewLibrary {
			return
		}
		st.favorites[st.cursor] = !st.favorites[st.cursor]
	})
	bind(keymap.DefRefresh, func() {
		st.status = fmt.Sprintf("Library refreshed: %d tracks", len(demoLibrary))
	})

	bind(keymap.DefQueueAdd, func() {
		if st.view != viewLibrary {
			return
		}
		st.queue = append(st.queue, demoLibrary[st.cursor])
		st.status = "Queued " + demoLibrary[st.cursor]
	})
	bind(keymap.DefQueueRemove, func() {
		if st.view != viewQueue || st.cursor >= len(st.queue) {
			return
		}
		st.queue = append(st.queue[:st.cursor], st.queue[st.cursor+1:]...)
		if st.cursor >= len(st.queue) && st.cursor > 0 {
			st.cursor--
		}
	})
	bind(keymap.DefQueueClear, func() {
		st.queue = nil
		st.cursor = 0
		st.status = "Queue cleared"
	})
}

func (st *appState) listLen() int {
	if st.view == viewQueue {
		return len(st.queue)
	}
	return len(demoLibrary)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.state

	target := keymap.Target{}
	if m.search.Focused() {
		target = keymap.Target{Kind: keymap.TargetInput, SearchField: true}
	}

	ev := keymap.ParseKey(msg.String(), target)
	m.feed.Emit(&ev)

	if st.quit {
		return m, tea.Quit
	}
	if st.focusSearch {
		st.focusSearch = false
		m.search.Focus()
		return m, textinput.Blink
	}
	if ev.Consumed() {
		return m, nil
	}

	// Unconsumed keys belong to the focused surface or local chrome.
	switch {
	case m.search.Focused():
		switch msg.String() {
		case "esc":
			m.search.Blur()
			m.search.SetValue("")
		case "enter":
			st.status = fmt.Sprintf("Searching for %q", m.search.Value())
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}

	case st.showHelp:
		switch msg.String() {
		case "?", "esc", "q":
			st.showHelp = false
			if st.resumeDispatch {
				m.engine.Enable()
			}
		case "j", "down":
			m.help.ScrollDown()
		case "k", "up":
			m.help.ScrollUp()
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}
	st := m.state

	var body string
	if st.showHelp {
		body = m.help.View()
	} else {
		switch st.view {
		case viewQueue:
			body = m.queueView()
		case viewNowPlaying:
			body = m.nowPlayingView()
		default:
			body = m.libraryView()
		}
	}

	status := st.status
	if st.muted {
		status += " (muted)"
	}
	lines := []string{
		m.headerView(),
		"",
		body,
		"",
		m.search.View(),
		statusStyle.Render(status),
	}
	if st.errText != "" {
		lines = append(lines, errorStyle.Render(st.errText))
	}
	lines = append(lines, hintStyle.Render("? shortcuts · / search · q quit"))

	return strings.Join(lines, "\n")
}

func (m model) headerView() string {
	title := headerStyle.Render("keychord")
	tabs := make([]string, 0, 3)
	for _, v := range []view{viewLibrary, viewQueue, viewNowPlaying} {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.state.view {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return title + "  " + strings.Join(tabs, tabStyle.Render(" · "))
}

func (m model) libraryView() string {
	var sb strings.Builder
	for i, track := range demoLibrary {
		line := "  " + track
		if m.state.favorites[i] {
			line += " ♥"
		}
		if i == m.state.cursor && m.state.view == viewLibrary {
			line = cursorStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m model) queueView() string {
	if len(m.state.queue) == 0 {
		return statusStyle.Render("Queue is empty. Press a in the library to add tracks.")
	}
	var sb strings.Builder
	for i, track := range m.state.queue {
		line := fmt.Sprintf("  %d. %s", i+1, track)
		if i == m.state.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %d. %s", i+1, track))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (m model) nowPlayingView() string {
	st := m.state
	state := "Stopped"
	if st.playing {
		state = "Playing"
	} else if st.position > 0 {
		state = "Paused"
	}
	return fmt.Sprintf("%s\n%s\n%ds · volume %d%%",
		headerStyle.Render(st.currentTrack()), state, st.position, st.volume)
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
