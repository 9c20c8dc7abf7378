package keymap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *Feed) {
	t.Helper()
	feed := &Feed{}
	engine := NewEngine(feed, nil)
	engine.StartListening()
	return engine, feed
}

func emit(feed *Feed, ev Event) *Event {
	feed.Emit(&ev)
	return &ev
}

func TestEngineDispatch(t *testing.T) {
	engine, feed := newTestEngine(t)

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: " "}, func() { calls++ }))

	ev := emit(feed, Event{Key: " "})
	require.Equal(t, 1, calls)
	require.True(t, ev.Consumed())

	// Dispatching the same event again invokes the handler again.
	emit(feed, Event{Key: " "})
	require.Equal(t, 2, calls)
}

func TestEngineUnmatchedEventLeftAlone(t *testing.T) {
	engine, feed := newTestEngine(t)
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() {}))

	ev := emit(feed, Event{Key: "b"})
	require.False(t, ev.Consumed(), "unmatched event must not be consumed")
}

func TestEngineCtrlMetaShareOneEntry(t *testing.T) {
	engine, feed := newTestEngine(t)

	var ctrlCalls, metaCalls int
	require.NoError(t, engine.Register(Definition{Key: "k", Ctrl: true}, func() { ctrlCalls++ }))
	require.NoError(t, engine.Register(Definition{Key: "k", Meta: true}, func() { metaCalls++ }))

	require.Len(t, engine.Shortcuts(), 1, "ctrl and meta registrations share one chord")

	emit(feed, Event{Key: "k", Ctrl: true})
	emit(feed, Event{Key: "k", Meta: true})
	require.Equal(t, 0, ctrlCalls, "replaced handler must not fire")
	require.Equal(t, 2, metaCalls, "most recently registered handler fires for both modifiers")
}

func TestEngineInputGuard(t *testing.T) {
	engine, feed := newTestEngine(t)

	var letterCalls, searchCalls int
	require.NoError(t, engine.Register(Definition{Key: "l"}, func() { letterCalls++ }))
	require.NoError(t, engine.Register(Definition{Key: "/"}, func() { searchCalls++ }))

	input := Target{Kind: TargetInput}

	ev := emit(feed, Event{Key: "l", Target: input})
	require.Equal(t, 0, letterCalls, "plain key must not fire while typing")
	require.False(t, ev.Consumed())

	emit(feed, Event{Key: "/", Target: input})
	require.Equal(t, 1, searchCalls, "escape hatch fires from a focused input")

	emit(feed, Event{Key: "/", Target: Target{Kind: TargetInput, SearchField: true}})
	require.Equal(t, 1, searchCalls, "escape hatch must not override typing into the search field")
}

func TestEngineStartListeningIdempotent(t *testing.T) {
	feed := &Feed{}
	engine := NewEngine(feed, nil)

	engine.StartListening()
	engine.StartListening()
	require.True(t, engine.Listening())

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() { calls++ }))
	emit(feed, Event{Key: "a"})
	require.Equal(t, 1, calls, "double StartListening must not double dispatch")
}

func TestEngineStopListening(t *testing.T) {
	engine, feed := newTestEngine(t)

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() { calls++ }))

	engine.StopListening()
	require.False(t, engine.Listening())
	emit(feed, Event{Key: "a"})
	require.Equal(t, 0, calls)

	// Idempotent when not listening.
	engine.StopListening()

	// Restarting restores dispatch with the same registrations.
	engine.StartListening()
	emit(feed, Event{Key: "a"})
	require.Equal(t, 1, calls)
}

func TestEngineEnableDisable(t *testing.T) {
	engine, feed := newTestEngine(t)

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() { calls++ }))

	engine.Disable()
	require.False(t, engine.Enabled())
	require.True(t, engine.Listening(), "disable must not detach the listener")

	ev := emit(feed, Event{Key: "a"})
	require.Equal(t, 0, calls)
	require.False(t, ev.Consumed())

	engine.Enable()
	emit(feed, Event{Key: "a"})
	require.Equal(t, 1, calls, "enable restores dispatch without re-registering")
}

func TestEngineClear(t *testing.T) {
	engine, feed := newTestEngine(t)

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() { calls++ }))
	require.NoError(t, engine.Register(Definition{Key: "b"}, func() { calls++ }))

	engine.Clear()
	require.Empty(t, engine.Shortcuts())

	emit(feed, Event{Key: "a"})
	emit(feed, Event{Key: "b"})
	require.Equal(t, 0, calls, "cleared handlers must not fire")
}

func TestEngineHandlerPanicReported(t *testing.T) {
	feed := &Feed{}
	var reported []error
	engine := NewEngine(feed, func(err error) { reported = append(reported, err) })
	engine.StartListening()

	calls := 0
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() {
		calls++
		panic("boom")
	}))
	require.NoError(t, engine.Register(Definition{Key: "b"}, func() { calls++ }))

	emit(feed, Event{Key: "a"})
	require.Len(t, reported, 1)
	require.Contains(t, reported[0].Error(), "boom")

	// Other shortcuts keep working, and the failed one stays registered.
	emit(feed, Event{Key: "b"})
	require.Equal(t, 2, calls)
	emit(feed, Event{Key: "a"})
	require.Equal(t, 3, calls)
	require.Len(t, reported, 2)
}

func TestEngineHandlerPanicRepanicsWithoutReporter(t *testing.T) {
	engine, feed := newTestEngine(t)
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() { panic("boom") }))

	defer func() {
		r := recover()
		require.NotNil(t, r, "panic must propagate when no reporter is set")
		require.True(t, strings.Contains(r.(string), "boom"))
	}()
	emit(feed, Event{Key: "a"})
}

func TestEngineReentrantMutationDuringDispatch(t *testing.T) {
	engine, feed := newTestEngine(t)

	other := Definition{Key: "b"}
	require.NoError(t, engine.Register(other, func() {}))
	require.NoError(t, engine.Register(Definition{Key: "a"}, func() {
		// Handlers may mutate the registry mid-dispatch.
		engine.Unregister(other)
		require.NoError(t, engine.Register(Definition{Key: "c"}, func() {}))
	}))

	emit(feed, Event{Key: "a"})

	defs := engine.Shortcuts()
	require.Len(t, defs, 2)
	chords := []string{defs[0].Chord(), defs[1].Chord()}
	require.Contains(t, chords, "a")
	require.Contains(t, chords, "c")
}
