package keymap

import "fmt"

// Source delivers key events to at most one listener. Listen returns a
// detach function; attaching while a listener is already installed
// replaces it.
type Source interface {
	Listen(fn func(*Event)) (detach func())
}

// Feed is the Source the application shell drives from its update
// loop: it forwards each emitted event to the attached listener.
type Feed struct {
	listener func(*Event)
}

// Listen implements Source.
func (f *Feed) Listen(fn func(*Event)) func() {
	f.listener = fn
	return func() {
		f.listener = nil
	}
}

// Emit delivers an event to the attached listener, if any.
func (f *Feed) Emit(e *Event) {
	if f.listener != nil {
		f.listener(e)
	}
}

// Engine owns the dispatch pipeline: the input guard, chord lookup and
// handler invocation, plus the enable gate and listener lifecycle. One
// engine is built by the application shell and injected into
// consumers. Its registry survives stop/start cycles, so listening can
// be suspended without losing registrations.
//
// The engine runs on the host event loop goroutine. It takes no locks:
// handlers may call Register, Unregister or Clear re-entrantly during
// dispatch, which is safe because matching is a single map read.
type Engine struct {
	registry *Registry
	source   Source
	enabled  bool
	detach   func()
	report   func(error)
}

// NewEngine creates an enabled, non-listening engine reading events
// from source. A handler panic is recovered and passed to report, so
// one failing handler cannot break dispatch for the others; the
// binding stays registered. A nil report re-raises the panic instead
// of swallowing it.
func NewEngine(source Source, report func(error)) *Engine {
	return &Engine{
		registry: NewRegistry(),
		source:   source,
		enabled:  true,
		report:   report,
	}
}

// Register adds or replaces a binding (last write wins). Definitions
// with an empty key are rejected: no key event can ever produce them.
func (e *Engine) Register(def Definition, handler Handler) error {
	return e.registry.Register(def, handler)
}

// Unregister removes the binding for the definition's chord. No-op if
// absent.
func (e *Engine) Unregister(def Definition) {
	e.registry.Unregister(def)
}

// Clear drops all bindings. Listening state is unaffected.
func (e *Engine) Clear() {
	e.registry.Clear()
}

// Shortcuts returns a snapshot of the registered definitions in
// registration order, handlers excluded.
func (e *Engine) Shortcuts() []Definition {
	return e.registry.Shortcuts()
}

// Enable allows dispatch.
func (e *Engine) Enable() {
	e.enabled = true
}

// Disable suppresses dispatch. The listener stays attached, so rapid
// toggling does not churn attach/detach.
func (e *Engine) Disable() {
	e.enabled = false
}

// Enabled reports whether dispatch is active.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// StartListening attaches the engine to its source. Idempotent: a
// second call while already listening does nothing, so at most one
// listener ever exists.
func (e *Engine) StartListening() {
	if e.detach != nil {
		return
	}
	e.detach = e.source.Listen(e.HandleKey)
}

// StopListening detaches from the source without touching the
// registry. Idempotent.
func (e *Engine) StopListening() {
	if e.detach == nil {
		return
	}
	e.detach()
	e.detach = nil
}

// Listening reports whether the engine is attached to its source.
func (e *Engine) Listening() bool {
	return e.detach != nil
}

// HandleKey runs one event through the dispatch pipeline. A matched
// event is consumed before its handler runs; an unmatched event is
// left untouched so the host's default handling applies.
func (e *Engine) HandleKey(ev *Event) {
	if !e.enabled {
		return
	}
	if !shouldDispatch(ev) {
		return
	}
	handler, ok := e.registry.lookup(ev.Chord())
	if !ok {
		return
	}
	ev.Consume()
	e.invoke(ev, handler)
}

// invoke runs a handler, converting a panic into a reported error so
// the next key event still dispatches.
func (e *Engine) invoke(ev *Event, handler Handler) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e.report == nil {
			panic(r)
		}
		e.report(fmt.Errorf("shortcut %q: handler panic: %v", ev.Chord(), r))
	}()
	handler()
}
