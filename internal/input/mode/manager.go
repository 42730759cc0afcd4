package mode

import (
	"sync"

	"github.com/dshills/modalkit/internal/host"
)

// Manager owns the current mode and applies every transition's side
// effects: status text, cursor shape, and the raw-type intercept. Host
// events (selection, document, view, save) drive transitions the user
// never typed.
type Manager struct {
	mu      sync.Mutex
	current Mode

	h       host.Host
	hooks   []func(from, to Mode)
	unsubks []host.Unsubscribe
}

// NewManager creates a manager in normal mode. Attach must be called
// before host events drive transitions.
func NewManager(h host.Host) *Manager {
	return &Manager{h: h}
}

// OnTransition registers a hook run after every mode change. The
// session uses this to clear pending keys.
func (m *Manager) OnTransition(fn func(from, to Mode)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Set transitions to a mode, applying side effects. Setting the
// current mode again is a no-op.
func (m *Manager) Set(to Mode) {
	m.mu.Lock()
	from := m.current
	if from == to {
		m.mu.Unlock()
		return
	}
	m.current = to
	hooks := append([]func(from, to Mode){}, m.hooks...)
	m.mu.Unlock()

	m.applyDisplay(to)
	m.h.Commands().SetTypeIntercept(to != Insert)
	for _, fn := range hooks {
		fn(from, to)
	}
}

// Attach subscribes the manager to the host events that force
// transitions, and applies the initial normal-mode side effects.
func (m *Manager) Attach() {
	ev := m.h.Events()
	m.mu.Lock()
	m.unsubks = append(m.unsubks,
		ev.OnSelectionChanged(m.handleSelection),
		ev.OnDocumentChanged(m.handleDocument),
		ev.OnActiveViewChanged(m.handleViewChange),
		ev.OnWillSave(func() { m.Set(Normal) }),
	)
	m.mu.Unlock()

	m.applyDisplay(Normal)
	m.h.Commands().SetTypeIntercept(true)
}

// Detach removes all event subscriptions.
func (m *Manager) Detach() {
	m.mu.Lock()
	subs := m.unsubks
	m.unsubks = nil
	m.mu.Unlock()
	for _, u := range subs {
		u()
	}
}

// handleSelection enters or leaves visual mode from host-reported
// selection changes. Only pointer- or keyboard-driven non-empty
// selections enter visual; programmatic changes (this system's own
// collapses, undo/redo transients) never do.
func (m *Manager) handleSelection(ch host.SelectionChange) {
	cur := m.Current()
	if cur == Insert {
		return
	}

	empty := true
	for _, s := range ch.Selections {
		if !s.IsEmpty() {
			empty = false
			break
		}
	}

	switch {
	case empty && cur.IsVisual():
		m.Set(Normal)
	case !empty && cur == Normal:
		if ch.Cause == host.CauseMouse || ch.Cause == host.CauseKeyboard {
			m.Set(Visual)
		}
	}
}

// handleDocument forces normal mode after undo and redo.
func (m *Manager) handleDocument(ch host.DocumentChange) {
	if ch.Cause.IsUndoRedo() {
		m.Set(Normal)
	}
}

// handleViewChange treats an absent view as normal unconditionally and
// re-derives the mode from the selection when a view appears.
func (m *Manager) handleViewChange(hasView bool) {
	if !hasView {
		m.Set(Normal)
		return
	}
	v, ok := m.h.ActiveView()
	if !ok {
		m.Set(Normal)
		return
	}
	for _, s := range v.Selections() {
		if !s.IsEmpty() {
			m.Set(Visual)
			return
		}
	}
	m.Set(Normal)
}

// applyDisplay pushes the mode's status text and cursor shape.
func (m *Manager) applyDisplay(to Mode) {
	d := m.h.Display()
	switch to {
	case Insert:
		d.SetStatus("-- INSERT --")
		d.SetCursorShape(host.ShapeBar)
	case Visual:
		d.SetStatus("-- VISUAL --")
		d.SetCursorShape(host.ShapeBlock)
	case VisualLine:
		d.SetStatus("-- VISUAL LINE --")
		d.SetCursorShape(host.ShapeBlock)
	default:
		d.SetStatus("")
		d.SetCursorShape(host.ShapeBlock)
	}
}
