package memhost

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/modalkit/internal/host"
)

// Host is an in-memory host editor. It backs the demo binary and the
// test suites: every collaborator surface is implemented for real and
// every outward call is observable.
type Host struct {
	mu sync.Mutex

	view *View

	clip        string
	status      string
	cursorShape host.CursorShape
	notices     []string

	commands  map[string]host.CommandFunc
	intercept bool

	// ExecCommand invocations, oldest first, for fallback assertions.
	execLog []string

	selectionSubs map[string]func(host.SelectionChange)
	documentSubs  map[string]func(host.DocumentChange)
	viewSubs      map[string]func(bool)
	configSubs    map[string]func()
	saveSubs      map[string]func()
}

// New creates a host with no active view.
func New() *Host {
	return &Host{
		commands:      make(map[string]host.CommandFunc),
		selectionSubs: make(map[string]func(host.SelectionChange)),
		documentSubs:  make(map[string]func(host.DocumentChange)),
		viewSubs:      make(map[string]func(bool)),
		configSubs:    make(map[string]func()),
		saveSubs:      make(map[string]func()),
	}
}

// NewWithText creates a host with an active view over the given text.
func NewWithText(text string) *Host {
	h := New()
	h.SetActiveView(NewView(NewDocument(text)))
	return h
}

// SetActiveView installs or removes (nil) the active view and notifies
// subscribers.
func (h *Host) SetActiveView(v *View) {
	h.mu.Lock()
	if h.view != nil {
		h.view.h = nil
	}
	h.view = v
	if v != nil {
		v.h = h
	}
	subs := collect(h.viewSubs)
	h.mu.Unlock()

	for _, fn := range subs {
		fn(v != nil)
	}
}

// ActiveView implements host.Host.
func (h *Host) ActiveView() (host.View, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.view == nil {
		return nil, false
	}
	return h.view, true
}

// MemView returns the concrete view for direct manipulation in tests.
func (h *Host) MemView() *View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// ExecCommand records the invocation of a coarse host-native command.
func (h *Host) ExecCommand(_ context.Context, name string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	entry := name
	for _, a := range args {
		entry += fmt.Sprintf(" %v", a)
	}
	h.execLog = append(h.execLog, entry)
	return nil
}

// ExecLog returns the host-native commands executed so far.
func (h *Host) ExecLog() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.execLog))
	copy(out, h.execLog)
	return out
}

// Clipboard implements host.Host.
func (h *Host) Clipboard() host.Clipboard {
	return (*clipboard)(h)
}

// Display implements host.Host.
func (h *Host) Display() host.Display {
	return (*display)(h)
}

// Commands implements host.Host.
func (h *Host) Commands() host.Commands {
	return (*commands)(h)
}

// Events implements host.Host.
func (h *Host) Events() host.Events {
	return (*events)(h)
}

type clipboard Host

func (c *clipboard) Read(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clip, nil
}

func (c *clipboard) Write(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clip = text
	return nil
}

// SetClipboardExternally simulates another application writing the
// system clipboard, bypassing this system's own yank path.
func (h *Host) SetClipboardExternally(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clip = text
}

type display Host

func (d *display) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = text
}

func (d *display) SetCursorShape(shape host.CursorShape) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursorShape = shape
}

func (d *display) Notify(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, message)
}

// Status returns the current status-line text.
func (h *Host) Status() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// CursorShape returns the last requested cursor shape.
func (h *Host) CursorShape() host.CursorShape {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorShape
}

// Notices returns all notices surfaced so far.
func (h *Host) Notices() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.notices))
	copy(out, h.notices)
	return out
}

type commands Host

func (c *commands) Register(name string, fn host.CommandFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.commands[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}
	c.commands[name] = fn
	return nil
}

func (c *commands) SetTypeIntercept(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intercept = enabled
}

// InterceptEnabled reports whether the type intercept is active.
func (h *Host) InterceptEnabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.intercept
}

// InvokeCommand calls a registered command the way the host's keybinding
// table would. Unknown commands are an error.
func (h *Host) InvokeCommand(ctx context.Context, name string, args any) error {
	h.mu.Lock()
	fn, ok := h.commands[name]
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	return fn(ctx, args)
}

// TypeKey delivers one typed key. With the intercept enabled the key
// routes to the registered "type" command; otherwise the host inserts
// the text natively at each selection, as insert mode relies on.
func (h *Host) TypeKey(ctx context.Context, token string) error {
	h.mu.Lock()
	intercept := h.intercept
	fn := h.commands["type"]
	view := h.view
	h.mu.Unlock()

	if intercept && fn != nil {
		return fn(ctx, token)
	}
	if view == nil {
		return nil
	}
	for _, sel := range view.Selections() {
		if err := view.ApplyEdit(ctx, sel.Range(), token); err != nil {
			return err
		}
	}
	return nil
}

// collect copies subscriber funcs out of a map for invocation outside
// the lock.
func collect[T any](m map[string]T) []T {
	out := make([]T, 0, len(m))
	for _, fn := range m {
		out = append(out, fn)
	}
	return out
}

// subscribe inserts fn under a fresh token and returns the remover.
func subscribe[T any](h *Host, m map[string]T, fn T) host.Unsubscribe {
	h.mu.Lock()
	id := uuid.NewString()
	m[id] = fn
	h.mu.Unlock()
	return func() {
		h.mu.Lock()
		delete(m, id)
		h.mu.Unlock()
	}
}

type events Host

func (e *events) OnSelectionChanged(fn func(host.SelectionChange)) host.Unsubscribe {
	return subscribe((*Host)(e), e.selectionSubs, fn)
}

func (e *events) OnDocumentChanged(fn func(host.DocumentChange)) host.Unsubscribe {
	return subscribe((*Host)(e), e.documentSubs, fn)
}

func (e *events) OnActiveViewChanged(fn func(bool)) host.Unsubscribe {
	return subscribe((*Host)(e), e.viewSubs, fn)
}

func (e *events) OnConfigChanged(fn func()) host.Unsubscribe {
	return subscribe((*Host)(e), e.configSubs, fn)
}

func (e *events) OnWillSave(fn func()) host.Unsubscribe {
	return subscribe((*Host)(e), e.saveSubs, fn)
}

func (h *Host) emitSelectionChanged(cause host.SelectionCause) {
	h.mu.Lock()
	var sels []host.Selection
	if h.view != nil {
		sels = h.view.Selections()
	}
	subs := collect(h.selectionSubs)
	h.mu.Unlock()

	change := host.SelectionChange{Cause: cause, Selections: sels}
	for _, fn := range subs {
		fn(change)
	}
}

func (h *Host) emitDocumentChanged(cause host.DocumentCause) {
	h.mu.Lock()
	subs := collect(h.documentSubs)
	h.mu.Unlock()

	for _, fn := range subs {
		fn(host.DocumentChange{Cause: cause})
	}
}

// SelectWithMouse sets selections as a pointer gesture would, reporting
// the mouse cause.
func (h *Host) SelectWithMouse(sels []host.Selection) {
	h.mu.Lock()
	view := h.view
	h.mu.Unlock()
	if view == nil {
		return
	}
	view.sels = sels
	h.emitSelectionChanged(host.CauseMouse)
}

// EmitWillSave notifies about-to-save subscribers.
func (h *Host) EmitWillSave() {
	h.mu.Lock()
	subs := collect(h.saveSubs)
	h.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// EmitConfigChanged notifies configuration-changed subscribers.
func (h *Host) EmitConfigChanged() {
	h.mu.Lock()
	subs := collect(h.configSubs)
	h.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
