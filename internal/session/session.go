package session

import (
	"context"
	"fmt"

	"github.com/dshills/modalkit/internal/dispatcher"
	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/motion"
	"github.com/dshills/modalkit/internal/input/operator"
	"github.com/dshills/modalkit/internal/input/register"
	"github.com/dshills/modalkit/internal/logging"
)

// Options configures a session.
type Options struct {
	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger

	// Dispatcher controls queueing behavior.
	Dispatcher dispatcher.Config

	// StartInsert activates the session in insert mode instead of
	// normal mode.
	StartInsert bool

	// DisableSurround leaves out the ys/cs/ds/S key family.
	DisableSurround bool
}

// Session is the one mutable state record of an editing session: the
// mode, the pending keys (owned by the dispatcher), the registers, and
// the cross-motion state. It is created at activation and torn down at
// deactivation; every action reaches this record by reference, never
// through globals.
type Session struct {
	h   host.Host
	log *logging.Logger

	modes       *mode.Manager
	disp        *dispatcher.Dispatcher
	motionState *motion.State
	registers   *register.Store
	engine      *operator.Engine

	surround    bool
	startInsert bool

	acts []*action
	subs []host.Unsubscribe
}

// New creates a session over a host. Activate installs it.
func New(h host.Host, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logging.NullLogger
	}
	if opts.Dispatcher == (dispatcher.Config{}) {
		opts.Dispatcher = dispatcher.DefaultConfig()
	}

	s := &Session{
		h:           h,
		log:         log.WithComponent("session"),
		modes:       mode.NewManager(h),
		motionState: motion.NewState(),
		registers:   register.NewStore(h.Clipboard()),
		surround:    !opts.DisableSurround,
		startInsert: opts.StartInsert,
	}
	s.engine = operator.NewEngine(s.registers)
	s.acts = s.buildActions()

	ordered := make([]dispatcher.Action, len(s.acts))
	for i, a := range s.acts {
		ordered[i] = a
	}
	s.disp = dispatcher.New(opts.Dispatcher, ordered, h.Display().Notify, log)
	return s
}

// Activate wires the session into the host: mode transitions start
// clearing pending keys, host events are subscribed, and the public
// commands are registered.
func (s *Session) Activate() error {
	s.modes.OnTransition(func(from, to mode.Mode) {
		s.disp.ClearPending()
		s.log.Debug("mode %s -> %s", from, to)
	})
	s.modes.Attach()
	if s.startInsert {
		s.modes.Set(mode.Insert)
	}

	// A selection change this system did not make invalidates any
	// partially typed sequence.
	s.subs = append(s.subs, s.h.Events().OnSelectionChanged(func(ch host.SelectionChange) {
		if ch.Cause == host.CauseMouse || ch.Cause == host.CauseKeyboard {
			s.disp.ClearPending()
		}
	}))

	return s.registerCommands()
}

// Deactivate tears the session down.
func (s *Session) Deactivate() {
	for _, u := range s.subs {
		u()
	}
	s.subs = nil
	s.modes.Detach()
}

// Mode returns the current editing mode, for the host's declarative
// key-enablement conditions.
func (s *Session) Mode() mode.Mode {
	return s.modes.Current()
}

// HandleKey enqueues one pressed key.
func (s *Session) HandleKey(ctx context.Context, k key.Key) {
	s.disp.HandleKey(ctx, k)
}

// ExecuteSequence runs an ordered list of key tokens synchronously and
// reports whether its final keystroke executed an action.
func (s *Session) ExecuteSequence(ctx context.Context, tokens []string) bool {
	seq, err := key.FromStrings(tokens)
	if err != nil {
		s.log.Warn("executeSequence rejected: %v", err)
		return false
	}
	return s.disp.ExecuteSequence(ctx, seq)
}

// WaitIdle blocks until all enqueued keystrokes are processed. Test
// and shutdown support.
func (s *Session) WaitIdle() {
	s.disp.WaitIdle()
}

// Registers exposes the register store (the demo paints it).
func (s *Session) Registers() *register.Store {
	return s.registers
}

// Pending returns the unresolved keys, for status rendering.
func (s *Session) Pending() key.Sequence {
	return s.disp.Pending()
}

// registerCommands installs the host-facing command surface: the raw
// type intercept plus the external entry points.
func (s *Session) registerCommands() error {
	cmds := s.h.Commands()

	if err := cmds.Register("type", s.cmdType); err != nil {
		return fmt.Errorf("register type: %w", err)
	}
	if err := cmds.Register("modalkit.executeSequence", s.cmdExecuteSequence); err != nil {
		return fmt.Errorf("register executeSequence: %w", err)
	}
	if err := cmds.Register("modalkit.injectKeys", s.cmdInjectKeys); err != nil {
		return fmt.Errorf("register injectKeys: %w", err)
	}
	return nil
}

// cmdType receives one raw typed key while the intercept is active.
func (s *Session) cmdType(ctx context.Context, args any) error {
	token, ok := args.(string)
	if !ok {
		s.log.Warn("type: non-string argument %T ignored", args)
		return nil
	}
	k := key.Key(token)
	if !k.IsRune() {
		k = key.FromName(token)
		if k == key.KeyNone {
			s.log.Warn("type: unknown key %q ignored", token)
			return nil
		}
	}
	s.HandleKey(ctx, k)
	return nil
}

// cmdExecuteSequence adapts the command payload to ExecuteSequence.
func (s *Session) cmdExecuteSequence(ctx context.Context, args any) error {
	seq, err := decodeKeys(args)
	if err != nil {
		s.log.Warn("executeSequence rejected: %v", err)
		return nil
	}
	tokens := make([]string, len(seq))
	for i, k := range seq {
		tokens[i] = string(k)
	}
	s.ExecuteSequence(ctx, tokens)
	return nil
}

// cmdInjectKeys adapts the command payload to InjectKeys.
func (s *Session) cmdInjectKeys(ctx context.Context, args any) error {
	return s.InjectKeys(ctx, args)
}
