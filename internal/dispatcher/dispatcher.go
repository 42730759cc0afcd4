package dispatcher

import (
	"context"
	"sync"

	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/logging"
)

// Outcome reports what trying the pending keys against one action
// produced.
type Outcome uint8

const (
	// NoMatch means the pending keys can never complete this action.
	NoMatch Outcome = iota

	// NeedsMoreKey means the pending keys are a viable prefix.
	NeedsMoreKey

	// Executed means the action ran.
	Executed

	// ExecutedFallback means the action ran through its degraded-mode
	// path, without a live document view.
	ExecutedFallback
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "noMatch"
	case NeedsMoreKey:
		return "needsMoreKey"
	case Executed:
		return "executed"
	case ExecutedFallback:
		return "executedFallback"
	default:
		return "unknown"
	}
}

// Ran reports whether the outcome counts as handled.
func (o Outcome) Ran() bool {
	return o == Executed || o == ExecutedFallback
}

// Action is one dispatch-level unit. Try receives the full pending
// sequence and both classifies and, on a match, executes it.
type Action interface {
	// Name identifies the action in logs.
	Name() string

	// Try classifies pending and executes on a full match.
	Try(ctx context.Context, pending key.Sequence) (Outcome, error)
}

// Dispatcher serializes keystrokes through a FIFO queue and a
// single-owner lock. Each received keystroke schedules exactly one
// processing attempt; each attempt pops exactly one keystroke and runs
// the full match cycle before releasing the lock. Arrival order is
// processing order, with no interleaving even when an action's
// execution itself suspends on host calls.
type Dispatcher struct {
	// owner guards one processing turn.
	owner sync.Mutex

	// qmu guards only the queue so arrival never blocks on a turn.
	qmu   sync.Mutex
	queue []key.Key

	// pmu guards the pending buffer; mode transitions clear it from
	// inside an action's own execution turn.
	pmu     sync.Mutex
	pending key.Sequence

	actions []Action
	notify  func(message string)
	cfg     Config
	metrics *Metrics
	log     *logging.Logger

	wg sync.WaitGroup
}

// New creates a dispatcher trying actions in the given priority order.
// notify surfaces non-blocking notices; nil is allowed.
func New(cfg Config, actions []Action, notify func(string), log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.NullLogger
	}
	d := &Dispatcher{
		actions: actions,
		notify:  notify,
		cfg:     cfg,
		log:     log.WithComponent("dispatcher"),
	}
	if cfg.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// HandleKey enqueues one keystroke and schedules its processing
// attempt. It never blocks on an in-flight action.
func (d *Dispatcher) HandleKey(ctx context.Context, k key.Key) {
	d.qmu.Lock()
	d.queue = append(d.queue, k)
	d.qmu.Unlock()

	d.wg.Add(1)
	go d.processOne(ctx)
}

// processOne is one scheduled attempt: acquire the owner lock, pop
// exactly one keystroke if any remain, run the full cycle, release.
func (d *Dispatcher) processOne(ctx context.Context) {
	defer d.wg.Done()

	d.owner.Lock()
	defer d.owner.Unlock()

	k, ok := d.pop()
	if !ok {
		return
	}
	d.dispatch(ctx, k)
}

// pop removes the oldest queued keystroke.
func (d *Dispatcher) pop() (key.Key, bool) {
	d.qmu.Lock()
	defer d.qmu.Unlock()
	if len(d.queue) == 0 {
		return "", false
	}
	k := d.queue[0]
	d.queue = d.queue[1:]
	return k, true
}

// dispatch appends k to the pending buffer and tries every action in
// priority order. The first executed outcome wins; all-needsMore keeps
// the pending buffer; a dead end clears it and surfaces a notice.
// Returns the turn's overall outcome.
func (d *Dispatcher) dispatch(ctx context.Context, k key.Key) Outcome {
	d.pmu.Lock()
	d.pending = d.pending.Append(k)
	pending := append(key.Sequence{}, d.pending...)
	d.pmu.Unlock()

	needMore := false
	for _, a := range d.actions {
		out, err := a.Try(ctx, pending)
		if err != nil {
			d.log.Error("action %s failed on %q: %v", a.Name(), pending.String(), err)
		}
		switch out {
		case Executed, ExecutedFallback:
			d.clearPendingLocked()
			d.record(out)
			d.log.Debug("keys %q -> %s (%s)", pending.String(), a.Name(), out)
			return out
		case NeedsMoreKey:
			needMore = true
		}
	}

	if needMore {
		d.record(NeedsMoreKey)
		return NeedsMoreKey
	}

	d.clearPendingLocked()
	d.record(NoMatch)
	if d.cfg.NoticeUnmatched && d.notify != nil {
		d.notify("no matching command: " + pending.String())
	}
	d.log.Debug("keys %q matched nothing", pending.String())
	return NoMatch
}

// record counts an outcome when metrics are enabled.
func (d *Dispatcher) record(o Outcome) {
	if d.metrics != nil {
		d.metrics.Record(o)
	}
}

// clearPendingLocked resets the pending buffer.
func (d *Dispatcher) clearPendingLocked() {
	d.pmu.Lock()
	d.pending = nil
	d.pmu.Unlock()
}

// ClearPending drops buffered-but-unresolved keys. Mode transitions
// and explicit cancellation call this; it takes only the pending lock
// so an in-flight action may call it without deadlocking its own turn.
func (d *Dispatcher) ClearPending() {
	d.clearPendingLocked()
}

// Pending returns a copy of the unresolved keys.
func (d *Dispatcher) Pending() key.Sequence {
	d.pmu.Lock()
	defer d.pmu.Unlock()
	return append(key.Sequence{}, d.pending...)
}

// ExecuteSequence feeds a whole key sequence synchronously through the
// same dispatch cycle and reports whether its final keystroke executed
// an action. It serializes with queued keystrokes on the owner lock.
func (d *Dispatcher) ExecuteSequence(ctx context.Context, seq key.Sequence) bool {
	if len(seq) == 0 {
		return false
	}
	d.owner.Lock()
	defer d.owner.Unlock()

	var out Outcome
	for _, k := range seq {
		out = d.dispatch(ctx, k)
	}
	return out.Ran()
}

// WaitIdle blocks until every scheduled processing attempt has
// finished. Test support.
func (d *Dispatcher) WaitIdle() {
	d.wg.Wait()
}

// Metrics returns the dispatch counters, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
