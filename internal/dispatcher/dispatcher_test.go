package dispatcher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

// stubAction matches a fixed notation and records executions.
type stubAction struct {
	name    string
	parser  keyparse.Parser
	mu      sync.Mutex
	runs    []string
	delay   time.Duration
	outcome Outcome
}

func newStub(name, notation string) *stubAction {
	return &stubAction{
		name:    name,
		parser:  keyparse.NewPrefixNotation(notation),
		outcome: Executed,
	}
}

func (s *stubAction) Name() string { return s.name }

func (s *stubAction) Try(_ context.Context, pending key.Sequence) (Outcome, error) {
	res := s.parser.Feed(pending)
	switch res.Status {
	case keyparse.StatusMatch:
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		s.mu.Lock()
		s.runs = append(s.runs, pending.String())
		s.mu.Unlock()
		return s.outcome, nil
	case keyparse.StatusNeedsMoreKey:
		return NeedsMoreKey, nil
	default:
		return NoMatch, nil
	}
}

func (s *stubAction) executions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.runs))
	copy(out, s.runs)
	return out
}

type testNotifier struct {
	mu      sync.Mutex
	notices []string
}

func (n *testNotifier) notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, msg)
}

func (n *testNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.notices))
	copy(out, n.notices)
	return out
}

func TestSingleKeyExecution(t *testing.T) {
	a := newStub("move", "x")
	d := New(DefaultConfig(), []Action{a}, nil, nil)

	d.HandleKey(context.Background(), "x")
	d.WaitIdle()

	if got := a.executions(); len(got) != 1 || got[0] != "x" {
		t.Errorf("executions = %v", got)
	}
	if p := d.Pending(); len(p) != 0 {
		t.Errorf("pending = %v after execution", p)
	}
}

func TestMultiKeyBuffering(t *testing.T) {
	a := newStub("lineDelete", "dd")
	d := New(DefaultConfig(), []Action{a}, nil, nil)
	ctx := context.Background()

	d.HandleKey(ctx, "d")
	d.WaitIdle()
	if p := d.Pending(); p.String() != "d" {
		t.Fatalf("pending = %q, want d", p.String())
	}
	if len(a.executions()) != 0 {
		t.Fatal("executed on a prefix")
	}

	d.HandleKey(ctx, "d")
	d.WaitIdle()
	if got := a.executions(); len(got) != 1 || got[0] != "dd" {
		t.Errorf("executions = %v", got)
	}
	if p := d.Pending(); len(p) != 0 {
		t.Errorf("pending = %v", p)
	}
}

func TestDeadEndClearsAndNotifies(t *testing.T) {
	a := newStub("lineDelete", "dd")
	n := &testNotifier{}
	d := New(DefaultConfig(), []Action{a}, n.notify, nil)
	ctx := context.Background()

	d.HandleKey(ctx, "d")
	d.HandleKey(ctx, "q")
	d.WaitIdle()

	if p := d.Pending(); len(p) != 0 {
		t.Errorf("pending = %v after dead end", p)
	}
	notices := n.all()
	if len(notices) != 1 || notices[0] != "no matching command: dq" {
		t.Errorf("notices = %v", notices)
	}
}

func TestNoticeCanBeDisabled(t *testing.T) {
	n := &testNotifier{}
	d := New(Config{NoticeUnmatched: false}, nil, n.notify, nil)

	d.HandleKey(context.Background(), "z")
	d.WaitIdle()

	if got := n.all(); len(got) != 0 {
		t.Errorf("notices = %v", got)
	}
}

// Rapid d,d arrivals with an artificial execution delay must still
// produce exactly one linewise execution, never zero or two.
func TestDoubledKeyUnderConcurrentArrival(t *testing.T) {
	a := newStub("lineDelete", "dd")
	a.delay = 20 * time.Millisecond
	d := New(DefaultConfig(), []Action{a}, nil, nil)
	ctx := context.Background()

	d.HandleKey(ctx, "d")
	d.HandleKey(ctx, "d")
	d.WaitIdle()

	if got := a.executions(); len(got) != 1 || got[0] != "dd" {
		t.Errorf("executions = %v, want exactly one dd", got)
	}
}

func TestArrivalOrderPreserved(t *testing.T) {
	var mu sync.Mutex
	var order []string
	mk := func(notation string) *recordAction {
		return &recordAction{
			notation: notation,
			record: func(s string) {
				mu.Lock()
				order = append(order, s)
				mu.Unlock()
			},
		}
	}
	actions := []Action{mk("a"), mk("b"), mk("c")}
	d := New(DefaultConfig(), actions, nil, nil)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		d.HandleKey(ctx, "a")
		d.HandleKey(ctx, "b")
		d.HandleKey(ctx, "c")
	}
	d.WaitIdle()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 60 {
		t.Fatalf("processed %d keystrokes, want 60", len(order))
	}
	for i, s := range order {
		want := string(rune('a' + i%3))
		if s != want {
			t.Fatalf("position %d = %q, want %q (order broken)", i, s, want)
		}
	}
}

// recordAction executes any single matching key with a scheduling
// yield in the middle, to shake out interleaving.
type recordAction struct {
	notation string
	record   func(string)
}

func (r *recordAction) Name() string { return "record-" + r.notation }

func (r *recordAction) Try(_ context.Context, pending key.Sequence) (Outcome, error) {
	if pending.String() != r.notation {
		return NoMatch, nil
	}
	time.Sleep(time.Millisecond)
	r.record(r.notation)
	return Executed, nil
}

func TestPriorityOrderFirstMatchWins(t *testing.T) {
	first := newStub("first", "x")
	second := newStub("second", "x")
	d := New(DefaultConfig(), []Action{first, second}, nil, nil)

	d.HandleKey(context.Background(), "x")
	d.WaitIdle()

	if len(first.executions()) != 1 {
		t.Error("first action did not run")
	}
	if len(second.executions()) != 0 {
		t.Error("second action ran despite an earlier match")
	}
}

func TestExecuteSequence(t *testing.T) {
	a := newStub("lineDelete", "dd")
	d := New(DefaultConfig(), []Action{a}, nil, nil)
	ctx := context.Background()

	if !d.ExecuteSequence(ctx, key.MustTokenize("dd")) {
		t.Error("dd reported unmatched")
	}
	if got := a.executions(); len(got) != 1 {
		t.Errorf("executions = %v", got)
	}

	if d.ExecuteSequence(ctx, key.MustTokenize("zz")) {
		t.Error("zz reported matched")
	}
	if d.ExecuteSequence(ctx, nil) {
		t.Error("empty sequence reported matched")
	}
}

func TestClearPendingDropsPrefix(t *testing.T) {
	a := newStub("lineDelete", "dd")
	d := New(DefaultConfig(), []Action{a}, nil, nil)
	ctx := context.Background()

	d.HandleKey(ctx, "d")
	d.WaitIdle()
	d.ClearPending()

	d.HandleKey(ctx, "d")
	d.WaitIdle()
	if len(a.executions()) != 0 {
		t.Error("stale prefix survived ClearPending")
	}
	if p := d.Pending(); p.String() != "d" {
		t.Errorf("pending = %q", p.String())
	}
}

func TestFallbackCountsAsHandled(t *testing.T) {
	a := newStub("degraded", "j")
	a.outcome = ExecutedFallback
	d := New(Config{EnableMetrics: true}, []Action{a}, nil, nil)
	ctx := context.Background()

	if !d.ExecuteSequence(ctx, key.MustTokenize("j")) {
		t.Error("fallback execution reported unmatched")
	}
	if p := d.Pending(); len(p) != 0 {
		t.Errorf("pending = %v", p)
	}
	m := d.Metrics()
	if m.Executed() != 1 || m.Fallback() != 1 {
		t.Errorf("metrics executed=%d fallback=%d", m.Executed(), m.Fallback())
	}
}

func TestMetricsCounts(t *testing.T) {
	a := newStub("lineDelete", "dd")
	d := New(Config{EnableMetrics: true}, []Action{a}, nil, nil)
	ctx := context.Background()

	d.ExecuteSequence(ctx, key.MustTokenize("dd")) // needsMore + executed
	d.ExecuteSequence(ctx, key.MustTokenize("q"))  // noMatch

	m := d.Metrics()
	if m.Executed() != 1 {
		t.Errorf("executed = %d", m.Executed())
	}
	if m.NeedsMoreKey() != 1 {
		t.Errorf("needsMoreKey = %d", m.NeedsMoreKey())
	}
	if m.NoMatch() != 1 {
		t.Errorf("noMatch = %d", m.NoMatch())
	}
}
