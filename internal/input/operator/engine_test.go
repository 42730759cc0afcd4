package operator

import (
	"context"
	"testing"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/host/memhost"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
	"github.com/dshills/modalkit/internal/input/motion"
	"github.com/dshills/modalkit/internal/input/register"
)

type fixture struct {
	host *memhost.Host
	view *memhost.View
	eng  *Engine
	mctx *motion.Context
}

func newFixture(t *testing.T, text string, cursor host.Position) *fixture {
	t.Helper()
	h := memhost.NewWithText(text)
	v := h.MemView()
	v.SetSelections([]host.Selection{host.Cursor(cursor)})
	eng := NewEngine(register.NewStore(h.Clipboard()))
	return &fixture{
		host: h,
		view: v,
		eng:  eng,
		mctx: &motion.Context{Doc: v.Document(), State: motion.NewState()},
	}
}

func (f *fixture) text() string {
	return f.view.Document().(*memhost.Document).Text()
}

func (f *fixture) lastEntry(t *testing.T) register.Entry {
	t.Helper()
	entries := f.eng.Registers.Entries()
	if len(entries) == 0 {
		t.Fatal("no register entry written")
	}
	return entries[len(entries)-1]
}

// run parses the target keys against op and executes.
func (f *fixture) run(t *testing.T, kind Kind, op key.Key, notation string) Result {
	t.Helper()
	target, st := ParseTarget(op, key.MustTokenize(notation))
	if st != keyparse.StatusMatch {
		t.Fatalf("%q did not parse: %v", notation, st)
	}
	res, err := f.eng.Execute(context.Background(), f.view, f.mctx, kind, target)
	if err != nil {
		t.Fatalf("execute %q: %v", notation, err)
	}
	return res
}

func TestLinewiseDelete(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		line     int
		wantDoc  string
		wantText string
	}{
		{"middle line", "line1\nline2\nline3", 1, "line1\nline3", "line2"},
		{"last line without newline", "line1\nline2\nline3", 2, "line1\nline2", "line3"},
		{"last line with trailing newline", "line1\nline2\nline3\n", 2, "line1\nline2\n", "line3"},
		{"single line document", "only line", 0, "", "only line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.text, host.Position{Line: tt.line})
			f.run(t, Delete, "d", "dd")

			if got := f.text(); got != tt.wantDoc {
				t.Errorf("document = %q, want %q", got, tt.wantDoc)
			}
			entry := f.lastEntry(t)
			if entry.Text != tt.wantText || !entry.Linewise {
				t.Errorf("register = %+v, want {%q linewise}", entry, tt.wantText)
			}
		})
	}
}

func TestLinewiseYankLeavesDocument(t *testing.T) {
	f := newFixture(t, "alpha\nbeta", host.Position{Line: 1})
	f.run(t, Yank, "y", "yy")

	if got := f.text(); got != "alpha\nbeta" {
		t.Errorf("yank mutated the document: %q", got)
	}
	entry := f.lastEntry(t)
	if entry.Text != "beta" || !entry.Linewise {
		t.Errorf("register = %+v", entry)
	}
}

func TestMotionTargets(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pos     host.Position
		keys    string
		wantDoc string
		wantReg string
	}{
		{"dw forward", "one two three", host.Position{Line: 0, Col: 0}, "dw", "two three", "one "},
		{"d$ to line end", "hello world", host.Position{Line: 0, Col: 5}, "d$", "hello", " world"},
		{"db backward", "one two", host.Position{Line: 0, Col: 4}, "db", "two", "one "},
		{"dfx through character", "abcxdef", host.Position{Line: 0, Col: 0}, "dfx", "xdef", "abc"},
		{"dj spans lines", "aa\nbb\ncc", host.Position{Line: 0, Col: 1}, "dj", "ab\ncc", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.text, tt.pos)
			f.run(t, Delete, "d", tt.keys)

			if got := f.text(); got != tt.wantDoc {
				t.Errorf("document = %q, want %q", got, tt.wantDoc)
			}
			entry := f.lastEntry(t)
			if entry.Text != tt.wantReg || entry.Linewise {
				t.Errorf("register = %+v, want {%q charwise}", entry, tt.wantReg)
			}
		})
	}
}

func TestObjectTargets(t *testing.T) {
	// diw removes just the word; daw removes the separator too.
	f := newFixture(t, "this line 3", host.Position{Line: 0, Col: 6})
	f.run(t, Delete, "d", "diw")
	if got := f.text(); got != "this  3" {
		t.Errorf("diw: document = %q", got)
	}

	f = newFixture(t, "this line 3", host.Position{Line: 0, Col: 6})
	f.run(t, Delete, "d", "daw")
	if got := f.text(); got != "this 3" {
		t.Errorf("daw: document = %q", got)
	}

	f = newFixture(t, "f(a, b)", host.Position{Line: 0, Col: 3})
	f.run(t, Delete, "d", "di(")
	if got := f.text(); got != "f()" {
		t.Errorf("di(: document = %q", got)
	}
}

func TestUnresolvedObjectIsNoop(t *testing.T) {
	f := newFixture(t, "no brackets here", host.Position{Line: 0, Col: 3})
	f.run(t, Delete, "d", "di(")

	if got := f.text(); got != "no brackets here" {
		t.Errorf("document mutated: %q", got)
	}
	if n := f.eng.Registers.Len(); n != 0 {
		t.Errorf("register written %d entries on a no-op", n)
	}
}

// A find motion that misses returns the cursor unchanged, so the
// operator's range is empty. That must leave the register, clipboard,
// and document exactly as they were, not record an empty entry.
func TestFailedMotionIsNoop(t *testing.T) {
	f := newFixture(t, "hello world", host.Position{Line: 0, Col: 0})
	f.run(t, Yank, "y", "yw")
	if entry := f.lastEntry(t); entry.Text != "hello " {
		t.Fatalf("seed yank = %+v", entry)
	}

	f.run(t, Delete, "d", "dfz")

	if got := f.text(); got != "hello world" {
		t.Errorf("document mutated: %q", got)
	}
	if n := f.eng.Registers.Len(); n != 1 {
		t.Fatalf("register has %d entries, want seed only", n)
	}
	if entry := f.lastEntry(t); entry.Text != "hello " || entry.Linewise {
		t.Errorf("register = %+v", entry)
	}
	clip, err := f.host.Clipboard().Read(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if clip != "hello " {
		t.Errorf("clipboard = %q", clip)
	}
}

// A change over an empty range must not request insert mode.
func TestFailedMotionChangeStaysNormal(t *testing.T) {
	f := newFixture(t, "hello world", host.Position{Line: 0, Col: 0})
	res := f.run(t, Change, "c", "cfz")
	if res.EnterInsert {
		t.Error("failed change requested insert mode")
	}
	if got := f.text(); got != "hello world" {
		t.Errorf("document = %q", got)
	}
}

func TestChangeRequestsInsert(t *testing.T) {
	f := newFixture(t, "one two", host.Position{Line: 0, Col: 0})
	res := f.run(t, Change, "c", "cw")

	if !res.EnterInsert {
		t.Error("change did not request insert mode")
	}
	if got := f.text(); got != "two" {
		t.Errorf("document = %q", got)
	}
	if entry := f.lastEntry(t); entry.Text != "one " {
		t.Errorf("register = %+v", entry)
	}
}

func TestDeleteMovesCursorToRangeStart(t *testing.T) {
	f := newFixture(t, "one two three", host.Position{Line: 0, Col: 4})
	f.run(t, Delete, "d", "dw")

	sels := f.view.Selections()
	if len(sels) != 1 || sels[0].Active != (host.Position{Line: 0, Col: 4}) {
		t.Errorf("selections = %v", sels)
	}
}

func TestExecuteRangeVisual(t *testing.T) {
	f := newFixture(t, "alpha beta", host.Position{})
	rng := host.Range{Start: host.Position{Line: 0, Col: 6}, End: host.Position{Line: 0, Col: 10}}

	res, err := f.eng.ExecuteRange(context.Background(), f.view, rng, false, Change)
	if err != nil {
		t.Fatal(err)
	}
	if !res.EnterInsert {
		t.Error("visual change did not request insert")
	}
	if got := f.text(); got != "alpha " {
		t.Errorf("document = %q", got)
	}
	if entry := f.lastEntry(t); entry.Text != "beta" || entry.Linewise {
		t.Errorf("register = %+v", entry)
	}
}

func TestLinewiseSpanMultipleLines(t *testing.T) {
	f := newFixture(t, "a\nb\nc\nd", host.Position{})
	doc := f.view.Document()

	rng := LinewiseSpan(doc, 1, 2)
	res, err := f.eng.ExecuteRange(context.Background(), f.view, rng, true, Delete)
	if err != nil {
		t.Fatal(err)
	}
	if res.EnterInsert {
		t.Error("delete requested insert")
	}
	if got := f.text(); got != "a\nd" {
		t.Errorf("document = %q", got)
	}
	entry := f.lastEntry(t)
	if entry.Text != "b\nc" || !entry.Linewise {
		t.Errorf("register = %+v", entry)
	}
}

// A deleted linewise register entry round trips: pasting it back as a
// line restores the original content.
func TestLinewiseRoundTrip(t *testing.T) {
	for _, text := range []string{
		"line1\nline2\nline3",
		"line1\nline2\nline3\n",
		"only line",
	} {
		f := newFixture(t, text, host.Position{Line: 0})
		f.run(t, Delete, "d", "dd")
		entry := f.lastEntry(t)
		if entry.Text != "line1" && entry.Text != "only line" {
			t.Errorf("register %q from %q", entry.Text, text)
		}
		if containsNewline(entry.Text) {
			t.Errorf("linewise entry %q contains a newline", entry.Text)
		}
	}
}

func containsNewline(s string) bool {
	for _, r := range s {
		if r == '\n' {
			return true
		}
	}
	return false
}
