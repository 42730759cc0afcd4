package operator

import (
	"context"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/motion"
	"github.com/dshills/modalkit/internal/input/register"
	"github.com/dshills/modalkit/internal/input/textobject"
)

// Engine applies operators to a view. It owns no editing state of its
// own; every invocation re-reads the live cursor and document.
type Engine struct {
	Registers *register.Store
}

// NewEngine creates an engine writing to regs.
func NewEngine(regs *register.Store) *Engine {
	return &Engine{Registers: regs}
}

// Result reports what an execution asks of the caller beyond the edit
// itself.
type Result struct {
	// EnterInsert is set when a change operator completed and the
	// session should transition to insert mode at the edit site.
	EnterInsert bool
}

// Execute resolves the target range and applies kind to it. A target
// that resolves to nothing (no enclosing pair, a motion that could
// not move) is a no-op with the keys still consumed: the register and
// document are left untouched.
func (e *Engine) Execute(ctx context.Context, view host.View, mctx *motion.Context, kind Kind, t Target) (Result, error) {
	rng, linewise, ok := e.resolveRange(view, mctx, t)
	if !ok || rng.IsEmpty() {
		return Result{}, nil
	}

	if kind == Yank {
		e.put(ctx, view.Document(), rng, linewise)
		return Result{}, nil
	}

	// Delete and change extract before mutating.
	e.put(ctx, view.Document(), rng, linewise)
	if err := view.ApplyEdit(ctx, rng, ""); err != nil {
		return Result{}, err
	}
	return Result{EnterInsert: kind == Change}, nil
}

// ExecuteRange applies kind directly to a known range, used by the
// visual-mode operators where the selection is the target.
func (e *Engine) ExecuteRange(ctx context.Context, view host.View, rng host.Range, linewise bool, kind Kind) (Result, error) {
	rng = rng.Ordered()
	if rng.IsEmpty() {
		return Result{}, nil
	}
	if kind == Yank {
		e.put(ctx, view.Document(), rng, linewise)
		return Result{}, nil
	}
	e.put(ctx, view.Document(), rng, linewise)
	if err := view.ApplyEdit(ctx, rng, ""); err != nil {
		return Result{}, err
	}
	return Result{EnterInsert: kind == Change}, nil
}

// put extracts the range text and records a register entry, applying
// the linewise newline normalization before storing.
func (e *Engine) put(ctx context.Context, doc host.Document, rng host.Range, linewise bool) {
	text := host.RangeText(doc, rng)
	if linewise {
		text = register.NormalizeLinewise(text)
	}
	e.Registers.Put(ctx, register.Entry{Text: text, Linewise: linewise})
}

// resolveRange turns a target into the document range the operator
// acts on, plus whether the range is line-oriented.
func (e *Engine) resolveRange(view host.View, mctx *motion.Context, t Target) (host.Range, bool, bool) {
	cur := Cursor(view)

	switch {
	case t.Args.Line:
		return LinewiseRange(mctx.Doc, cur.Line), true, true

	case t.Args.TextObject != "":
		o := textobject.ByID(t.Args.TextObject)
		if o == nil {
			return host.Range{}, false, false
		}
		rng, ok := o.Resolve(mctx.Doc, cur)
		return rng, false, ok

	case t.Args.Motion != "":
		m := motion.ByName(t.Args.Motion)
		if m == nil {
			return host.Range{}, false, false
		}
		dest := m.Compute(mctx, cur, t.Res)
		return host.Range{Start: cur, End: dest}.Ordered(), false, true
	}
	return host.Range{}, false, false
}

// Cursor returns the primary selection's active position.
func Cursor(view host.View) host.Position {
	sels := view.Selections()
	if len(sels) == 0 {
		return host.Position{}
	}
	return sels[0].Active
}

// LinewiseRange returns the range that removes one line entirely. The
// range carries exactly one bounding newline when the document has
// one to give: the line's own trailing newline normally, the previous
// line's newline for a last line without one, and none for a document
// of a single line.
func LinewiseRange(doc host.Document, line int) host.Range {
	return LinewiseSpan(doc, line, line)
}

// LinewiseSpan is LinewiseRange generalized to the whole lines first
// through last, inclusive, as visual-line selections produce.
func LinewiseSpan(doc host.Document, first, last int) host.Range {
	if last < doc.LineCount()-1 {
		return host.Range{
			Start: host.Position{Line: first},
			End:   host.Position{Line: last + 1},
		}
	}
	if first > 0 {
		return host.Range{
			Start: host.Position{Line: first - 1, Col: host.LineLen(doc, first-1)},
			End:   host.Position{Line: last, Col: host.LineLen(doc, last)},
		}
	}
	return host.Range{
		Start: host.Position{Line: first},
		End:   host.Position{Line: last, Col: host.LineLen(doc, last)},
	}
}
