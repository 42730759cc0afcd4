package operator

import (
	"context"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
	"github.com/dshills/modalkit/internal/input/motion"
	"github.com/dshills/modalkit/internal/input/textobject"
)

// SurroundChangeParser matches cs{from}{to}.
func SurroundChangeParser() keyparse.Parser {
	return keyparse.NewPatternNotation("cs", "from", "to")
}

// SurroundDeleteParser matches ds{char}.
func SurroundDeleteParser() keyparse.Parser {
	return keyparse.NewPatternNotation("ds", "char")
}

// ParseSurroundAdd classifies ys{target}{delimiter}: the ys prefix,
// then any operator target (motion or text object), then one delimiter
// key. The grammar is ambiguous while the target is still forming, so
// a sequence whose tail could extend the target stays needsMoreKey.
func ParseSurroundAdd(pressed key.Sequence) (Target, rune, keyparse.Status) {
	prefix := key.Sequence{"y", "s"}
	if len(pressed) > 0 && pressed.IsStrictPrefixOf(prefix) {
		return Target{}, 0, keyparse.StatusNeedsMoreKey
	}
	if !pressed.HasPrefix(prefix) {
		return Target{}, 0, keyparse.StatusNoMatch
	}
	rest := pressed[2:]
	if len(rest) == 0 {
		return Target{}, 0, keyparse.StatusNeedsMoreKey
	}

	// A complete target followed by a delimiter key finishes the form.
	if len(rest) >= 2 {
		if t, st := parseTargetKeys("y", rest[:len(rest)-1]); st == keyparse.StatusMatch {
			r, ok := rest[len(rest)-1].Rune()
			if !ok {
				return Target{}, 0, keyparse.StatusNoMatch
			}
			if _, _, ok := textobject.PairFor(r); !ok {
				return Target{}, 0, keyparse.StatusNoMatch
			}
			return t, r, keyparse.StatusMatch
		}
	}

	// Otherwise the keys so far must still be a viable target.
	if _, st := parseTargetKeys("y", rest); st != keyparse.StatusNoMatch {
		return Target{}, 0, keyparse.StatusNeedsMoreKey
	}
	return Target{}, 0, keyparse.StatusNoMatch
}

// SurroundAdd wraps the target's range in a delimiter pair. The
// whole-line target wraps the cursor line's content, newline excluded.
func (e *Engine) SurroundAdd(ctx context.Context, view host.View, mctx *motion.Context, t Target, delim rune) error {
	var rng host.Range
	if t.Args.Line {
		line := Cursor(view).Line
		rng = host.Range{
			Start: host.Position{Line: line},
			End:   host.Position{Line: line, Col: host.LineLen(mctx.Doc, line)},
		}
	} else {
		var ok bool
		rng, _, ok = e.resolveRange(view, mctx, t)
		if !ok {
			return nil
		}
	}
	return e.SurroundWrap(ctx, view, rng, delim)
}

// SurroundWrap wraps an explicit range, used directly by the
// visual-mode S command.
func (e *Engine) SurroundWrap(ctx context.Context, view host.View, rng host.Range, delim rune) error {
	open, close, ok := textobject.PairFor(delim)
	if !ok {
		return nil
	}
	rng = rng.Ordered()
	text := host.RangeText(view.Document(), rng)
	return view.ApplyEdit(ctx, rng, string(open)+text+string(close))
}

// SurroundDelete removes the delimiters of the enclosing pair named by
// target, keeping the contents. An absent pair is a no-op.
func (e *Engine) SurroundDelete(ctx context.Context, view host.View, target rune) error {
	around, inner, ok := enclosing(view, target)
	if !ok {
		return nil
	}
	text := host.RangeText(view.Document(), inner)
	return view.ApplyEdit(ctx, around, text)
}

// SurroundChange replaces the delimiters of the enclosing pair named
// by from with the pair named by to.
func (e *Engine) SurroundChange(ctx context.Context, view host.View, from, to rune) error {
	open, close, ok := textobject.PairFor(to)
	if !ok {
		return nil
	}
	around, inner, enclosed := enclosing(view, from)
	if !enclosed {
		return nil
	}
	text := host.RangeText(view.Document(), inner)
	return view.ApplyEdit(ctx, around, string(open)+text+string(close))
}

// enclosing resolves the around and inner ranges of the pair named by
// target at the cursor.
func enclosing(view host.View, target rune) (around, inner host.Range, ok bool) {
	ao := textobject.ByID("a" + string(target))
	io := textobject.ByID("i" + string(target))
	if ao == nil || io == nil {
		return host.Range{}, host.Range{}, false
	}
	cur := Cursor(view)
	doc := view.Document()
	around, ok = ao.Resolve(doc, cur)
	if !ok {
		return host.Range{}, host.Range{}, false
	}
	inner, ok = io.Resolve(doc, cur)
	if !ok {
		return host.Range{}, host.Range{}, false
	}
	return around, inner, true
}
