package session

import (
	"context"

	"github.com/dshills/modalkit/internal/dispatcher"
	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/motion"
)

// action is one dispatch unit: a name, the modes it is live in, and
// the classify-and-execute function. The bindings notation is kept for
// the exported key table; computed parsers leave it empty.
type action struct {
	name  string
	keys  string
	modes []mode.Mode
	try   func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error)

	session *Session
}

func (a *action) Name() string { return a.name }

// Try gates on the live mode, then defers to the action body. The mode
// is re-read per invocation, never cached across keystrokes.
func (a *action) Try(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
	cur := a.session.modes.Current()
	enabled := false
	for _, m := range a.modes {
		if m == cur {
			enabled = true
			break
		}
	}
	if !enabled {
		return dispatcher.NoMatch, nil
	}
	return a.try(ctx, pending)
}

var (
	normalOnly = []mode.Mode{mode.Normal}
	visualOnly = []mode.Mode{mode.Visual, mode.VisualLine}
	allModes   = []mode.Mode{mode.Normal, mode.Insert, mode.Visual, mode.VisualLine}
)

// buildActions assembles the priority-ordered action list: cancel
// first, then mode switches, operators, paste, and finally motions.
// First full match wins, so the order is part of the contract.
func (s *Session) buildActions() []*action {
	var acts []*action

	acts = append(acts, s.cancelAction())
	acts = append(acts, s.insertEntryActions()...)
	acts = append(acts, s.visualEntryActions()...)
	acts = append(acts, s.operatorActions()...)
	acts = append(acts, s.visualOperatorActions()...)
	acts = append(acts, s.pasteActions()...)
	acts = append(acts, s.motionActions()...)

	for _, a := range acts {
		a.session = s
	}
	return acts
}

// cancelAction handles Escape in every mode: leave insert or visual,
// and drop any partially typed sequence. A pending buffer whose final
// key is Escape is consumed whole.
func (s *Session) cancelAction() *action {
	return &action{
		name:  "cancel",
		keys:  "<escape>",
		modes: allModes,
		try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
			if pending[len(pending)-1] != key.KeyEscape {
				return dispatcher.NoMatch, nil
			}
			s.cancel()
			return dispatcher.Executed, nil
		},
	}
}

// cancel applies Escape's mode effects. Pending keys clear through the
// executed outcome and the transition hook.
func (s *Session) cancel() {
	switch cur := s.modes.Current(); {
	case cur == mode.Insert:
		s.modes.Set(mode.Normal)
	case cur.IsVisual():
		if v, ok := s.h.ActiveView(); ok {
			sels := v.Selections()
			collapsed := make([]host.Selection, len(sels))
			for i, sel := range sels {
				collapsed[i] = host.Cursor(normalCol(v.Document(), sel.Active))
			}
			v.SetSelections(collapsed)
		}
		s.modes.Set(mode.Normal)
	}
}

// insertEntryActions builds i, a, I, A, o, and O.
func (s *Session) insertEntryActions() []*action {
	entries := []struct {
		name, notation string
		enter          func(ctx context.Context, v host.View) error
	}{
		{"insertBefore", "i", func(_ context.Context, _ host.View) error {
			return nil
		}},
		{"insertAfter", "a", func(_ context.Context, v host.View) error {
			cur := primaryCursor(v)
			cur.Col++
			setCursor(v, v.Document().Clamp(cur))
			return nil
		}},
		{"insertLineStart", "I", func(_ context.Context, v host.View) error {
			cur := primaryCursor(v)
			setCursor(v, host.Position{Line: cur.Line, Col: firstNonBlankCol(v.Document(), cur.Line)})
			return nil
		}},
		{"insertLineEnd", "A", func(_ context.Context, v host.View) error {
			cur := primaryCursor(v)
			setCursor(v, host.Position{Line: cur.Line, Col: host.LineLen(v.Document(), cur.Line)})
			return nil
		}},
		{"openBelow", "o", func(ctx context.Context, v host.View) error {
			cur := primaryCursor(v)
			end := host.Position{Line: cur.Line, Col: host.LineLen(v.Document(), cur.Line)}
			if err := v.ApplyEdit(ctx, host.Range{Start: end, End: end}, "\n"); err != nil {
				return err
			}
			setCursor(v, host.Position{Line: cur.Line + 1})
			return nil
		}},
		{"openAbove", "O", func(ctx context.Context, v host.View) error {
			cur := primaryCursor(v)
			start := host.Position{Line: cur.Line}
			if err := v.ApplyEdit(ctx, host.Range{Start: start, End: start}, "\n"); err != nil {
				return err
			}
			setCursor(v, host.Position{Line: cur.Line})
			return nil
		}},
	}

	acts := make([]*action, 0, len(entries))
	for _, e := range entries {
		enter := e.enter
		acts = append(acts, &action{
			name:  e.name,
			keys:  e.notation,
			modes: normalOnly,
			try: s.simpleTry(e.notation, func(ctx context.Context) error {
				v, ok := s.h.ActiveView()
				if !ok {
					return nil
				}
				if err := enter(ctx, v); err != nil {
					return err
				}
				s.modes.Set(mode.Insert)
				return nil
			}),
		})
	}
	return acts
}

// visualEntryActions builds v and V for entering, switching, and
// leaving the visual modes.
func (s *Session) visualEntryActions() []*action {
	visual := &action{
		name:  "visualChar",
		keys:  "v",
		modes: []mode.Mode{mode.Normal, mode.Visual, mode.VisualLine},
		try: s.simpleTry("v", func(ctx context.Context) error {
			switch cur := s.modes.Current(); {
			case cur == mode.Visual:
				s.cancel()
			default:
				s.enterVisual(mode.Visual)
			}
			return nil
		}),
	}
	visualLine := &action{
		name:  "visualLine",
		keys:  "V",
		modes: []mode.Mode{mode.Normal, mode.Visual, mode.VisualLine},
		try: s.simpleTry("V", func(ctx context.Context) error {
			switch cur := s.modes.Current(); {
			case cur == mode.VisualLine:
				s.cancel()
			default:
				s.enterVisual(mode.VisualLine)
			}
			return nil
		}),
	}
	return []*action{visual, visualLine}
}

// enterVisual selects under the cursor (or the cursor line) and
// transitions. The selection is set before the mode so the transition
// side effects see the final state. Character visual needs a character
// to select: on an empty line the mode is left alone.
func (s *Session) enterVisual(target mode.Mode) {
	v, ok := s.h.ActiveView()
	if !ok {
		return
	}
	doc := v.Document()
	sel := v.Selections()[0]

	if target == mode.VisualLine {
		line := sel.Active.Line
		v.SetSelections([]host.Selection{lineSpanSelection(doc, line, line)})
	} else if sel.IsEmpty() {
		cur := sel.Active
		end := doc.Clamp(host.Position{Line: cur.Line, Col: cur.Col + 1})
		if end == cur {
			return
		}
		v.SetSelections([]host.Selection{{Anchor: cur, Active: end}})
	}
	s.modes.Set(target)
}

// pasteActions builds p and P over the most recent register entry.
func (s *Session) pasteActions() []*action {
	paste := func(before bool) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			v, ok := s.h.ActiveView()
			if !ok {
				return nil
			}
			entry, ok := s.registers.Latest(ctx)
			if !ok {
				return nil
			}
			doc := v.Document()
			cur := primaryCursor(v)

			if entry.Linewise {
				if before {
					at := host.Position{Line: cur.Line}
					if err := v.ApplyEdit(ctx, host.Range{Start: at, End: at}, entry.Text+"\n"); err != nil {
						return err
					}
					setCursor(v, host.Position{Line: cur.Line})
					return nil
				}
				end := host.Position{Line: cur.Line, Col: host.LineLen(doc, cur.Line)}
				if err := v.ApplyEdit(ctx, host.Range{Start: end, End: end}, "\n"+entry.Text); err != nil {
					return err
				}
				setCursor(v, host.Position{Line: cur.Line + 1})
				return nil
			}

			at := cur
			if !before {
				at = doc.Clamp(host.Position{Line: cur.Line, Col: cur.Col + 1})
			}
			if err := v.ApplyEdit(ctx, host.Range{Start: at, End: at}, entry.Text); err != nil {
				return err
			}
			setCursor(v, at)
			return nil
		}
	}

	return []*action{
		{name: "pasteAfter", keys: "p", modes: normalOnly, try: s.simpleTry("p", paste(false))},
		{name: "pasteBefore", keys: "P", modes: normalOnly, try: s.simpleTry("P", paste(true))},
	}
}

// simpleTry adapts a fixed key notation and an effect into a try
// function.
func (s *Session) simpleTry(notation string, run func(ctx context.Context) error) func(context.Context, key.Sequence) (dispatcher.Outcome, error) {
	parser := keyparse.NewPrefixNotation(notation)
	return func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
		switch parser.Feed(pending).Status {
		case keyparse.StatusMatch:
			return dispatcher.Executed, run(ctx)
		case keyparse.StatusNeedsMoreKey:
			return dispatcher.NeedsMoreKey, nil
		default:
			return dispatcher.NoMatch, nil
		}
	}
}

// primaryCursor returns the first selection's active position.
func primaryCursor(v host.View) host.Position {
	sels := v.Selections()
	if len(sels) == 0 {
		return host.Position{}
	}
	return sels[0].Active
}

// setCursor collapses to a single empty selection at pos.
func setCursor(v host.View, pos host.Position) {
	v.SetSelections([]host.Selection{host.Cursor(pos)})
}

// normalCol clamps a position onto a character cell, the way the
// normal-mode cursor sits on rather than after the last character.
func normalCol(doc host.Document, pos host.Position) host.Position {
	pos = doc.Clamp(pos)
	if ll := host.LineLen(doc, pos.Line); pos.Col >= ll && ll > 0 {
		pos.Col = ll - 1
	}
	return pos
}

// firstNonBlankCol returns the column of a line's first non-blank
// character, or zero.
func firstNonBlankCol(doc host.Document, line int) int {
	for i, r := range []rune(doc.LineText(line)) {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return 0
}

// lineSpanSelection selects whole lines first through last, snapped to
// line boundaries with the anchor on the first line.
func lineSpanSelection(doc host.Document, first, last int) host.Selection {
	if first <= last {
		return host.Selection{
			Anchor: host.Position{Line: first},
			Active: host.Position{Line: last, Col: host.LineLen(doc, last)},
		}
	}
	return host.Selection{
		Anchor: host.Position{Line: first, Col: host.LineLen(doc, first)},
		Active: host.Position{Line: last},
	}
}

// motionState builds the per-invocation motion context against the
// live document.
func (s *Session) motionContext(doc host.Document) *motion.Context {
	return &motion.Context{Doc: doc, State: s.motionState}
}
