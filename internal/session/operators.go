package session

import (
	"context"

	"github.com/dshills/modalkit/internal/dispatcher"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
	"github.com/dshills/modalkit/internal/input/mode"
	"github.com/dshills/modalkit/internal/input/operator"
)

// operatorActions builds the normal-mode operators: delete, change,
// and yank composed with any target, plus the surround family.
func (s *Session) operatorActions() []*action {
	ops := []struct {
		name string
		op   key.Key
		kind operator.Kind
	}{
		{"delete", "d", operator.Delete},
		{"change", "c", operator.Change},
		{"yank", "y", operator.Yank},
	}

	var acts []*action
	for _, o := range ops {
		o := o
		acts = append(acts, &action{
			name:  o.name,
			keys:  string(o.op),
			modes: normalOnly,
			try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
				target, st := operator.ParseTarget(o.op, pending)
				switch st {
				case keyparse.StatusNeedsMoreKey:
					return dispatcher.NeedsMoreKey, nil
				case keyparse.StatusNoMatch:
					return dispatcher.NoMatch, nil
				}

				v, ok := s.h.ActiveView()
				if !ok {
					return dispatcher.Executed, nil
				}
				res, err := s.engine.Execute(ctx, v, s.motionContext(v.Document()), o.kind, target)
				if err != nil {
					return dispatcher.Executed, err
				}
				if res.EnterInsert {
					s.modes.Set(mode.Insert)
				}
				return dispatcher.Executed, nil
			},
		})
	}

	if s.surround {
		acts = append(acts, s.surroundActions()...)
	}
	return acts
}

// surroundActions builds ys, cs, and ds.
func (s *Session) surroundActions() []*action {
	add := &action{
		name:  "surroundAdd",
		keys:  "ys",
		modes: normalOnly,
		try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
			target, delim, st := operator.ParseSurroundAdd(pending)
			switch st {
			case keyparse.StatusNeedsMoreKey:
				return dispatcher.NeedsMoreKey, nil
			case keyparse.StatusNoMatch:
				return dispatcher.NoMatch, nil
			}
			v, ok := s.h.ActiveView()
			if !ok {
				return dispatcher.Executed, nil
			}
			return dispatcher.Executed, s.engine.SurroundAdd(ctx, v, s.motionContext(v.Document()), target, delim)
		},
	}

	changeParser := operator.SurroundChangeParser()
	change := &action{
		name:  "surroundChange",
		keys:  "cs",
		modes: normalOnly,
		try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
			res := changeParser.Feed(pending)
			switch res.Status {
			case keyparse.StatusNeedsMoreKey:
				return dispatcher.NeedsMoreKey, nil
			case keyparse.StatusNoMatch:
				return dispatcher.NoMatch, nil
			}
			v, ok := s.h.ActiveView()
			if !ok {
				return dispatcher.Executed, nil
			}
			from, _ := res.Capture("from").Rune()
			to, _ := res.Capture("to").Rune()
			return dispatcher.Executed, s.engine.SurroundChange(ctx, v, from, to)
		},
	}

	deleteParser := operator.SurroundDeleteParser()
	del := &action{
		name:  "surroundDelete",
		keys:  "ds",
		modes: normalOnly,
		try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
			res := deleteParser.Feed(pending)
			switch res.Status {
			case keyparse.StatusNeedsMoreKey:
				return dispatcher.NeedsMoreKey, nil
			case keyparse.StatusNoMatch:
				return dispatcher.NoMatch, nil
			}
			v, ok := s.h.ActiveView()
			if !ok {
				return dispatcher.Executed, nil
			}
			target, _ := res.Capture("char").Rune()
			return dispatcher.Executed, s.engine.SurroundDelete(ctx, v, target)
		},
	}

	return []*action{add, change, del}
}

// visualOperatorActions builds d, c, y, and S over the active
// selection. Visual-line selections resolve through the linewise
// boundary rules so a deleted line takes its newline along.
func (s *Session) visualOperatorActions() []*action {
	ops := []struct {
		name     string
		notation string
		kind     operator.Kind
	}{
		{"visualDelete", "d", operator.Delete},
		{"visualChange", "c", operator.Change},
		{"visualYank", "y", operator.Yank},
	}

	var acts []*action
	for _, o := range ops {
		o := o
		acts = append(acts, &action{
			name:  o.name,
			keys:  o.notation,
			modes: visualOnly,
			try: s.simpleTry(o.notation, func(ctx context.Context) error {
				return s.visualOperate(ctx, o.kind)
			}),
		})
	}

	if !s.surround {
		return acts
	}

	wrapParser := keyparse.NewPatternNotation("S", "char")
	acts = append(acts, &action{
		name:  "visualSurround",
		keys:  "S",
		modes: visualOnly,
		try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
			res := wrapParser.Feed(pending)
			switch res.Status {
			case keyparse.StatusNeedsMoreKey:
				return dispatcher.NeedsMoreKey, nil
			case keyparse.StatusNoMatch:
				return dispatcher.NoMatch, nil
			}
			v, ok := s.h.ActiveView()
			if !ok {
				return dispatcher.Executed, nil
			}
			delim, _ := res.Capture("char").Rune()
			rng := v.Selections()[0].Range()
			if err := s.engine.SurroundWrap(ctx, v, rng, delim); err != nil {
				return dispatcher.Executed, err
			}
			s.modes.Set(mode.Normal)
			return dispatcher.Executed, nil
		},
	})
	return acts
}

// visualOperate applies an operator to the selection and leaves
// visual mode.
func (s *Session) visualOperate(ctx context.Context, kind operator.Kind) error {
	v, ok := s.h.ActiveView()
	if !ok {
		return nil
	}
	doc := v.Document()
	sel := v.Selections()[0]
	rng := sel.Range()
	linewise := s.modes.Current() == mode.VisualLine
	if linewise {
		rng = operator.LinewiseSpan(doc, rng.Start.Line, rng.End.Line)
	}

	res, err := s.engine.ExecuteRange(ctx, v, rng, linewise, kind)
	if err != nil {
		return err
	}

	if kind == operator.Yank {
		setCursor(v, normalCol(doc, rng.Start))
	}
	if res.EnterInsert {
		s.modes.Set(mode.Insert)
	} else {
		s.modes.Set(mode.Normal)
	}
	return nil
}
