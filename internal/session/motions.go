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

// motionActions adapts every registered motion into a mode-gated
// cursor move: a plain move in normal mode, a selection extension in
// the visual modes.
func (s *Session) motionActions() []*action {
	all := motion.All()
	acts := make([]*action, 0, len(all))
	for _, m := range all {
		m := m
		acts = append(acts, &action{
			name:  "motion." + m.Name(),
			modes: []mode.Mode{mode.Normal, mode.Visual, mode.VisualLine},
			try: func(ctx context.Context, pending key.Sequence) (dispatcher.Outcome, error) {
				res := m.Parser().Feed(pending)
				switch res.Status {
				case keyparse.StatusNeedsMoreKey:
					return dispatcher.NeedsMoreKey, nil
				case keyparse.StatusNoMatch:
					return dispatcher.NoMatch, nil
				}

				v, ok := s.h.ActiveView()
				if !ok {
					if m.HasFallback() {
						return dispatcher.ExecutedFallback, m.Fallback(ctx, s.h)
					}
					// No view and no coarse equivalent: the keys are
					// consumed, nothing can move.
					return dispatcher.Executed, nil
				}
				s.applyMotion(v, m, res)
				return dispatcher.Executed, nil
			},
		})
	}
	return acts
}

// applyMotion computes the new position against the live document and
// applies it per mode.
func (s *Session) applyMotion(v host.View, m *motion.Motion, res keyparse.Result) {
	doc := v.Document()
	mctx := s.motionContext(doc)
	sel := v.Selections()[0]

	switch s.modes.Current() {
	case mode.Visual:
		dest := m.Compute(mctx, sel.Active, res)
		v.SetSelections([]host.Selection{{Anchor: sel.Anchor, Active: dest}})

	case mode.VisualLine:
		dest := m.Compute(mctx, sel.Active, res)
		v.SetSelections([]host.Selection{lineSpanSelection(doc, sel.Anchor.Line, dest.Line)})

	default:
		dest := m.Compute(mctx, sel.Active, res)
		setCursor(v, normalCol(doc, dest))
	}
}
