package motion

import (
	"context"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

// Context carries what a motion computation may read and the state it
// may update. Doc is read-only; State is the session's motion state.
type Context struct {
	Doc   host.Document
	State *State
}

// ComputeFunc calculates a new position from the current one. The
// keyparse result carries captured keys for pattern motions (f{char}).
type ComputeFunc func(ctx *Context, pos host.Position, res keyparse.Result) host.Position

// FallbackFunc performs a motion's equivalent effect through coarse
// host-native commands when no live document view exists.
type FallbackFunc func(ctx context.Context, h host.Host) error

// Motion is one named movement: a key-sequence parser, a position
// computation, and an optional degraded-mode fallback. Motions are
// stateless beyond their closed-over configuration.
type Motion struct {
	name     string
	parser   keyparse.Parser
	compute  ComputeFunc
	fallback FallbackFunc
}

// Name returns the motion identifier.
func (m *Motion) Name() string {
	return m.name
}

// Parser returns the motion's key-sequence parser.
func (m *Motion) Parser() keyparse.Parser {
	return m.parser
}

// Compute runs the position computation.
func (m *Motion) Compute(ctx *Context, pos host.Position, res keyparse.Result) host.Position {
	return m.compute(ctx, pos, res)
}

// HasFallback reports whether a degraded-mode path exists.
func (m *Motion) HasFallback() bool {
	return m.fallback != nil
}

// Fallback runs the degraded-mode path.
func (m *Motion) Fallback(ctx context.Context, h host.Host) error {
	return m.fallback(ctx, h)
}

// execFallback adapts a host-native command name into a FallbackFunc.
func execFallback(command string) FallbackFunc {
	return func(ctx context.Context, h host.Host) error {
		return h.ExecCommand(ctx, command)
	}
}

// All returns the motion registry in priority order. Order is part of
// the dispatch contract: the first full match wins and the list is
// evaluated front to back.
func All() []*Motion {
	return []*Motion{
		// Character search first: "f" must win the pending state before
		// any other reading of the key.
		findMotion("findChar", "f", DistanceNearer, DirAfter),
		findMotion("findCharBack", "F", DistanceNearer, DirBefore),
		findMotion("tillChar", "t", DistanceFurther, DirAfter),
		findMotion("tillCharBack", "T", DistanceFurther, DirBefore),
		repeatFindMotion("repeatFind", ";", false),
		repeatFindMotion("repeatFindReverse", ",", true),

		// Horizontal and vertical movement.
		simpleMotion("left", "h", computeLeft, execFallback("cursorLeft")),
		simpleMotion("right", "l", computeRight, execFallback("cursorRight")),
		simpleMotion("down", "j", computeDown, execFallback("cursorDown")),
		simpleMotion("up", "k", computeUp, execFallback("cursorUp")),

		// Word and WORD movement.
		simpleMotion("wordForward", "w", wordCompute(scanForwardStart, false), execFallback("cursorWordStartRight")),
		simpleMotion("wordBackward", "b", wordCompute(scanBackwardStart, false), execFallback("cursorWordStartLeft")),
		simpleMotion("wordEnd", "e", wordCompute(scanForwardEnd, false), execFallback("cursorWordEndRight")),
		simpleMotion("bigWordForward", "W", wordCompute(scanForwardStart, true), execFallback("cursorWordStartRight")),
		simpleMotion("bigWordBackward", "B", wordCompute(scanBackwardStart, true), execFallback("cursorWordStartLeft")),
		simpleMotion("bigWordEnd", "E", wordCompute(scanForwardEnd, true), execFallback("cursorWordEndRight")),

		// Line extent.
		simpleMotion("lineStart", "0", computeLineStart, execFallback("cursorLineStart")),
		simpleMotion("firstNonBlank", "^", computeFirstNonBlank, nil),
		simpleMotion("lineEnd", "$", computeLineEnd, execFallback("cursorLineEnd")),

		// Document extent.
		simpleMotion("documentStart", "gg", computeDocumentStart, execFallback("cursorTop")),
		simpleMotion("documentEnd", "G", computeDocumentEnd, execFallback("cursorBottom")),
	}
}

// ByName returns a motion from the registry, or nil.
func ByName(name string) *Motion {
	for _, m := range All() {
		if m.name == name {
			return m
		}
	}
	return nil
}

// simpleMotion builds a fixed-key motion.
func simpleMotion(name, notation string, compute ComputeFunc, fallback FallbackFunc) *Motion {
	return &Motion{
		name:     name,
		parser:   keyparse.NewPrefixNotation(notation),
		compute:  compute,
		fallback: fallback,
	}
}
