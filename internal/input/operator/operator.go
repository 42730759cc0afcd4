package operator

import (
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/keyparse"
	"github.com/dshills/modalkit/internal/input/motion"
	"github.com/dshills/modalkit/internal/input/textobject"
)

// Kind selects what an operator does with its resolved range.
type Kind uint8

const (
	Delete Kind = iota
	Change
	Yank
)

func (k Kind) String() string {
	switch k {
	case Delete:
		return "delete"
	case Change:
		return "change"
	case Yank:
		return "yank"
	default:
		return "unknown"
	}
}

// Args describes what one operator invocation acts upon. Exactly one
// field is set: a text-object id, a motion name, or the whole-line
// flag. The key-sequence layer constructs it; the engine consumes it.
type Args struct {
	TextObject string
	Motion     string
	Line       bool
}

// Valid reports whether exactly one field is set.
func (a Args) Valid() bool {
	n := 0
	if a.TextObject != "" {
		n++
	}
	if a.Motion != "" {
		n++
	}
	if a.Line {
		n++
	}
	return n == 1
}

// Target is a parsed operator target: the args plus the capture result
// for pattern motions (dfx carries the searched character).
type Target struct {
	Args Args
	Res  keyparse.Result
}

// ParseTarget classifies a full pending sequence against one operator
// key: the operator key itself, then whichever of doubled-key,
// motion, or text-object keys follow. Tri-state like every parser.
func ParseTarget(op key.Key, pressed key.Sequence) (Target, keyparse.Status) {
	if len(pressed) == 0 || pressed[0] != op {
		return Target{}, keyparse.StatusNoMatch
	}
	if len(pressed) == 1 {
		return Target{}, keyparse.StatusNeedsMoreKey
	}
	return parseTargetKeys(op, pressed[1:])
}

// parseTargetKeys classifies the keys after the operator key. The
// doubled operator key wins first, then motions in registry order,
// then text objects.
func parseTargetKeys(op key.Key, rest key.Sequence) (Target, keyparse.Status) {
	if len(rest) == 1 && rest[0] == op {
		return Target{Args: Args{Line: true}}, keyparse.StatusMatch
	}

	needMore := false
	for _, m := range motion.All() {
		res := m.Parser().Feed(rest)
		switch res.Status {
		case keyparse.StatusMatch:
			return Target{Args: Args{Motion: m.Name()}, Res: res}, keyparse.StatusMatch
		case keyparse.StatusNeedsMoreKey:
			needMore = true
		}
	}

	switch t, st := parseObjectKeys(rest); st {
	case keyparse.StatusMatch:
		return t, st
	case keyparse.StatusNeedsMoreKey:
		needMore = true
	}

	if needMore {
		return Target{}, keyparse.StatusNeedsMoreKey
	}
	return Target{}, keyparse.StatusNoMatch
}

// parseObjectKeys reads an "i"/"a" text-object selector.
func parseObjectKeys(rest key.Sequence) (Target, keyparse.Status) {
	if rest[0] != "i" && rest[0] != "a" {
		return Target{}, keyparse.StatusNoMatch
	}
	if len(rest) == 1 {
		return Target{}, keyparse.StatusNeedsMoreKey
	}
	if len(rest) != 2 || !rest[1].IsRune() {
		return Target{}, keyparse.StatusNoMatch
	}
	id := string(rest[0]) + string(rest[1])
	if textobject.ByID(id) == nil {
		return Target{}, keyparse.StatusNoMatch
	}
	return Target{Args: Args{TextObject: id}}, keyparse.StatusMatch
}
