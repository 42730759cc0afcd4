package motion

import (
	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

// captureChar is the capture name used by the f/F/t/T patterns.
const captureChar = "char"

// findMotion builds a character-search motion: a pattern parser for
// key{char}, a computation constrained to the current line, and the
// FindChar side effect consumed by the repeat motions.
func findMotion(name, notation string, distance Distance, direction Direction) *Motion {
	return &Motion{
		name:   name,
		parser: keyparse.NewPatternNotation(notation, captureChar),
		compute: func(ctx *Context, pos host.Position, res keyparse.Result) host.Position {
			ctx.State.ClearKeptColumn()
			r, ok := res.Capture(captureChar).Rune()
			if !ok {
				return pos
			}
			find := FindChar{Char: r, Distance: distance, Direction: direction}
			ctx.State.LastFind = &find
			if target, found := searchLine(ctx.Doc, pos, find); found {
				return target
			}
			return pos
		},
	}
}

// repeatFindMotion builds ";" and ",". Repeat reads the stored search
// without mutating it; the reverse variant flips only the direction.
// With no stored search the position is unchanged.
func repeatFindMotion(name, notation string, reverse bool) *Motion {
	return &Motion{
		name:   name,
		parser: keyparse.NewPrefixNotation(notation),
		compute: func(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
			ctx.State.ClearKeptColumn()
			if ctx.State.LastFind == nil {
				return pos
			}
			find := *ctx.State.LastFind
			if reverse {
				find.Direction = find.Direction.Flipped()
			}
			if target, found := searchLine(ctx.Doc, pos, find); found {
				return target
			}
			return pos
		},
	}
}

// searchLine scans the cursor line for the find target. The search
// never leaves the line; a miss reports false.
func searchLine(doc host.Document, pos host.Position, find FindChar) (host.Position, bool) {
	line := []rune(doc.LineText(pos.Line))

	switch find.Direction {
	case DirAfter:
		for col := pos.Col + 1; col < len(line); col++ {
			if line[col] != find.Char {
				continue
			}
			if find.Distance == DistanceFurther {
				col--
			}
			return host.Position{Line: pos.Line, Col: col}, true
		}
	case DirBefore:
		for col := pos.Col - 1; col >= 0; col-- {
			if line[col] != find.Char {
				continue
			}
			if find.Distance == DistanceFurther {
				col++
			}
			return host.Position{Line: pos.Line, Col: col}, true
		}
	}
	return pos, false
}
