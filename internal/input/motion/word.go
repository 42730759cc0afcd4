package motion

import (
	"unicode"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

// charClass partitions characters for word-boundary scanning.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

// Classify buckets a rune. Big (WORD) scanning collapses word and
// punctuation into one class so only whitespace forms boundaries.
func Classify(r rune, big bool) charClass {
	if unicode.IsSpace(r) {
		return classSpace
	}
	if big {
		return classWord
	}
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return classWord
	}
	return classPunct
}

// charAt returns the rune at pos, treating the slot at each line's end
// as the newline. Returns false one past the end of the document.
func charAt(doc host.Document, pos host.Position) (rune, bool) {
	line := []rune(doc.LineText(pos.Line))
	if pos.Col < len(line) {
		return line[pos.Col], true
	}
	if pos.Line < doc.LineCount()-1 {
		return '\n', true
	}
	return 0, false
}

// nextPos advances one character slot, wrapping across lines.
func nextPos(doc host.Document, pos host.Position) (host.Position, bool) {
	if pos.Col < host.LineLen(doc, pos.Line) {
		pos.Col++
		return pos, true
	}
	if pos.Line < doc.LineCount()-1 {
		return host.Position{Line: pos.Line + 1, Col: 0}, true
	}
	return pos, false
}

// prevPos retreats one character slot, wrapping across lines.
func prevPos(doc host.Document, pos host.Position) (host.Position, bool) {
	if pos.Col > 0 {
		pos.Col--
		return pos, true
	}
	if pos.Line > 0 {
		line := pos.Line - 1
		return host.Position{Line: line, Col: host.LineLen(doc, line)}, true
	}
	return pos, false
}

// wordCompute adapts a boundary scan into a ComputeFunc.
func wordCompute(scan func(host.Document, host.Position, bool) host.Position, big bool) ComputeFunc {
	return func(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
		ctx.State.ClearKeptColumn()
		return ctx.Doc.Clamp(scan(ctx.Doc, pos, big))
	}
}

// skipClassForward advances past a run of one class. Returns the first
// position whose character is of a different class, and whether any
// characters remain.
func skipClassForward(doc host.Document, pos host.Position, class charClass, big bool) (host.Position, bool) {
	for {
		r, ok := charAt(doc, pos)
		if !ok {
			return pos, false
		}
		if Classify(r, big) != class {
			return pos, true
		}
		next, ok := nextPos(doc, pos)
		if !ok {
			return pos, false
		}
		pos = next
	}
}

// scanForwardStart finds the start of the next word: past the current
// run, then past any whitespace.
func scanForwardStart(doc host.Document, pos host.Position, big bool) host.Position {
	r, ok := charAt(doc, pos)
	if !ok {
		return pos
	}
	if class := Classify(r, big); class != classSpace {
		pos, ok = skipClassForward(doc, pos, class, big)
		if !ok {
			return pos
		}
	}
	pos, _ = skipClassForward(doc, pos, classSpace, big)
	return pos
}

// scanForwardEnd finds the last character of the current or next word.
// With no word end ahead the position is unchanged.
func scanForwardEnd(doc host.Document, pos host.Position, big bool) host.Position {
	orig := pos
	next, ok := nextPos(doc, pos)
	if !ok {
		return orig
	}
	pos = next

	// Skip whitespace to reach a word.
	for {
		r, ok := charAt(doc, pos)
		if !ok {
			return orig
		}
		if Classify(r, big) != classSpace {
			break
		}
		next, ok := nextPos(doc, pos)
		if !ok {
			return orig
		}
		pos = next
	}

	// Walk to the last character of the run.
	r, _ := charAt(doc, pos)
	class := Classify(r, big)
	for {
		next, ok := nextPos(doc, pos)
		if !ok {
			return pos
		}
		nr, ok := charAt(doc, next)
		if !ok || Classify(nr, big) != class {
			return pos
		}
		pos = next
	}
}

// scanBackwardStart finds the start of the current or previous word.
func scanBackwardStart(doc host.Document, pos host.Position, big bool) host.Position {
	prev, ok := prevPos(doc, pos)
	if !ok {
		return pos
	}
	pos = prev

	// Skip whitespace to reach a word.
	for {
		r, ok := charAt(doc, pos)
		if ok && Classify(r, big) != classSpace {
			break
		}
		prev, ok := prevPos(doc, pos)
		if !ok {
			return pos
		}
		pos = prev
	}

	// Walk to the first character of the run.
	r, _ := charAt(doc, pos)
	class := Classify(r, big)
	for {
		prev, ok := prevPos(doc, pos)
		if !ok {
			return pos
		}
		pr, ok := charAt(doc, prev)
		if !ok || Classify(pr, big) != class {
			return pos
		}
		pos = prev
	}
}
