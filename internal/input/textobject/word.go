package textobject

import (
	"unicode"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/motion"
)

// wordObject resolves iw/aw (and their WORD variants). The object is
// confined to the cursor line; the cursor sitting on the end-of-line
// slot resolves to nothing.
func wordObject(around, big bool) ResolveFunc {
	return func(doc host.Document, pos host.Position) (host.Range, bool) {
		line := []rune(doc.LineText(pos.Line))
		col := pos.Col
		if col >= len(line) {
			return host.Range{}, false
		}

		// Extend over the run of the cursor character's class. A cursor
		// on whitespace selects the whitespace run itself.
		class := motion.Classify(line[col], big)
		start, end := col, col+1
		for start > 0 && motion.Classify(line[start-1], big) == class {
			start--
		}
		for end < len(line) && motion.Classify(line[end], big) == class {
			end++
		}

		if around {
			start, end = extendAround(line, start, end, big)
		}
		return host.Range{
			Start: host.Position{Line: pos.Line, Col: start},
			End:   host.Position{Line: pos.Line, Col: end},
		}, true
	}
}

// extendAround widens a word run with its following whitespace, or the
// leading whitespace when none follows. A run that is itself whitespace
// instead swallows the following word.
func extendAround(line []rune, start, end int, big bool) (int, int) {
	if unicode.IsSpace(line[start]) {
		if end < len(line) {
			class := motion.Classify(line[end], big)
			for end < len(line) && motion.Classify(line[end], big) == class {
				end++
			}
		}
		return start, end
	}

	if end < len(line) && unicode.IsSpace(line[end]) {
		for end < len(line) && unicode.IsSpace(line[end]) {
			end++
		}
		return start, end
	}
	for start > 0 && unicode.IsSpace(line[start-1]) {
		start--
	}
	return start, end
}
