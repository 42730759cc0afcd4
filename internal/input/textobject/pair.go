package textobject

import (
	"github.com/dshills/modalkit/internal/host"
)

// pairObject resolves the nearest enclosing open/close bracket pair,
// searching outward from the cursor across lines with proper nesting.
// The cursor sitting on either delimiter counts as inside the pair.
func pairObject(around bool, open, close rune) ResolveFunc {
	return func(doc host.Document, pos host.Position) (host.Range, bool) {
		openPos, ok := searchOpen(doc, pos, open, close)
		if !ok {
			return host.Range{}, false
		}
		closePos, ok := searchClose(doc, pos, open, close)
		if !ok {
			return host.Range{}, false
		}
		if around {
			return host.Range{Start: openPos, End: after(doc, closePos)}, true
		}
		return host.Range{Start: after(doc, openPos), End: closePos}, true
	}
}

// searchOpen walks backward from pos to the unmatched open delimiter.
// A close delimiter at pos itself is not counted, so a cursor sitting
// on the closing bracket still resolves its own pair.
func searchOpen(doc host.Document, pos host.Position, open, close rune) (host.Position, bool) {
	depth := 0
	p := pos
	for {
		switch r, _ := runeAt(doc, p); r {
		case open:
			if depth == 0 {
				return p, true
			}
			depth--
		case close:
			if p != pos {
				depth++
			}
		}
		prev, ok := retreat(doc, p)
		if !ok {
			return host.Position{}, false
		}
		p = prev
	}
}

// searchClose walks forward from pos to the unmatched close delimiter,
// mirroring searchOpen.
func searchClose(doc host.Document, pos host.Position, open, close rune) (host.Position, bool) {
	depth := 0
	p := pos
	for {
		switch r, _ := runeAt(doc, p); r {
		case close:
			if depth == 0 {
				return p, true
			}
			depth--
		case open:
			if p != pos {
				depth++
			}
		}
		next, ok := advance(doc, p)
		if !ok {
			return host.Position{}, false
		}
		p = next
	}
}

// quoteObject resolves a quoted span on the cursor line. Quotes have no
// nesting; occurrences pair up left to right and the cursor must sit
// within a pair (delimiters included).
func quoteObject(around bool, quote rune) ResolveFunc {
	return func(doc host.Document, pos host.Position) (host.Range, bool) {
		line := []rune(doc.LineText(pos.Line))
		openCol := -1
		for col, r := range line {
			if r != quote {
				continue
			}
			if openCol < 0 {
				openCol = col
				continue
			}
			if pos.Col >= openCol && pos.Col <= col {
				if around {
					return host.Range{
						Start: host.Position{Line: pos.Line, Col: openCol},
						End:   host.Position{Line: pos.Line, Col: col + 1},
					}, true
				}
				return host.Range{
					Start: host.Position{Line: pos.Line, Col: openCol + 1},
					End:   host.Position{Line: pos.Line, Col: col},
				}, true
			}
			openCol = -1
		}
		return host.Range{}, false
	}
}

// runeAt reads the character slot at pos; each line's end slot reads as
// a newline, which never matches a delimiter.
func runeAt(doc host.Document, pos host.Position) (rune, bool) {
	line := []rune(doc.LineText(pos.Line))
	if pos.Col < len(line) {
		return line[pos.Col], true
	}
	if pos.Line < doc.LineCount()-1 {
		return '\n', true
	}
	return 0, false
}

// advance moves one slot forward, wrapping across lines.
func advance(doc host.Document, pos host.Position) (host.Position, bool) {
	if pos.Col < host.LineLen(doc, pos.Line) {
		pos.Col++
		return pos, true
	}
	if pos.Line < doc.LineCount()-1 {
		return host.Position{Line: pos.Line + 1, Col: 0}, true
	}
	return pos, false
}

// retreat moves one slot backward, wrapping across lines.
func retreat(doc host.Document, pos host.Position) (host.Position, bool) {
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

// after returns the slot just past pos.
func after(doc host.Document, pos host.Position) host.Position {
	next, ok := advance(doc, pos)
	if !ok {
		return pos
	}
	return next
}
