package host

import (
	"strings"
	"unicode/utf8"
)

// LineLen returns a line's length in runes.
func LineLen(doc Document, line int) int {
	return utf8.RuneCountInString(doc.LineText(line))
}

// EndPosition returns the position one past the last rune of the last line.
func EndPosition(doc Document) Position {
	last := doc.LineCount() - 1
	return Position{Line: last, Col: LineLen(doc, last)}
}

// RangeText extracts the text covered by rng, with "\n" between lines.
// The range is ordered and clamped first.
func RangeText(doc Document, rng Range) string {
	rng = rng.Ordered()
	start := doc.Clamp(rng.Start)
	end := doc.Clamp(rng.End)

	if start.Line == end.Line {
		return runeSlice(doc.LineText(start.Line), start.Col, end.Col)
	}

	var b strings.Builder
	first := doc.LineText(start.Line)
	b.WriteString(runeSlice(first, start.Col, utf8.RuneCountInString(first)))
	for line := start.Line + 1; line < end.Line; line++ {
		b.WriteByte('\n')
		b.WriteString(doc.LineText(line))
	}
	b.WriteByte('\n')
	b.WriteString(runeSlice(doc.LineText(end.Line), 0, end.Col))
	return b.String()
}

// runeSlice returns s[from:to] counted in runes, clamped to s.
func runeSlice(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to < from {
		to = from
	}
	runes := []rune(s)
	if from > len(runes) {
		from = len(runes)
	}
	if to > len(runes) {
		to = len(runes)
	}
	return string(runes[from:to])
}
