package memhost

import (
	"strings"

	"github.com/dshills/modalkit/internal/host"
)

// Document is an in-memory text buffer. It always holds at least one
// line; an empty document is one empty line.
type Document struct {
	lines []string
}

// NewDocument creates a document from text. Lines split on "\n"; a
// trailing newline therefore produces a final empty line, matching how
// hosts surface such files.
func NewDocument(text string) *Document {
	return &Document{lines: strings.Split(text, "\n")}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineText returns a line's text without its newline.
func (d *Document) LineText(line int) string {
	if line < 0 || line >= len(d.lines) {
		return ""
	}
	return d.lines[line]
}

// Clamp returns the nearest valid position to pos.
func (d *Document) Clamp(pos host.Position) host.Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(d.lines) {
		pos.Line = len(d.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := host.LineLen(d, pos.Line); pos.Col > max {
		pos.Col = max
	}
	return pos
}

// offset converts a clamped position to a rune offset into Text().
func (d *Document) offset(pos host.Position) int {
	pos = d.Clamp(pos)
	off := 0
	for line := 0; line < pos.Line; line++ {
		off += len([]rune(d.lines[line])) + 1 // +1 for the newline
	}
	return off + pos.Col
}

// replace splices text over the ordered range rng.
func (d *Document) replace(rng host.Range, text string) {
	rng = rng.Ordered()
	runes := []rune(d.Text())
	start := d.offset(rng.Start)
	end := d.offset(rng.End)

	var b strings.Builder
	b.WriteString(string(runes[:start]))
	b.WriteString(text)
	b.WriteString(string(runes[end:]))
	d.lines = strings.Split(b.String(), "\n")
}

// snapshot returns a copy of the line slice for undo support.
func (d *Document) snapshot() []string {
	lines := make([]string, len(d.lines))
	copy(lines, d.lines)
	return lines
}

// restore replaces the content with a snapshot.
func (d *Document) restore(lines []string) {
	d.lines = lines
}
