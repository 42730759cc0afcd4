package motion

import (
	"unicode"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/input/keyparse"
)

// computeLeft moves one column left, never crossing to the previous line.
func computeLeft(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	if pos.Col > 0 {
		pos.Col--
	}
	return pos
}

// computeRight moves one column right, stopping at the last character
// index of the line rather than past it.
func computeRight(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	last := host.LineLen(ctx.Doc, pos.Line) - 1
	if last < 0 {
		last = 0
	}
	if pos.Col < last {
		pos.Col++
	}
	return pos
}

// computeDown moves one line down preserving the intended column.
func computeDown(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	return vertical(ctx, pos, 1)
}

// computeUp moves one line up preserving the intended column.
func computeUp(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	return vertical(ctx, pos, -1)
}

// vertical applies the kept-column rule: aim for the remembered column
// if any, else the current one; if the target line is shorter and the
// column clamps down, remember the requested column, otherwise forget it.
func vertical(ctx *Context, pos host.Position, delta int) host.Position {
	want := pos.Col
	if kept, ok := ctx.State.KeptColumn(); ok {
		want = kept
	}

	line := pos.Line + delta
	if line < 0 {
		line = 0
	}
	if max := ctx.Doc.LineCount() - 1; line > max {
		line = max
	}

	landed := ctx.Doc.Clamp(host.Position{Line: line, Col: want})
	if landed.Col < want {
		ctx.State.SetKeptColumn(want)
	} else {
		ctx.State.ClearKeptColumn()
	}
	return landed
}

// computeLineStart moves to column zero.
func computeLineStart(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	pos.Col = 0
	return pos
}

// computeFirstNonBlank moves to the first non-whitespace character,
// or column zero on a blank line.
func computeFirstNonBlank(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	line := ctx.Doc.LineText(pos.Line)
	col := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		col++
	}
	if col >= len([]rune(line)) {
		col = 0
	}
	pos.Col = col
	return pos
}

// computeLineEnd moves one past the last character, so an operator
// spanning to it consumes the rest of the line.
func computeLineEnd(ctx *Context, pos host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	pos.Col = host.LineLen(ctx.Doc, pos.Line)
	return pos
}

// computeDocumentStart moves to the origin.
func computeDocumentStart(ctx *Context, _ host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	return host.Position{}
}

// computeDocumentEnd moves to the start of the last line.
func computeDocumentEnd(ctx *Context, _ host.Position, _ keyparse.Result) host.Position {
	ctx.State.ClearKeptColumn()
	return host.Position{Line: ctx.Doc.LineCount() - 1, Col: 0}
}
