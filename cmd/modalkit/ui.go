package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/host/memhost"
	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/session"
)

// ui owns the screen: it paints the buffer and status line, and turns
// terminal events into host-level key and mouse input.
type ui struct {
	screen tcell.Screen
	h      *memhost.Host
	s      *session.Session

	topLine  int
	dragging bool
	anchor   host.Position
}

func newUI(screen tcell.Screen, h *memhost.Host, s *session.Session) *ui {
	return &ui{screen: screen, h: h, s: s}
}

func (u *ui) run() {
	ctx := context.Background()
	for {
		u.draw()
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
				return
			}
			u.handleKey(ctx, ev)
		case *tcell.EventMouse:
			u.handleMouse(ev)
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventInterrupt:
			return
		case nil:
			return
		}
	}
}

// handleKey routes one terminal key the way an embedding editor would:
// typed characters go through the host's type path (which intercepts
// them in normal mode and inserts them in insert mode), special keys
// go to the session directly.
func (u *ui) handleKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune {
		_ = u.h.TypeKey(ctx, string(ev.Rune()))
		u.s.WaitIdle()
		return
	}

	k, ok := specialKey(ev.Key())
	if !ok {
		return
	}
	// In insert mode only Escape is bound; everything else would just
	// dead-end with a notice.
	if !u.h.InterceptEnabled() && k != key.KeyEscape {
		return
	}
	u.s.HandleKey(ctx, k)
	u.s.WaitIdle()
}

func specialKey(k tcell.Key) (key.Key, bool) {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape, true
	case tcell.KeyEnter:
		return key.KeyEnter, true
	case tcell.KeyTab:
		return key.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, true
	case tcell.KeyDelete:
		return key.KeyDelete, true
	case tcell.KeyUp:
		return key.KeyUp, true
	case tcell.KeyDown:
		return key.KeyDown, true
	case tcell.KeyLeft:
		return key.KeyLeft, true
	case tcell.KeyRight:
		return key.KeyRight, true
	case tcell.KeyHome:
		return key.KeyHome, true
	case tcell.KeyEnd:
		return key.KeyEnd, true
	}
	return key.KeyNone, false
}

// handleMouse turns click and drag into host selections, which is what
// drives the automatic visual-mode entry.
func (u *ui) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := u.screenToText(x, y)

	switch {
	case ev.Buttons()&tcell.Button1 != 0 && !u.dragging:
		u.dragging = true
		u.anchor = pos
		u.h.SelectWithMouse([]host.Selection{host.Cursor(pos)})
	case ev.Buttons()&tcell.Button1 != 0:
		u.h.SelectWithMouse([]host.Selection{{Anchor: u.anchor, Active: pos}})
	default:
		u.dragging = false
	}
}

func (u *ui) screenToText(x, y int) host.Position {
	doc := u.h.MemView().Document()
	line := u.topLine + y
	if line >= doc.LineCount() {
		line = doc.LineCount() - 1
	}
	if line < 0 {
		line = 0
	}
	return host.Position{Line: line, Col: xToCol(doc.LineText(line), x)}
}

func (u *ui) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()
	textRows := height - 1
	if textRows < 1 {
		textRows = 1
	}

	view := u.h.MemView()
	doc := view.Document()
	sel := view.Selections()[0]
	cur := sel.Active

	// Keep the cursor line on screen.
	if cur.Line < u.topLine {
		u.topLine = cur.Line
	}
	if cur.Line >= u.topLine+textRows {
		u.topLine = cur.Line - textRows + 1
	}

	selected := sel.Range()
	base := tcell.StyleDefault
	highlight := base.Reverse(true)

	for row := 0; row < textRows; row++ {
		line := u.topLine + row
		if line >= doc.LineCount() {
			break
		}
		drawLine(u.screen, row, width, doc.LineText(line), line, selected, base, highlight)
	}

	u.drawStatus(width, height-1)

	if sel.IsEmpty() {
		u.screen.ShowCursor(colToX(doc.LineText(cur.Line), cur.Col), cur.Line-u.topLine)
	} else {
		u.screen.HideCursor()
	}
	u.applyCursorShape()
	u.screen.Show()
}

// drawLine paints one buffer line grapheme cluster by grapheme
// cluster, so combining marks stay attached to their base cell.
func drawLine(screen tcell.Screen, row, width int, text string, line int, selected host.Range, base, highlight tcell.Style) {
	x := 0
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		runes := g.Runes()
		style := base
		pos := host.Position{Line: line, Col: col}
		if !selected.IsEmpty() && !pos.Before(selected.Start) && pos.Before(selected.End) {
			style = highlight
		}
		screen.SetContent(x, row, runes[0], runes[1:], style)
		x += clusterWidth(g.Str())
		col += len(runes)
	}
}

func (u *ui) drawStatus(width, row int) {
	mode := u.h.Status()
	if mode == "" {
		mode = "-- " + u.s.Mode().String() + " --"
	}
	pending := u.s.Pending().String()
	notice := ""
	if notices := u.h.Notices(); len(notices) > 0 {
		notice = notices[len(notices)-1]
	}
	status := fmt.Sprintf(" %s  %s  %s", mode, pending, notice)

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		u.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		u.screen.SetContent(x, row, ' ', nil, style)
	}
}

func (u *ui) applyCursorShape() {
	switch u.h.CursorShape() {
	case host.ShapeBar:
		u.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case host.ShapeUnderline:
		u.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	default:
		u.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

// clusterWidth is the display width of one grapheme cluster.
func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}

// colToX converts a rune column into a display column.
func colToX(text string, col int) int {
	x := 0
	for i, r := range []rune(text) {
		if i >= col {
			break
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// xToCol converts a display column into the rune column whose cell
// covers it.
func xToCol(text string, x int) int {
	w := 0
	runes := []rune(text)
	for i, r := range runes {
		w += runewidth.RuneWidth(r)
		if w > x {
			return i
		}
	}
	return len(runes)
}
