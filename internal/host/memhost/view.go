package memhost

import (
	"context"

	"github.com/dshills/modalkit/internal/host"
)

// View is the in-memory editing surface over one Document.
type View struct {
	h    *Host
	doc  *Document
	sels []host.Selection

	// undo is a stack of (lines, selections) snapshots, one per edit.
	undo []undoFrame
	redo []undoFrame
}

type undoFrame struct {
	lines []string
	sels  []host.Selection
}

// NewView creates a view over doc with the cursor at the origin.
func NewView(doc *Document) *View {
	return &View{
		doc:  doc,
		sels: []host.Selection{host.Cursor(host.Position{})},
	}
}

// Document returns the text being edited.
func (v *View) Document() host.Document {
	return v.doc
}

// Selections returns a copy of the current selections.
func (v *View) Selections() []host.Selection {
	out := make([]host.Selection, len(v.sels))
	copy(out, v.sels)
	return out
}

// SetSelections replaces all selections, clamping each into the document,
// and reports the change as programmatic.
func (v *View) SetSelections(sels []host.Selection) {
	if len(sels) == 0 {
		sels = []host.Selection{host.Cursor(host.Position{})}
	}
	v.sels = make([]host.Selection, len(sels))
	for i, sel := range sels {
		v.sels[i] = host.Selection{
			Anchor: v.doc.Clamp(sel.Anchor),
			Active: v.doc.Clamp(sel.Active),
		}
	}
	if v.h != nil {
		v.h.emitSelectionChanged(host.CauseProgrammatic)
	}
}

// ApplyEdit replaces the text in rng with text, records an undo frame,
// and collapses selections onto the edit start.
func (v *View) ApplyEdit(_ context.Context, rng host.Range, text string) error {
	v.undo = append(v.undo, undoFrame{lines: v.doc.snapshot(), sels: v.Selections()})
	v.redo = nil

	v.doc.replace(rng, text)

	start := v.doc.Clamp(rng.Ordered().Start)
	v.sels = []host.Selection{host.Cursor(start)}

	if v.h != nil {
		v.h.emitDocumentChanged(host.DocEdit)
		v.h.emitSelectionChanged(host.CauseProgrammatic)
	}
	return nil
}

// Undo restores the most recent undo frame, reporting the change with
// an undo cause the way hosts tag history operations.
func (v *View) Undo() bool {
	if len(v.undo) == 0 {
		return false
	}
	frame := v.undo[len(v.undo)-1]
	v.undo = v.undo[:len(v.undo)-1]
	v.redo = append(v.redo, undoFrame{lines: v.doc.snapshot(), sels: v.Selections()})

	v.doc.restore(frame.lines)
	v.sels = frame.sels

	if v.h != nil {
		v.h.emitDocumentChanged(host.DocUndo)
		v.h.emitSelectionChanged(host.CauseProgrammatic)
	}
	return true
}

// Redo re-applies the most recently undone edit.
func (v *View) Redo() bool {
	if len(v.redo) == 0 {
		return false
	}
	frame := v.redo[len(v.redo)-1]
	v.redo = v.redo[:len(v.redo)-1]
	v.undo = append(v.undo, undoFrame{lines: v.doc.snapshot(), sels: v.Selections()})

	v.doc.restore(frame.lines)
	v.sels = frame.sels

	if v.h != nil {
		v.h.emitDocumentChanged(host.DocRedo)
		v.h.emitSelectionChanged(host.CauseProgrammatic)
	}
	return true
}
