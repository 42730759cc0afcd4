package host

// SelectionCause tags what produced a selection change.
type SelectionCause uint8

const (
	// CauseUnknown is an untagged selection change.
	CauseUnknown SelectionCause = iota

	// CauseMouse is a pointer-driven selection change.
	CauseMouse

	// CauseKeyboard is a keyboard-driven selection change.
	CauseKeyboard

	// CauseProgrammatic is a selection change made by code, including
	// this system's own SetSelections calls and undo/redo transients.
	CauseProgrammatic
)

// String returns a human-readable cause name.
func (c SelectionCause) String() string {
	switch c {
	case CauseMouse:
		return "mouse"
	case CauseKeyboard:
		return "keyboard"
	case CauseProgrammatic:
		return "programmatic"
	default:
		return "unknown"
	}
}

// DocumentCause tags what produced a document change.
type DocumentCause uint8

const (
	// DocEdit is an ordinary edit.
	DocEdit DocumentCause = iota

	// DocUndo is an undo-driven change.
	DocUndo

	// DocRedo is a redo-driven change.
	DocRedo
)

// IsUndoRedo reports whether the change came from undo or redo.
func (c DocumentCause) IsUndoRedo() bool {
	return c == DocUndo || c == DocRedo
}

// String returns a human-readable cause name.
func (c DocumentCause) String() string {
	switch c {
	case DocEdit:
		return "edit"
	case DocUndo:
		return "undo"
	case DocRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// SelectionChange describes a host selection-changed event.
type SelectionChange struct {
	Cause      SelectionCause
	Selections []Selection
}

// DocumentChange describes a host document-changed event.
type DocumentChange struct {
	Cause DocumentCause
}

// Unsubscribe removes a previously registered event handler.
type Unsubscribe func()

// Events is the host's event-subscription surface.
type Events interface {
	OnSelectionChanged(fn func(SelectionChange)) Unsubscribe
	OnDocumentChanged(fn func(DocumentChange)) Unsubscribe
	OnActiveViewChanged(fn func(hasView bool)) Unsubscribe
	OnConfigChanged(fn func()) Unsubscribe
	OnWillSave(fn func()) Unsubscribe
}
