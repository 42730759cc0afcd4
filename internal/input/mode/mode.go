package mode

// Mode is the current interpretation context for keystrokes.
type Mode uint8

const (
	// Normal interprets keys as motions, operators, and commands.
	Normal Mode = iota

	// Insert passes typing through to the host's native insertion.
	Insert

	// Visual extends a character-oriented selection.
	Visual

	// VisualLine extends a selection snapped to whole lines.
	VisualLine
)

// String returns the mode name used in status text and logging.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case VisualLine:
		return "visualLine"
	default:
		return "unknown"
	}
}

// IsVisual reports whether m is either visual variant.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}
