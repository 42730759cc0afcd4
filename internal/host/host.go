package host

import "context"

// Position is a location in a document: 0-indexed line and rune column.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p precedes q in document order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Compare returns -1, 0, or 1 ordering p against q.
func (p Position) Compare(q Position) int {
	switch {
	case p.Before(q):
		return -1
	case q.Before(p):
		return 1
	default:
		return 0
	}
}

// Range is a half-open span [Start, End) in document order.
type Range struct {
	Start Position
	End   Position
}

// IsEmpty reports whether the range spans no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Ordered returns the range with Start and End swapped if reversed.
func (r Range) Ordered() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Selection is a cursor with an anchor: Active is where the cursor sits,
// Anchor is the fixed end. An empty selection has Anchor == Active.
type Selection struct {
	Anchor Position
	Active Position
}

// Cursor returns an empty selection at pos.
func Cursor(pos Position) Selection {
	return Selection{Anchor: pos, Active: pos}
}

// IsEmpty reports whether the selection spans no text.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Range returns the selection as an ordered range.
func (s Selection) Range() Range {
	return Range{Start: s.Anchor, End: s.Active}.Ordered()
}

// Document provides read access to the text the host owns.
type Document interface {
	// LineCount returns the number of lines; at least 1 for any open document.
	LineCount() int

	// LineText returns a line's text without its trailing newline.
	// Out-of-range lines return "".
	LineText(line int) string

	// Clamp returns the nearest valid position to pos. Columns clamp to
	// the line length (one past the last rune), lines to the line count.
	Clamp(pos Position) Position
}

// View is the host's active editing surface for one document.
type View interface {
	// Document returns the text being edited.
	Document() Document

	// Selections returns the current selections, primary first.
	Selections() []Selection

	// SetSelections replaces all selections.
	SetSelections(sels []Selection)

	// ApplyEdit replaces the text in rng with text. Deleting passes "",
	// inserting passes an empty range. The host owns the mutation.
	ApplyEdit(ctx context.Context, rng Range, text string) error
}

// CursorShape is the cursor appearance requested per mode.
type CursorShape uint8

const (
	// ShapeBlock is a full-cell block cursor.
	ShapeBlock CursorShape = iota

	// ShapeBar is a thin vertical bar cursor.
	ShapeBar

	// ShapeUnderline is an underline cursor.
	ShapeUnderline
)

// String returns a human-readable shape name.
func (c CursorShape) String() string {
	switch c {
	case ShapeBlock:
		return "block"
	case ShapeBar:
		return "bar"
	case ShapeUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Display is the host's presentation surface for this system's state.
type Display interface {
	// SetStatus sets the status-line text (e.g. "-- INSERT --").
	SetStatus(text string)

	// SetCursorShape sets the cursor appearance.
	SetCursorShape(shape CursorShape)

	// Notify surfaces a non-blocking notice to the user.
	Notify(message string)
}

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// CommandFunc handles a host command invocation. Args carries whatever
// payload the host delivers, commonly a decoded JSON value.
type CommandFunc func(ctx context.Context, args any) error

// Commands is the host's command-registration facility.
type Commands interface {
	// Register installs a command under a name. Registering the same
	// name twice is an error.
	Register(name string, fn CommandFunc) error

	// SetTypeIntercept toggles the raw "any character typed" intercept.
	// While enabled the host routes typing to the registered "type"
	// command instead of inserting it natively.
	SetTypeIntercept(enabled bool)
}

// Host is the single external collaborator: the editor this system runs
// inside. An absent active view is a first-class state, not an error.
type Host interface {
	// ActiveView returns the active view, or false when none exists
	// (no open document, or a degraded surface such as a huge file).
	ActiveView() (View, bool)

	// ExecCommand runs a coarse host-native command, used by motion
	// fallbacks when no live view exists.
	ExecCommand(ctx context.Context, name string, args ...any) error

	Clipboard() Clipboard
	Display() Display
	Commands() Commands
	Events() Events
}
