package motion

// Distance selects where a character search lands relative to the
// target character.
type Distance uint8

const (
	// DistanceNearer lands on the target character itself (f/F).
	DistanceNearer Distance = iota

	// DistanceFurther stops one position short of the target (t/T).
	DistanceFurther
)

// String returns a human-readable distance name.
func (d Distance) String() string {
	switch d {
	case DistanceNearer:
		return "nearer"
	case DistanceFurther:
		return "further"
	default:
		return "unknown"
	}
}

// Direction selects which side of the cursor a character search scans.
type Direction uint8

const (
	// DirAfter searches after the cursor (f/t).
	DirAfter Direction = iota

	// DirBefore searches before the cursor (F/T).
	DirBefore
)

// Flipped returns the opposite direction.
func (d Direction) Flipped() Direction {
	if d == DirAfter {
		return DirBefore
	}
	return DirAfter
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirAfter:
		return "after"
	case DirBefore:
		return "before"
	default:
		return "unknown"
	}
}

// FindChar is the most recent character-search invocation. Every
// f/F/t/T overwrites it; the repeat motions read it without mutating.
type FindChar struct {
	Char      rune
	Distance  Distance
	Direction Direction
}

// State is the cross-motion mutable state. It lives in the session's
// one state record and is passed by reference into every computation.
type State struct {
	// keptColumn remembers the intended column across vertical motions
	// that cross shorter lines.
	keptColumn    int
	keptColumnSet bool

	// LastFind is the most recent character search, nil before any.
	LastFind *FindChar
}

// NewState creates an empty motion state.
func NewState() *State {
	return &State{}
}

// KeptColumn returns the remembered column, if set.
func (s *State) KeptColumn() (int, bool) {
	return s.keptColumn, s.keptColumnSet
}

// SetKeptColumn remembers the intended column.
func (s *State) SetKeptColumn(col int) {
	s.keptColumn = col
	s.keptColumnSet = true
}

// ClearKeptColumn forgets the remembered column.
func (s *State) ClearKeptColumn() {
	s.keptColumn = 0
	s.keptColumnSet = false
}

// Reset clears all motion state.
func (s *State) Reset() {
	s.ClearKeptColumn()
	s.LastFind = nil
}
