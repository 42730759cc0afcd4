package register

import (
	"context"
	"strings"
	"sync"

	"github.com/dshills/modalkit/internal/host"
)

// Entry is one register record: the stored text plus whether it is
// line-oriented. Linewise entries never contain a newline for the line
// boundaries themselves; paste re-adds the newline when inserting.
type Entry struct {
	Text     string
	Linewise bool
}

// Store holds yanked and deleted text, most recent last. It mirrors
// every write to the system clipboard and remembers the last clipboard
// text it observed, so text copied in another application is recognized
// as an external entry rather than re-processed as this system's own.
type Store struct {
	mu            sync.Mutex
	entries       []Entry
	lastClipboard string
	clip          host.Clipboard
}

// NewStore creates a register store backed by the host clipboard.
// A nil clipboard is allowed; the store then works purely in memory.
func NewStore(clip host.Clipboard) *Store {
	return &Store{clip: clip}
}

// Put records a new entry and mirrors its text to the clipboard.
func (s *Store) Put(ctx context.Context, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	if s.clip != nil {
		if err := s.clip.Write(ctx, e.Text); err == nil {
			s.lastClipboard = e.Text
		}
	}
}

// Latest returns the entry a paste should use. When the system
// clipboard holds text this store has not seen, that text wins as a new
// characterwise entry; otherwise the most recent stored entry wins,
// keeping its linewise tag.
func (s *Store) Latest(ctx context.Context) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clip != nil {
		text, err := s.clip.Read(ctx)
		if err == nil && text != s.lastClipboard {
			s.lastClipboard = text
			e := Entry{Text: text}
			s.entries = append(s.entries, e)
			return e, true
		}
	}

	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// NormalizeLinewise strips the boundary newlines a linewise range
// extraction carries: exactly one leading newline if present, and
// independently exactly one trailing newline if present. Interior
// newlines (multi-line linewise extents) are preserved.
func NormalizeLinewise(text string) string {
	text = strings.TrimPrefix(text, "\n")
	return strings.TrimSuffix(text, "\n")
}
