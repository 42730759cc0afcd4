package key

import (
	"strings"
	"unicode/utf8"
)

// Key is a single key token as delivered by the host: a printable
// character ("a", "$", " ") or a named special key ("escape", "enter").
type Key string

// Named special keys. The host reports anything it does not deliver as a
// typed character under one of these names.
const (
	KeyNone      Key = ""
	KeyEscape    Key = "escape"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyDelete    Key = "delete"
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyHome      Key = "home"
	KeyEnd       Key = "end"
	KeySpace     Key = " "
)

// specialNames maps lowercase special-key names to their canonical Key.
var specialNames = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"cr":        KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"space":     KeySpace,
}

// FromRune returns the key token for a typed character.
func FromRune(r rune) Key {
	return Key(string(r))
}

// FromName returns the canonical key for a special-key name
// (case-insensitive). Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	if k, ok := specialNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}
	return KeyNone
}

// IsRune reports whether the key is a single typed character.
func (k Key) IsRune() bool {
	return utf8.RuneCountInString(string(k)) == 1
}

// Rune returns the character for a single-character key.
// Returns false for special keys and KeyNone.
func (k Key) Rune() (rune, bool) {
	if !k.IsRune() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	return r, true
}

// IsSpecial reports whether the key is a named special key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && !k.IsRune()
}

// String returns a display form: the character itself for rune keys,
// "<name>" for special keys.
func (k Key) String() string {
	if k == KeyNone {
		return "<none>"
	}
	if k == KeySpace {
		return "<space>"
	}
	if k.IsSpecial() {
		return "<" + string(k) + ">"
	}
	return string(k)
}
