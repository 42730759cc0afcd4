// Package key defines the key-token model shared by the parsers and the
// dispatcher.
//
// A Key is the unit the host delivers per keystroke: a typed character or
// a named special key. A Sequence is the ordered list of keys pressed
// since the last resolved action. The notation accepted by Tokenize uses
// plain characters plus angle-bracket groups for special keys:
//
//	"diw"        -> [d, i, w]
//	"<escape>"   -> [escape]
//	"f<space>"   -> [f, " "]
package key
