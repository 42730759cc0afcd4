package textobject

import (
	"github.com/dshills/modalkit/internal/host"
)

// ResolveFunc computes the range an object covers around a position.
// A false return means the object does not apply there (no enclosing
// pair, cursor past the end of the line) and the caller should no-op.
type ResolveFunc func(doc host.Document, pos host.Position) (host.Range, bool)

// TextObject is one named inner/around target. Objects are stateless;
// the id is the two-key notation that selects them ("iw", "a(").
type TextObject struct {
	id      string
	resolve ResolveFunc
}

// ID returns the object's two-key identifier.
func (o *TextObject) ID() string {
	return o.id
}

// Resolve computes the object's range around pos.
func (o *TextObject) Resolve(doc host.Document, pos host.Position) (host.Range, bool) {
	return o.resolve(doc, pos)
}

// pairSpec describes one bracket kind and the target keys that select it.
type pairSpec struct {
	open, close rune
	targets     []rune
}

var bracketPairs = []pairSpec{
	{'(', ')', []rune{'(', ')', 'b'}},
	{'[', ']', []rune{'[', ']'}},
	{'{', '}', []rune{'{', '}', 'B'}},
	{'<', '>', []rune{'<', '>'}},
}

var quoteChars = []rune{'"', '\'', '`'}

// All returns the object registry in a stable order: words first, then
// brackets, then quotes. Every alias key gets its own entry so lookup
// by id is uniform.
func All() []*TextObject {
	objs := []*TextObject{
		{"iw", wordObject(false, false)},
		{"aw", wordObject(true, false)},
		{"iW", wordObject(false, true)},
		{"aW", wordObject(true, true)},
	}
	for _, p := range bracketPairs {
		for _, t := range p.targets {
			objs = append(objs,
				&TextObject{"i" + string(t), pairObject(false, p.open, p.close)},
				&TextObject{"a" + string(t), pairObject(true, p.open, p.close)},
			)
		}
	}
	for _, q := range quoteChars {
		objs = append(objs,
			&TextObject{"i" + string(q), quoteObject(false, q)},
			&TextObject{"a" + string(q), quoteObject(true, q)},
		)
	}
	return objs
}

// PairFor maps a delimiter target key to the pair it denotes: bracket
// aliases resolve to their open/close kind, quote characters pair with
// themselves. Used by the surround operators for the inserted side.
func PairFor(target rune) (open, close rune, ok bool) {
	for _, p := range bracketPairs {
		for _, t := range p.targets {
			if t == target {
				return p.open, p.close, true
			}
		}
	}
	for _, q := range quoteChars {
		if q == target {
			return q, q, true
		}
	}
	return 0, 0, false
}

// ByID returns an object from the registry, or nil.
func ByID(id string) *TextObject {
	for _, o := range All() {
		if o.id == id {
			return o
		}
	}
	return nil
}
