package keyparse

import (
	"github.com/dshills/modalkit/internal/input/key"
)

// Status indicates the result of matching pressed keys against a parser.
type Status uint8

const (
	// StatusNoMatch indicates the pressed keys can never complete this parser.
	StatusNoMatch Status = iota

	// StatusNeedsMoreKey indicates the pressed keys are a valid incomplete prefix.
	StatusNeedsMoreKey

	// StatusMatch indicates the pressed keys exactly complete this parser.
	StatusMatch
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNoMatch:
		return "noMatch"
	case StatusNeedsMoreKey:
		return "needsMoreKey"
	case StatusMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Result carries the match status plus any captured keys for pattern
// parsers. Captures is nil unless Status is StatusMatch and the parser
// declares capture tokens.
type Result struct {
	Status   Status
	Captures map[string]key.Key
}

// Capture returns the captured key for a name, or KeyNone.
func (r Result) Capture(name string) key.Key {
	return r.Captures[name]
}

// Parser classifies a growing list of pressed keys. Implementations are
// pure: deterministic functions of the key list alone, no external state.
type Parser interface {
	Feed(pressed key.Sequence) Result
}

// Prefix matches one fixed key sequence exactly.
type Prefix struct {
	seq key.Sequence
}

// NewPrefix creates a parser for a fixed sequence.
func NewPrefix(seq key.Sequence) *Prefix {
	return &Prefix{seq: seq}
}

// NewPrefixNotation creates a prefix parser from key notation ("diw").
// It panics on malformed notation; callers pass literals.
func NewPrefixNotation(notation string) *Prefix {
	return NewPrefix(key.MustTokenize(notation))
}

// Sequence returns the configured key sequence.
func (p *Prefix) Sequence() key.Sequence {
	return p.seq
}

// Feed classifies pressed keys against the configured sequence:
// exact equality is a match, a strict non-empty prefix needs more input,
// anything else is no match.
func (p *Prefix) Feed(pressed key.Sequence) Result {
	if pressed.Equal(p.seq) {
		return Result{Status: StatusMatch}
	}
	if len(pressed) > 0 && pressed.IsStrictPrefixOf(p.seq) {
		return Result{Status: StatusNeedsMoreKey}
	}
	return Result{Status: StatusNoMatch}
}

// Token is one element of a pattern: a literal key or a named
// single-key capture.
type Token struct {
	lit     key.Key
	capture string
}

// Lit returns a literal token for a single key.
func Lit(k key.Key) Token {
	return Token{lit: k}
}

// Capture returns a wildcard token that matches any single typed
// character and records it under name.
func Capture(name string) Token {
	return Token{capture: name}
}

// IsCapture reports whether the token is a capture.
func (t Token) IsCapture() bool {
	return t.capture != ""
}

// Pattern matches a fixed-length token list where some positions are
// free-form single-character captures, e.g. f{char} or cs{from}{to}.
// The partial form (every proper prefix of the token list) reports
// needs-more-key.
type Pattern struct {
	tokens []Token
}

// NewPattern creates a pattern parser from tokens.
func NewPattern(tokens ...Token) *Pattern {
	return &Pattern{tokens: tokens}
}

// NewPatternNotation builds a pattern from key notation for the literal
// part followed by capture names: NewPatternNotation("f", "char") is
// the f{char} pattern. It panics on malformed notation.
func NewPatternNotation(notation string, captures ...string) *Pattern {
	var tokens []Token
	for _, k := range key.MustTokenize(notation) {
		tokens = append(tokens, Lit(k))
	}
	for _, name := range captures {
		tokens = append(tokens, Capture(name))
	}
	return NewPattern(tokens...)
}

// Feed classifies pressed keys against the token list.
func (p *Pattern) Feed(pressed key.Sequence) Result {
	if len(pressed) == 0 || len(pressed) > len(p.tokens) {
		return Result{Status: StatusNoMatch}
	}

	var captures map[string]key.Key
	for i, k := range pressed {
		tok := p.tokens[i]
		if tok.IsCapture() {
			if !k.IsRune() {
				return Result{Status: StatusNoMatch}
			}
			if captures == nil {
				captures = make(map[string]key.Key, 2)
			}
			captures[tok.capture] = k
			continue
		}
		if k != tok.lit {
			return Result{Status: StatusNoMatch}
		}
	}

	if len(pressed) < len(p.tokens) {
		return Result{Status: StatusNeedsMoreKey}
	}
	return Result{Status: StatusMatch, Captures: captures}
}
