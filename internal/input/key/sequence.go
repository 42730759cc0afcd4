package key

import (
	"fmt"
	"strings"
)

// Sequence is an ordered list of pressed keys.
type Sequence []Key

// Tokenize parses key notation into a sequence. Plain characters become
// one key each; angle-bracket groups name special keys: "d<escape>w"
// parses to [d, escape, w]. An unterminated or unknown group is an error.
func Tokenize(notation string) (Sequence, error) {
	var seq Sequence
	runes := []rune(notation)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			seq = append(seq, FromRune(r))
			continue
		}
		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '>' {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, fmt.Errorf("unterminated key group at index %d in %q", i, notation)
		}
		name := string(runes[i+1 : end])
		k := FromName(name)
		if k == KeyNone {
			return nil, fmt.Errorf("unknown key name %q in %q", name, notation)
		}
		seq = append(seq, k)
		i = end
	}
	return seq, nil
}

// MustTokenize is Tokenize for known-good literals; it panics on error.
func MustTokenize(notation string) Sequence {
	seq, err := Tokenize(notation)
	if err != nil {
		panic(err)
	}
	return seq
}

// FromStrings converts a list of raw token strings into a sequence.
// Single characters pass through; longer strings must name special keys.
func FromStrings(tokens []string) (Sequence, error) {
	seq := make(Sequence, 0, len(tokens))
	for i, tok := range tokens {
		k := Key(tok)
		if k.IsRune() {
			seq = append(seq, k)
			continue
		}
		named := FromName(tok)
		if named == KeyNone {
			return nil, fmt.Errorf("token %d: unknown key %q", i, tok)
		}
		seq = append(seq, named)
	}
	return seq, nil
}

// Equal reports whether two sequences hold the same keys in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether s begins with prefix.
func (s Sequence) HasPrefix(prefix Sequence) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)].Equal(prefix)
}

// IsStrictPrefixOf reports whether s is a proper, possibly empty prefix
// of full (shorter than full, matching at every position).
func (s Sequence) IsStrictPrefixOf(full Sequence) bool {
	return len(s) < len(full) && full.HasPrefix(s)
}

// Append returns a new sequence with k added at the end.
func (s Sequence) Append(k Key) Sequence {
	out := make(Sequence, len(s), len(s)+1)
	copy(out, s)
	return append(out, k)
}

// String returns the display form of the sequence.
func (s Sequence) String() string {
	var b strings.Builder
	for _, k := range s {
		b.WriteString(k.String())
	}
	return b.String()
}
