// Package keyparse provides the two parser kinds used to classify
// incrementally typed key sequences.
//
// A Prefix parser matches one fixed sequence: exact equality is a match,
// a strict non-empty prefix needs more input, anything else is no match.
//
// A Pattern parser matches a fixed-length token list in which some
// positions are free-form single-character captures (f{char},
// cs{from}{to}); proper prefixes of the token list need more input.
//
// Both kinds are pure and side-effect free, so the same parser instances
// serve standalone motions and operator-scoped targets alike.
//
//	p := keyparse.NewPatternNotation("f", "char")
//	p.Feed(key.MustTokenize("f"))   // needsMoreKey
//	p.Feed(key.MustTokenize("fx"))  // match, capture char=x
//	p.Feed(key.MustTokenize("gx"))  // noMatch
package keyparse
