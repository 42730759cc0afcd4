// Package textobject resolves inner/around targets to document ranges.
//
// An object is identified by its two-key notation ("iw", "a(", `i"`).
// Word objects select the run of characters under the cursor on its
// line; around variants also swallow adjacent whitespace. Bracket
// objects search outward from the cursor, across lines and with proper
// nesting, for the nearest enclosing pair; quote objects pair up
// occurrences on the cursor line. Inner and around variants differ
// only in whether the delimiters are included.
//
// Resolution never mutates anything. An object that does not apply at
// the cursor (no enclosing pair) reports false and the enclosing
// operator no-ops while still consuming its keys.
package textobject
