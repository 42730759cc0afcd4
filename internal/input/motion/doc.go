// Package motion implements cursor movements as pure position
// computations over a read-only document context.
//
// Each Motion owns three things: the key-sequence parser that triggers
// it, the position computation, and optionally a fallback procedure
// that approximates the movement through coarse host-native commands
// when no live document view exists (degraded hosts, huge files).
//
// Cross-motion state is confined to two records on State: the kept
// column that makes j/k column-preserving across shorter lines, and
// the last character search consumed by the ";"/"," repeats.
//
// The registry returned by All is an ordered slice; dispatch order is
// part of the contract and must not be rebuilt from a map.
package motion
