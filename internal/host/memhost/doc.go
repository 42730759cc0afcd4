// Package memhost is a complete in-memory implementation of the host
// interfaces. The demo binary runs the engine against it, and the test
// suites use it to drive real edits: documents are line slices, edits
// splice text, events fan out to subscribers keyed by generated tokens,
// and every outward-facing call (status, notices, clipboard, fallback
// commands) is recorded for inspection.
package memhost
