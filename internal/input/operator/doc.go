// Package operator composes delete, change, yank, and the surround
// family with a target: a motion, a text object, or the doubled
// operator key for the whole line.
//
// Parsing and execution are separate. ParseTarget classifies a pending
// key sequence into an Args record without touching the document;
// Engine.Execute resolves that record against the live view, applies
// the edit through the host, and records the register entry.
//
// The linewise range rules live here: a deleted line takes exactly one
// bounding newline with it (the following one normally, the preceding
// one for a final line without a trailing newline, none for a
// single-line document), and the register stores the line content with
// the boundary newlines stripped.
package operator
