// Package mode tracks the editing mode and the transitions between
// normal, insert, and the two visual variants.
//
// Transitions come from two places: explicit commands (insert entry,
// Escape, visual entry) and host events. Host-reported selection
// changes enter visual only when the cause is the mouse or keyboard;
// programmatic selection changes, including this system's own cursor
// moves and undo/redo transients, never do. Undo, redo, an impending
// save, and a lost view all force normal mode.
//
// Every transition applies the same side effects: the status text and
// cursor shape are pushed to the host display, the raw-type intercept
// is enabled outside insert mode, and registered hooks run (the
// session clears its pending keys there).
package mode
