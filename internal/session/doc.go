// Package session owns one editing session's state and public surface.
//
// A Session holds the single mutable state record: the mode manager,
// the keystroke dispatcher with its pending buffer, the register
// store, and the cross-motion state. Everything reaches that record by
// reference through the Session; there are no package globals.
//
// Actions are assembled into one priority-ordered list at construction:
// cancel, mode switches, operators, paste, then motions. Each action
// re-reads the live mode and cursor at invocation, so a host event
// racing an in-flight keystroke cleanly precedes or follows it.
//
// The public entry points are ExecuteSequence for named key sequences,
// InjectKeys for synthetic replay, Mode for the host's key-enablement
// conditions, and the registered host commands wrapping the three.
package session
