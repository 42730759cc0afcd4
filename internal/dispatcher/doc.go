// Package dispatcher serializes keystrokes and resolves them against
// an ordered action list.
//
// Keystrokes arrive asynchronously and must be matched in strict
// arrival order even though each action's execution may itself await
// host operations. The design is one FIFO queue plus a single-owner
// lock: every received keystroke schedules exactly one processing
// attempt, every attempt pops exactly one keystroke and runs the full
// match/execute cycle under the lock. One attempt per keystroke and a
// release before each next grant means every keystroke is processed
// exactly once, with no starvation and no reordering.
//
// Per popped keystroke: append to the pending buffer, try each action
// in priority order with the full pending sequence, stop at the first
// executed outcome. If nothing executes but something needs more
// input, the buffer stays for the next keystroke. Otherwise the
// sequence is a dead end: the buffer clears and a notice is surfaced.
//
// There is no timeout on an incomplete sequence; it waits indefinitely
// for its next key. Escape does not abort an action already running,
// it only clears unconsumed pending keys.
package dispatcher
