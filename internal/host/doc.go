// Package host specifies the interface to the editor this system runs
// inside. The host owns the text buffer, selections, rendering, the
// clipboard, and command registration; this package defines only the
// surface the key-interpretation engine consumes.
//
// An absent active view is a recognized state: ActiveView returns false
// and callers fall back to coarse host-native commands via ExecCommand.
package host
