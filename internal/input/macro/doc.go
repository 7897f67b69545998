// Package macro provides the action replay log of the modal editing
// engine: dot-repeat capture and named-register macro recording.
//
// # Recording
//
// A dot-repeatable change begins with StartRecording, which clears the
// buffer and captures every subsequent action passed to RecordAction
// until StopRecording (or the one-shot StopRecordingAfterNext
// heuristic) ends the change. Actions are either opaque commands or raw
// text insertions; insertions carry an optional UTF-16 replace range so
// input-method composition edits replay exactly.
//
// Named recordings (q + register) accumulate into a durable per-register
// sequence, independent of the dot-repeat buffer, and append across
// begin/stop cycles for the same register until ClearRecording.
//
// # Replay
//
// Replay drives the recorded sequence through the same dispatch entry
// point used for live input, so replayed actions have no privileged
// semantics and a nested macro invocation is simply one more recorded
// action. The log is marked replaying for the whole run, which keeps
// re-entrant recording logic from capturing the replay itself. A failing
// action is skipped; interruption stops dispatch without rollback.
//
// # Persistence
//
// Named recordings can be saved to and loaded from a versioned JSON
// file, written atomically.
package macro
