// Package vim implements the register routing and operator pending
// state of a modal editing mode.
//
// # Registers
//
// A RegisterStore maps single-character names to content; the Router
// implements the write/read policy on top of it:
//
//   - the unnamed register (") mirrors every write
//   - register 0 holds the most recent yank
//   - register - holds the most recent small (single-line) delete
//   - registers 1-9 are a shifting history of linewise deletes
//   - uppercase names append to their lowercase register
//   - _ discards writes; : . % # = are read-only or derived
//   - + and * route to the system clipboard and primary selection
//
// Implicit writes additionally follow a configurable clipboard policy
// (never, on_yank, always). Under on_yank the router tracks the last
// text it wrote to the clipboard so an unnamed read can prefer an
// externally changed clipboard over its own stale yank.
//
// # Operators
//
// Operator classifies every operator-class command; IsWaiting reports
// whether it pauses for one more qualifier keystroke (f, m, ", q, r,
// ...) or applies immediately against the active motion or selection
// (c, d, y, >, ...). PendingState wraps the classification into the
// idle/awaiting state machine consulted by the key dispatch loop.
package vim
