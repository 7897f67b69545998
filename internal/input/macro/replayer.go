package macro

import (
	"sync/atomic"

	"github.com/dshills/vimkit/internal/input"
)

// ActionDispatcher is the host command entry point replay drives. It is
// the same path used for live input, so replayed actions carry no
// privileged semantics.
type ActionDispatcher interface {
	// DispatchAction performs a command exactly as if typed.
	DispatchAction(action input.Action) error

	// InsertText inserts text at the cursor. A non-nil replace range
	// identifies provisional text (in UTF-16 code units) the insertion
	// supersedes, as an input method would.
	InsertText(text string, replaceRange *UTF16Range) error
}

// Replayer is a cursor over an action sequence being replayed. Stop
// halts dispatch of the remaining actions; already-applied edits are
// not rolled back.
type Replayer struct {
	queue   []ReplayableAction
	pos     int
	stopped atomic.Bool
}

// Stop halts the replay before its next action.
func (r *Replayer) Stop() {
	r.stopped.Store(true)
}

// Remaining returns the number of actions not yet dispatched.
func (r *Replayer) Remaining() int {
	return len(r.queue) - r.pos
}

// run dispatches the queue in order. An action that fails to apply is
// skipped and replay continues with the next one.
func (r *Replayer) run(d ActionDispatcher) {
	for r.pos < len(r.queue) {
		if r.stopped.Load() {
			return
		}
		step := r.queue[r.pos]
		r.pos++

		switch {
		case step.Action != nil:
			action := step.Action.Clone()
			action.Source = input.SourceReplay
			_ = d.DispatchAction(action)
		case step.Insertion != nil:
			_ = d.InsertText(step.Insertion.Text, step.Insertion.ReplaceRange)
		}
	}
}

// Replay runs an action sequence to completion through the dispatcher.
// The log is marked replaying for the whole run so re-entrant recording
// logic does not capture the replay itself; nested replays (a macro
// invoking another macro) stack.
func (l *ReplayLog) Replay(actions []ReplayableAction, d ActionDispatcher) {
	replayer := &Replayer{queue: cloneActions(actions)}

	l.mu.Lock()
	l.replayDepth++
	prev := l.replayer
	l.replayer = replayer
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.replayDepth--
		l.replayer = prev
		l.mu.Unlock()
	}()

	replayer.run(d)
}

// ReplayRegister replays a named recording count times (minimum 1).
func (l *ReplayLog) ReplayRegister(register rune, count int, d ActionDispatcher) error {
	register, ok := foldRegister(register)
	if !ok {
		return ErrInvalidRegister
	}

	l.mu.Lock()
	actions := cloneActions(l.recordings[register])
	if len(actions) == 0 {
		l.mu.Unlock()
		return ErrEmptyRegister
	}
	l.lastReplayedRegister = register
	l.mu.Unlock()

	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		l.Replay(actions, d)
	}
	return nil
}

// ReplayLast replays the most recently replayed register (@@).
func (l *ReplayLog) ReplayLast(count int, d ActionDispatcher) error {
	l.mu.Lock()
	register := l.lastReplayedRegister
	l.mu.Unlock()
	if register == 0 {
		return ErrNoReplayedRegister
	}
	return l.ReplayRegister(register, count, d)
}

// ActiveReplayer returns the replayer currently driving dispatch.
func (l *ReplayLog) ActiveReplayer() (*Replayer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.replayer, l.replayer != nil
}
