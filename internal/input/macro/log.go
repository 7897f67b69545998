package macro

import (
	"errors"
	"sync"
	"unicode"

	"github.com/dshills/vimkit/internal/input/vim"
)

// Recording and replay errors.
var (
	// ErrAlreadyRecording is returned when a named recording is started
	// while another is in progress.
	ErrAlreadyRecording = errors.New("macro: already recording to a register")

	// ErrNotRecording is returned when a named recording is stopped
	// without one in progress.
	ErrNotRecording = errors.New("macro: not recording")

	// ErrInvalidRegister is returned for register names outside a-z, 0-9.
	ErrInvalidRegister = errors.New("macro: invalid register")

	// ErrEmptyRegister is returned when replaying a register with no
	// recording.
	ErrEmptyRegister = errors.New("macro: empty register")

	// ErrNoReplayedRegister is returned by ReplayLast before any
	// register has been replayed.
	ErrNoReplayedRegister = errors.New("macro: no macro has been replayed")
)

// ReplayLog records the action stream of the current change for
// dot-repeat and accumulates named-register recordings for macros.
// It is the process-wide log shared by every editor instance.
type ReplayLog struct {
	mu sync.Mutex

	recording              bool
	stopAfterNext          bool
	ignoreCurrentInsertion bool
	recordedCount          int
	actions                []ReplayableAction
	recordedSelection      vim.RecordedSelection

	recordingRegister    rune
	lastRecordedRegister rune
	lastReplayedRegister rune
	recordings           map[rune][]ReplayableAction

	replayDepth int
	replayer    *Replayer
}

// NewReplayLog creates an empty replay log.
func NewReplayLog() *ReplayLog {
	return &ReplayLog{
		recordings: make(map[rune][]ReplayableAction),
	}
}

// StartRecording clears the dot-repeat buffer and begins capturing the
// new change. count is the count prefix attached to the change, 0 for
// none. Recording is suppressed during replay so a replayed change does
// not re-record itself.
func (l *ReplayLog) StartRecording(count int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.replayDepth > 0 {
		return
	}
	l.recording = true
	l.stopAfterNext = false
	l.actions = nil
	l.recordedCount = count
}

// StopRecording ends the dot-repeat capture and returns the recorded
// sequence.
func (l *ReplayLog) StopRecording() []ReplayableAction {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recording = false
	l.stopAfterNext = false
	return cloneActions(l.actions)
}

// StopRecordingAfterNext arranges for recording to stop once the next
// action has been captured. Used when the action that ends the change
// is itself part of it.
func (l *ReplayLog) StopRecordingAfterNext() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.recording {
		l.stopAfterNext = true
	}
}

// IgnoreCurrentInsertion suppresses recording of exactly one upcoming
// insertion. Used when an insertion is a side effect of entering a mode
// rather than user content.
func (l *ReplayLog) IgnoreCurrentInsertion() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ignoreCurrentInsertion = true
}

// Recording reports whether a dot-repeat capture is in progress.
func (l *ReplayLog) Recording() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recording
}

// Replaying reports whether a replay is currently driving the
// dispatcher.
func (l *ReplayLog) Replaying() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.replayDepth > 0
}

// RecordAction appends an action to every active capture: the
// dot-repeat buffer and, when a named recording is in progress, the
// recording register. Actions dispatched by replay are not re-recorded.
func (l *ReplayLog) RecordAction(action ReplayableAction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.replayDepth > 0 {
		return
	}
	if action.Insertion != nil && l.ignoreCurrentInsertion {
		l.ignoreCurrentInsertion = false
		return
	}

	if l.recording {
		l.actions = append(l.actions, action.Clone())
		if l.stopAfterNext {
			l.recording = false
			l.stopAfterNext = false
		}
	}
	if l.recordingRegister != 0 {
		l.recordings[l.recordingRegister] = append(l.recordings[l.recordingRegister], action.Clone())
	}
}

// RecordedActions returns the most recently captured change sequence.
func (l *ReplayLog) RecordedActions() []ReplayableAction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneActions(l.actions)
}

// RecordedCount returns the count prefix captured with the current
// change; ok is false when the change had no count.
func (l *ReplayLog) RecordedCount() (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordedCount, l.recordedCount > 0
}

// SetRecordedSelection stores the shape of a completed visual-mode
// operation for the next dot-repeat.
func (l *ReplayLog) SetRecordedSelection(sel vim.RecordedSelection) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recordedSelection = sel
}

// TakeRecordedSelection returns the recorded selection shape and
// resets it; the shape is consumed by at most one dot-repeat.
func (l *ReplayLog) TakeRecordedSelection() vim.RecordedSelection {
	l.mu.Lock()
	defer l.mu.Unlock()
	sel := l.recordedSelection
	l.recordedSelection = vim.RecordedSelection{}
	return sel
}

// StartNamedRecording begins accumulating actions into a named
// register. The register keeps its existing recording; successive
// begin/stop cycles for the same name append until ClearRecording.
func (l *ReplayLog) StartNamedRecording(register rune) error {
	register, ok := foldRegister(register)
	if !ok {
		return ErrInvalidRegister
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.recordingRegister != 0 {
		return ErrAlreadyRecording
	}
	l.recordingRegister = register
	return nil
}

// StopNamedRecording ends the named recording and returns the register
// and its accumulated sequence.
func (l *ReplayLog) StopNamedRecording() (rune, []ReplayableAction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.recordingRegister == 0 {
		return 0, nil, ErrNotRecording
	}
	register := l.recordingRegister
	l.recordingRegister = 0
	l.lastRecordedRegister = register
	return register, cloneActions(l.recordings[register]), nil
}

// RecordingRegister returns the register currently being recorded to.
func (l *ReplayLog) RecordingRegister() (rune, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordingRegister, l.recordingRegister != 0
}

// NamedRecording returns the accumulated recording for a register.
func (l *ReplayLog) NamedRecording(register rune) []ReplayableAction {
	register, ok := foldRegister(register)
	if !ok {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneActions(l.recordings[register])
}

// ClearRecording resets a register's accumulated recording.
func (l *ReplayLog) ClearRecording(register rune) {
	register, ok := foldRegister(register)
	if !ok {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.recordings, register)
}

// RecordedRegisters returns the registers that hold recordings.
func (l *ReplayLog) RecordedRegisters() []rune {
	l.mu.Lock()
	defer l.mu.Unlock()
	names := make([]rune, 0, len(l.recordings))
	for name, actions := range l.recordings {
		if len(actions) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// LastRecordedRegister returns the register of the most recently
// finished named recording.
func (l *ReplayLog) LastRecordedRegister() (rune, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastRecordedRegister, l.lastRecordedRegister != 0
}

// LastReplayedRegister returns the most recently replayed register
// (for @@).
func (l *ReplayLog) LastReplayedRegister() (rune, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastReplayedRegister, l.lastReplayedRegister != 0
}

// foldRegister validates a macro register name, folding uppercase to
// lowercase (recordings always accumulate, so the uppercase append
// convention collapses onto the base register).
func foldRegister(register rune) (rune, bool) {
	register = unicode.ToLower(register)
	if register >= 'a' && register <= 'z' {
		return register, true
	}
	if register >= '0' && register <= '9' {
		return register, true
	}
	return 0, false
}
