package vim

// OperatorKind identifies an operator-class command.
type OperatorKind uint8

const (
	// OpChange deletes the target and enters insert mode (c).
	OpChange OperatorKind = iota

	// OpDelete deletes the target (d).
	OpDelete

	// OpYank copies the target to a register (y).
	OpYank

	// OpReplace replaces the character under the cursor (r).
	OpReplace

	// OpObject selects a text object (i/a prefix).
	OpObject

	// OpFindForward moves to a character to the right (f/t).
	OpFindForward

	// OpFindBackward moves to a character to the left (F/T).
	OpFindBackward

	// OpAddSurrounds wraps the target in a pair (ys).
	OpAddSurrounds

	// OpChangeSurrounds replaces a surrounding pair (cs).
	OpChangeSurrounds

	// OpDeleteSurrounds removes a surrounding pair (ds).
	OpDeleteSurrounds

	// OpMark sets a mark (m).
	OpMark

	// OpJump jumps to a mark (' or `).
	OpJump

	// OpIndent shifts the target right (>).
	OpIndent

	// OpOutdent shifts the target left (<).
	OpOutdent

	// OpLowercase converts the target to lowercase (gu).
	OpLowercase

	// OpUppercase converts the target to uppercase (gU).
	OpUppercase

	// OpOppositeCase toggles the target's case (g~).
	OpOppositeCase

	// OpDigraph enters a two-character digraph (^K).
	OpDigraph

	// OpRegister selects an explicit register (").
	OpRegister

	// OpRecordRegister starts or stops macro recording (q).
	OpRecordRegister

	// OpReplayRegister replays a recorded macro (@).
	OpReplayRegister

	// OpToggleComments toggles line comments on the target (gc).
	OpToggleComments
)

// Operator is an operator-class command together with its variant
// payload. The zero payload fields are meaningful only for the kinds
// that use them.
type Operator struct {
	// Kind is the operator variant.
	Kind OperatorKind

	// Around distinguishes "a" text objects from "i" (OpObject).
	Around bool

	// Before stops one character short of the target (OpFindForward, t).
	Before bool

	// After stops one character past the target (OpFindBackward, T).
	After bool

	// Line jumps to the mark's line rather than its exact position
	// (OpJump, ').
	Line bool

	// HasTarget records that a surround target has already been chosen
	// (OpAddSurrounds, OpChangeSurrounds).
	HasTarget bool

	// FirstChar is the first digraph character, zero until entered
	// (OpDigraph).
	FirstChar rune
}

// ID returns the operator's stable key-sequence identifier.
func (o Operator) ID() string {
	switch o.Kind {
	case OpObject:
		if o.Around {
			return "a"
		}
		return "i"
	case OpChange:
		return "c"
	case OpDelete:
		return "d"
	case OpYank:
		return "y"
	case OpReplace:
		return "r"
	case OpDigraph:
		return "^K"
	case OpFindForward:
		if o.Before {
			return "t"
		}
		return "f"
	case OpFindBackward:
		if o.After {
			return "T"
		}
		return "F"
	case OpAddSurrounds:
		return "ys"
	case OpChangeSurrounds:
		return "cs"
	case OpDeleteSurrounds:
		return "ds"
	case OpMark:
		return "m"
	case OpJump:
		if o.Line {
			return "'"
		}
		return "`"
	case OpIndent:
		return ">"
	case OpOutdent:
		return "<"
	case OpUppercase:
		return "gU"
	case OpLowercase:
		return "gu"
	case OpOppositeCase:
		return "g~"
	case OpRegister:
		return "\""
	case OpRecordRegister:
		return "q"
	case OpReplayRegister:
		return "@"
	case OpToggleComments:
		return "gc"
	default:
		return ""
	}
}

// IsWaiting reports whether the operator pauses for one more qualifier
// keystroke before it can apply. The result is a pure function of the
// operator variant and the current mode.
func (o Operator) IsWaiting(mode Mode) bool {
	switch o.Kind {
	case OpAddSurrounds:
		return o.HasTarget || mode.IsVisual()
	case OpChangeSurrounds:
		return o.HasTarget
	case OpFindForward, OpFindBackward,
		OpMark, OpJump,
		OpRegister, OpRecordRegister, OpReplayRegister,
		OpReplace, OpDigraph, OpDeleteSurrounds:
		return true
	default:
		return false
	}
}

// PendingState is the operator pending-state machine. It is either idle
// or holding an operator that is awaiting a qualifier keystroke; further
// motion dispatch is blocked while waiting.
type PendingState struct {
	op      Operator
	waiting bool
}

// Push classifies an incoming operator. If the operator waits for a
// qualifier in the current mode, the machine transitions to awaiting and
// returns true; otherwise the operator applies immediately and the
// machine stays idle.
func (p *PendingState) Push(op Operator, mode Mode) bool {
	if op.IsWaiting(mode) {
		p.op = op
		p.waiting = true
		return true
	}
	p.waiting = false
	return false
}

// Waiting reports whether an operator is awaiting a qualifier.
func (p *PendingState) Waiting() bool {
	return p.waiting
}

// Pending returns the awaiting operator, if any.
func (p *PendingState) Pending() (Operator, bool) {
	return p.op, p.waiting
}

// Clear returns the machine to idle. Called when the qualifier arrives
// or the pending operator is cancelled.
func (p *PendingState) Clear() {
	p.op = Operator{}
	p.waiting = false
}
