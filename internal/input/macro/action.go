package macro

import "github.com/dshills/vimkit/internal/input"

// UTF16Range is a half-open range expressed in UTF-16 code units, the
// offset space input methods report composition edits in.
type UTF16Range struct {
	Start int
	End   int
}

// Insertion is raw text typed into the buffer. When ReplaceRange is
// set, the insertion supersedes a previously inserted provisional range
// (an input-method composition edit) rather than purely inserting.
type Insertion struct {
	// Text is the literal inserted text.
	Text string

	// ReplaceRange identifies the provisional range this insertion
	// replaces, in UTF-16 code units. Nil for a plain insertion.
	ReplaceRange *UTF16Range
}

// ReplayableAction is one recorded step of a change: either an opaque
// command dispatch or a raw text insertion. Exactly one of Action and
// Insertion is set. Values are immutable once recorded.
type ReplayableAction struct {
	Action    *input.Action
	Insertion *Insertion
}

// ActionStep wraps a command in a replayable step.
func ActionStep(action input.Action) ReplayableAction {
	a := action.Clone()
	return ReplayableAction{Action: &a}
}

// InsertionStep wraps a plain text insertion in a replayable step.
func InsertionStep(text string) ReplayableAction {
	return ReplayableAction{Insertion: &Insertion{Text: text}}
}

// ReplacementStep wraps a composition replace in a replayable step.
func ReplacementStep(text string, replace UTF16Range) ReplayableAction {
	r := replace
	return ReplayableAction{Insertion: &Insertion{Text: text, ReplaceRange: &r}}
}

// Clone returns a copy sharing no mutable state with the receiver.
func (ra ReplayableAction) Clone() ReplayableAction {
	var out ReplayableAction
	if ra.Action != nil {
		a := ra.Action.Clone()
		out.Action = &a
	}
	if ra.Insertion != nil {
		ins := Insertion{Text: ra.Insertion.Text}
		if ra.Insertion.ReplaceRange != nil {
			r := *ra.Insertion.ReplaceRange
			ins.ReplaceRange = &r
		}
		out.Insertion = &ins
	}
	return out
}

func cloneActions(actions []ReplayableAction) []ReplayableAction {
	if len(actions) == 0 {
		return nil
	}
	out := make([]ReplayableAction, len(actions))
	for i, a := range actions {
		out[i] = a.Clone()
	}
	return out
}
