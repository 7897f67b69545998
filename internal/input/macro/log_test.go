package macro

import (
	"errors"
	"testing"

	"github.com/dshills/vimkit/internal/input"
	"github.com/dshills/vimkit/internal/input/vim"
)

func action(name string) ReplayableAction {
	return ActionStep(input.Action{Name: name})
}

func stepNames(actions []ReplayableAction) []string {
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		switch {
		case a.Action != nil:
			names = append(names, a.Action.Name)
		case a.Insertion != nil:
			names = append(names, "insert:"+a.Insertion.Text)
		}
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDotRecording(t *testing.T) {
	log := NewReplayLog()

	if log.Recording() {
		t.Fatal("expected new log not to be recording")
	}

	log.StartRecording(3)
	if !log.Recording() {
		t.Fatal("expected log to be recording")
	}
	if count, ok := log.RecordedCount(); !ok || count != 3 {
		t.Errorf("expected recorded count 3, got %d (ok=%v)", count, ok)
	}

	log.RecordAction(action("editor.delete"))
	log.RecordAction(InsertionStep("new text"))
	recorded := log.StopRecording()

	want := []string{"editor.delete", "insert:new text"}
	if !equalNames(stepNames(recorded), want) {
		t.Errorf("expected %v, got %v", want, stepNames(recorded))
	}

	// A new change clears the buffer.
	log.StartRecording(0)
	log.RecordAction(action("editor.change"))
	recorded = log.StopRecording()
	if !equalNames(stepNames(recorded), []string{"editor.change"}) {
		t.Errorf("expected fresh buffer, got %v", stepNames(recorded))
	}
	if _, ok := log.RecordedCount(); ok {
		t.Error("expected no recorded count for an uncounted change")
	}
}

func TestStopRecordingAfterNext(t *testing.T) {
	log := NewReplayLog()
	log.StartRecording(0)
	log.RecordAction(action("editor.change"))
	log.StopRecordingAfterNext()
	log.RecordAction(action("mode.normal"))
	if log.Recording() {
		t.Error("expected recording to stop after the next action")
	}
	log.RecordAction(action("cursor.left"))

	want := []string{"editor.change", "mode.normal"}
	if !equalNames(stepNames(log.RecordedActions()), want) {
		t.Errorf("expected %v, got %v", want, stepNames(log.RecordedActions()))
	}
}

func TestIgnoreCurrentInsertion(t *testing.T) {
	log := NewReplayLog()
	log.StartRecording(0)

	// The next insertion is a mode-entry side effect, not user content.
	log.IgnoreCurrentInsertion()
	log.RecordAction(InsertionStep("side effect"))
	log.RecordAction(InsertionStep("user text"))
	recorded := log.StopRecording()

	want := []string{"insert:user text"}
	if !equalNames(stepNames(recorded), want) {
		t.Errorf("expected %v, got %v", want, stepNames(recorded))
	}
}

func TestIgnoreCurrentInsertionDoesNotSkipActions(t *testing.T) {
	log := NewReplayLog()
	log.StartRecording(0)

	log.IgnoreCurrentInsertion()
	log.RecordAction(action("cursor.left"))
	log.RecordAction(InsertionStep("side effect"))
	log.RecordAction(InsertionStep("user text"))
	recorded := log.StopRecording()

	// Only the first insertion is suppressed; commands pass through.
	want := []string{"cursor.left", "insert:user text"}
	if !equalNames(stepNames(recorded), want) {
		t.Errorf("expected %v, got %v", want, stepNames(recorded))
	}
}

func TestNamedRecordingAppendsAcrossCycles(t *testing.T) {
	log := NewReplayLog()

	if err := log.StartNamedRecording('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.RecordAction(action("one"))
	register, recorded, err := log.StopNamedRecording()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if register != 'a' {
		t.Errorf("expected register a, got %c", register)
	}
	if !equalNames(stepNames(recorded), []string{"one"}) {
		t.Errorf("expected [one], got %v", stepNames(recorded))
	}

	// A second cycle for the same register appends.
	if err := log.StartNamedRecording('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.RecordAction(action("two"))
	_, recorded, err = log.StopNamedRecording()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"one", "two"}
	if !equalNames(stepNames(recorded), want) {
		t.Errorf("expected %v, got %v", want, stepNames(recorded))
	}

	// Explicit reset clears the accumulation.
	log.ClearRecording('a')
	if got := log.NamedRecording('a'); len(got) != 0 {
		t.Errorf("expected cleared recording, got %v", stepNames(got))
	}
}

func TestNamedRecordingIndependentOfDotBuffer(t *testing.T) {
	log := NewReplayLog()

	if err := log.StartNamedRecording('q'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.StartRecording(0)
	log.RecordAction(action("editor.delete"))
	dot := log.StopRecording()
	log.RecordAction(action("cursor.down"))
	_, named, err := log.StopNamedRecording()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !equalNames(stepNames(dot), []string{"editor.delete"}) {
		t.Errorf("expected dot buffer [editor.delete], got %v", stepNames(dot))
	}
	want := []string{"editor.delete", "cursor.down"}
	if !equalNames(stepNames(named), want) {
		t.Errorf("expected named recording %v, got %v", want, stepNames(named))
	}
}

func TestNamedRecordingErrors(t *testing.T) {
	log := NewReplayLog()

	if err := log.StartNamedRecording('!'); !errors.Is(err, ErrInvalidRegister) {
		t.Errorf("expected ErrInvalidRegister, got %v", err)
	}
	if _, _, err := log.StopNamedRecording(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("expected ErrNotRecording, got %v", err)
	}

	if err := log.StartNamedRecording('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.StartNamedRecording('b'); !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("expected ErrAlreadyRecording, got %v", err)
	}
}

func TestNamedRecordingFoldsUppercase(t *testing.T) {
	log := NewReplayLog()

	if err := log.StartNamedRecording('A'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.RecordAction(action("one"))
	register, _, err := log.StopNamedRecording()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if register != 'a' {
		t.Errorf("expected folded register a, got %c", register)
	}
	if got := log.NamedRecording('a'); !equalNames(stepNames(got), []string{"one"}) {
		t.Errorf("expected [one] under register a, got %v", stepNames(got))
	}
}

func TestLastRecordedRegister(t *testing.T) {
	log := NewReplayLog()
	if _, ok := log.LastRecordedRegister(); ok {
		t.Error("expected no last recorded register on a new log")
	}

	if err := log.StartNamedRecording('m'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.RecordAction(action("one"))
	if _, _, err := log.StopNamedRecording(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	register, ok := log.LastRecordedRegister()
	if !ok || register != 'm' {
		t.Errorf("expected last recorded register m, got %c (ok=%v)", register, ok)
	}
}

func TestRecordedSelectionReadOnce(t *testing.T) {
	log := NewReplayLog()

	sel := vim.RecordedSelection{Kind: vim.SelectionVisualLine, Rows: 4}
	log.SetRecordedSelection(sel)

	if got := log.TakeRecordedSelection(); got != sel {
		t.Errorf("expected %+v, got %+v", sel, got)
	}
	if got := log.TakeRecordedSelection(); got.Kind != vim.SelectionNone {
		t.Errorf("expected selection consumed, got %+v", got)
	}
}

func TestRecordedActionsAreIsolated(t *testing.T) {
	log := NewReplayLog()
	log.StartRecording(0)

	step := ActionStep(input.Action{
		Name: "editor.paste",
		Args: input.ActionArgs{Extra: map[string]any{"before": true}},
	})
	log.RecordAction(step)

	// Mutating the caller's copy must not change the recording.
	step.Action.Args.Extra["before"] = false

	recorded := log.RecordedActions()
	if len(recorded) != 1 {
		t.Fatalf("expected 1 recorded action, got %d", len(recorded))
	}
	if v := recorded[0].Action.Args.Extra["before"]; v != true {
		t.Errorf("expected recorded args isolated, got before=%v", v)
	}
}
