package macro

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/vimkit/internal/input"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	log := NewReplayLog()
	if err := log.StartNamedRecording('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.RecordAction(ActionStep(input.Action{
		Name:  "editor.delete",
		Count: 2,
		Args:  input.ActionArgs{Register: 'x', Extra: map[string]any{"linewise": true}},
	}))
	log.RecordAction(InsertionStep("replacement"))
	log.RecordAction(ReplacementStep("日", UTF16Range{Start: 0, End: 4}))
	if _, _, err := log.StopNamedRecording(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	host := newFakeHost(log)
	if err := log.ReplayRegister('a', 1, host); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "recordings.json")
	if err := Save(log, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := NewReplayLog()
	if err := Load(loaded, path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	actions := loaded.NamedRecording('a')
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}

	cmd := actions[0].Action
	if cmd == nil {
		t.Fatal("expected first step to be a command")
	}
	if cmd.Name != "editor.delete" || cmd.Count != 2 || cmd.Args.Register != 'x' {
		t.Errorf("command did not round trip: %+v", cmd)
	}
	if v, ok := cmd.Args.Extra["linewise"].(bool); !ok || !v {
		t.Errorf("expected extra linewise=true, got %v", cmd.Args.Extra["linewise"])
	}

	ins := actions[1].Insertion
	if ins == nil || ins.Text != "replacement" || ins.ReplaceRange != nil {
		t.Errorf("plain insertion did not round trip: %+v", ins)
	}

	rep := actions[2].Insertion
	if rep == nil || rep.Text != "日" {
		t.Fatalf("composition insertion did not round trip: %+v", rep)
	}
	if rep.ReplaceRange == nil || rep.ReplaceRange.Start != 0 || rep.ReplaceRange.End != 4 {
		t.Errorf("replace range did not round trip: %+v", rep.ReplaceRange)
	}

	register, ok := loaded.LastReplayedRegister()
	if !ok || register != 'a' {
		t.Errorf("expected last replayed register a, got %c (ok=%v)", register, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	log := NewReplayLog()
	if err := Load(log, filepath.Join(t.TempDir(), "missing.json")); err != nil {
		t.Errorf("expected missing file to be a no-op, got %v", err)
	}
	if got := log.RecordedRegisters(); len(got) != 0 {
		t.Errorf("expected no recordings, got %q", string(got))
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recordings.json")
	data, err := json.Marshal(map[string]any{"version": 99})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(NewReplayLog(), path); err == nil {
		t.Error("expected unknown version to be rejected")
	}
}

func TestLoadReplacesExistingRecordings(t *testing.T) {
	source := NewReplayLog()
	if err := source.StartNamedRecording('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	source.RecordAction(InsertionStep("saved"))
	if _, _, err := source.StopNamedRecording(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "recordings.json")
	if err := Save(source, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	target := NewReplayLog()
	if err := target.StartNamedRecording('b'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	target.RecordAction(InsertionStep("stale"))
	if _, _, err := target.StopNamedRecording(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Load(target, path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := target.NamedRecording('b'); len(got) != 0 {
		t.Errorf("expected stale recording replaced, got %v", stepNames(got))
	}
	if got := target.NamedRecording('a'); !equalNames(stepNames(got), []string{"insert:saved"}) {
		t.Errorf("expected loaded recording, got %v", stepNames(got))
	}
}
