package macro

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/vimkit/internal/input"
)

// persistedCommand is the JSON-serializable form of an opaque command.
type persistedCommand struct {
	Name     string         `json:"name"`
	Count    int            `json:"count,omitempty"`
	Register rune           `json:"register,omitempty"`
	Text     string         `json:"text,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// persistedInsertion is the JSON-serializable form of a text insertion.
type persistedInsertion struct {
	Text         string `json:"text"`
	ReplaceStart *int   `json:"replace_start,omitempty"`
	ReplaceEnd   *int   `json:"replace_end,omitempty"`
}

// persistedStep holds exactly one of the two replayable variants.
type persistedStep struct {
	Action    *persistedCommand   `json:"action,omitempty"`
	Insertion *persistedInsertion `json:"insertion,omitempty"`
}

// persistedRecording represents one register's recording.
type persistedRecording struct {
	Register rune            `json:"register"`
	Steps    []persistedStep `json:"steps"`
}

// persistedData is the root structure for recordings persistence.
type persistedData struct {
	Version      int                  `json:"version"`
	ID           string               `json:"id"`
	SavedAt      time.Time            `json:"saved_at"`
	LastReplayed rune                 `json:"last_replayed,omitempty"`
	Recordings   []persistedRecording `json:"recordings"`
}

const currentVersion = 1

func toPersistedStep(a ReplayableAction) persistedStep {
	var step persistedStep
	if a.Action != nil {
		step.Action = &persistedCommand{
			Name:     a.Action.Name,
			Count:    a.Action.Count,
			Register: a.Action.Args.Register,
			Text:     a.Action.Args.Text,
			Extra:    a.Action.Args.Extra,
		}
	}
	if a.Insertion != nil {
		ins := &persistedInsertion{Text: a.Insertion.Text}
		if r := a.Insertion.ReplaceRange; r != nil {
			start, end := r.Start, r.End
			ins.ReplaceStart = &start
			ins.ReplaceEnd = &end
		}
		step.Insertion = ins
	}
	return step
}

func fromPersistedStep(step persistedStep) ReplayableAction {
	var a ReplayableAction
	if step.Action != nil {
		action := input.Action{
			Name:   step.Action.Name,
			Count:  step.Action.Count,
			Source: input.SourceReplay,
			Args: input.ActionArgs{
				Register: step.Action.Register,
				Text:     step.Action.Text,
				Extra:    step.Action.Extra,
			},
		}
		a.Action = &action
	}
	if step.Insertion != nil {
		ins := &Insertion{Text: step.Insertion.Text}
		if step.Insertion.ReplaceStart != nil && step.Insertion.ReplaceEnd != nil {
			ins.ReplaceRange = &UTF16Range{
				Start: *step.Insertion.ReplaceStart,
				End:   *step.Insertion.ReplaceEnd,
			}
		}
		a.Insertion = ins
	}
	return a
}

// Save writes all named recordings to the specified file. The file is
// written atomically using a temporary file and rename.
func Save(log *ReplayLog, path string) error {
	log.mu.Lock()
	data := persistedData{
		Version:      currentVersion,
		ID:           uuid.NewString(),
		SavedAt:      time.Now(),
		LastReplayed: log.lastReplayedRegister,
		Recordings:   make([]persistedRecording, 0, len(log.recordings)),
	}
	for register, actions := range log.recordings {
		if len(actions) == 0 {
			continue
		}
		rec := persistedRecording{
			Register: register,
			Steps:    make([]persistedStep, len(actions)),
		}
		for i, a := range actions {
			rec.Steps[i] = toPersistedStep(a)
		}
		data.Recordings = append(data.Recordings, rec)
	}
	log.mu.Unlock()

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding recordings: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".recordings-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing recordings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming recordings file: %w", err)
	}
	return nil
}

// Load reads recordings from the specified file into the log, replacing
// any existing named recordings. A missing file is not an error.
func Load(log *ReplayLog, path string) error {
	encoded, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading recordings file %s: %w", path, err)
	}

	var data persistedData
	if err := json.Unmarshal(encoded, &data); err != nil {
		return fmt.Errorf("decoding recordings file %s: %w", path, err)
	}
	if data.Version != currentVersion {
		return fmt.Errorf("unsupported recordings version %d", data.Version)
	}

	recordings := make(map[rune][]ReplayableAction, len(data.Recordings))
	for _, rec := range data.Recordings {
		register, ok := foldRegister(rec.Register)
		if !ok || len(rec.Steps) == 0 {
			continue
		}
		actions := make([]ReplayableAction, len(rec.Steps))
		for i, step := range rec.Steps {
			actions[i] = fromPersistedStep(step)
		}
		recordings[register] = actions
	}

	log.mu.Lock()
	log.recordings = recordings
	if data.LastReplayed != 0 {
		if register, ok := foldRegister(data.LastReplayed); ok {
			log.lastReplayedRegister = register
		}
	}
	log.mu.Unlock()
	return nil
}
