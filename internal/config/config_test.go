package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/vimkit/internal/input/vim"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "vimkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadPolicies(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want vim.ClipboardPolicy
	}{
		{"never", "[clipboard]\nsync = \"never\"\n", vim.ClipboardNever},
		{"on_yank", "[clipboard]\nsync = \"on_yank\"\n", vim.ClipboardOnYank},
		{"always", "[clipboard]\nsync = \"always\"\n", vim.ClipboardAlways},
		{"empty file defaults", "", vim.ClipboardOnYank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.toml)
			settings, err := Load(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			policy, err := settings.ClipboardPolicy()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if policy != tt.want {
				t.Errorf("expected %v, got %v", tt.want, policy)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	policy, err := settings.ClipboardPolicy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy != vim.ClipboardOnYank {
		t.Errorf("expected default on_yank, got %v", policy)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[clipboard]\nsync = \"sometimes\"\n")
	if _, err := Load(path); err == nil {
		t.Error("expected unknown policy to be rejected")
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[clipboard\nsync=")
	if _, err := Load(path); err == nil {
		t.Error("expected malformed TOML to be rejected")
	}
}

func TestLoadMacroFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[macro]\nfile = \"/tmp/recordings.json\"\n")
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Macro.File != "/tmp/recordings.json" {
		t.Errorf("expected macro file path, got %q", settings.Macro.File)
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[clipboard]\nsync = \"never\"\n")

	reloaded := make(chan Settings, 4)
	watcher, err := NewWatcher(path, func(settings Settings, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		reloaded <- settings
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer watcher.Close()

	writeConfig(t, dir, "[clipboard]\nsync = \"always\"\n")

	select {
	case settings := <-reloaded:
		policy, err := settings.ClipboardPolicy()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if policy != vim.ClipboardAlways {
			t.Errorf("expected reloaded policy always, got %v", policy)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
