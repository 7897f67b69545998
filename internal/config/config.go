// Package config loads engine settings from TOML and watches the
// settings file for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vimkit/internal/input/vim"
)

// ClipboardSettings configures system clipboard interop.
type ClipboardSettings struct {
	// Sync is the clipboard policy: "never", "on_yank", or "always".
	Sync string `toml:"sync"`
}

// MacroSettings configures macro recording persistence.
type MacroSettings struct {
	// File is the path recordings are saved to. Empty disables
	// persistence.
	File string `toml:"file"`
}

// Settings is the engine configuration.
type Settings struct {
	Clipboard ClipboardSettings `toml:"clipboard"`
	Macro     MacroSettings     `toml:"macro"`
}

// Default returns the settings used when no config file exists. The
// clipboard policy defaults to on_yank.
func Default() Settings {
	return Settings{
		Clipboard: ClipboardSettings{Sync: "on_yank"},
	}
}

// ClipboardPolicy resolves the configured sync value to a policy.
func (s Settings) ClipboardPolicy() (vim.ClipboardPolicy, error) {
	switch s.Clipboard.Sync {
	case "", "on_yank":
		return vim.ClipboardOnYank, nil
	case "never":
		return vim.ClipboardNever, nil
	case "always":
		return vim.ClipboardAlways, nil
	default:
		return vim.ClipboardOnYank, fmt.Errorf("unknown clipboard.sync value %q", s.Clipboard.Sync)
	}
}

// Load reads settings from a TOML file. A missing file yields the
// defaults without error.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if _, err := settings.ClipboardPolicy(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return settings, nil
}
