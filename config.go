package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// configPath returns the absolute path to the persisted preference file, e.g.
// ~/.config/stuck/config.json on Linux. The directory is not guaranteed to
// exist; callers that write must create it.
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "stuck", "config.json"), nil
}

// prefs is the serialised form of the presentation toggles persisted between
// sessions. Both default to off: single-thread points shown, symbols
// demangled.
type prefs struct {
	HideSingles bool `json:"hide_singles"`
	RawSymbols  bool `json:"raw_symbols"`
}

// loadPrefs reads persisted preferences from disk. Errors are silently
// ignored — a missing or malformed file means "use defaults".
func loadPrefs() prefs {
	var p prefs
	path, err := configPath()
	if err != nil {
		return p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if json.Unmarshal(data, &p) != nil {
		return prefs{}
	}
	return p
}

// save writes the current preferences to disk as JSON, creating the config
// directory if needed. Write errors are silently ignored — a failed save
// does not affect the running session.
func (p prefs) save() {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return
	}
	path, err := configPath()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0600)
}
