// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/recording/store.go
// Summary: JSON persistence for recordings, with atomic writes and autosave lookup.
// Notes: The on-disk format is a pretty-printed array of {"content", "timestamp"}.

package recording

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	autosaveExt = ".json.autosave"
	tempSuffix  = ".tmp"
)

// AutosavePath returns the autosave companion of path: the last extension is
// replaced by ".json.autosave".
func AutosavePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + autosaveExt
}

// Save writes frames to path through a temporary file and a rename, creating
// parent directories as needed.
func Save(path string, frames []Frame) error {
	if len(frames) == 0 {
		return ErrEmpty
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create recording dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(frames, "", "  ")
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	tmp := path + tempSuffix
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write recording %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename recording %s: %w", path, err)
	}
	return nil
}

// Load reads a recording file.
func Load(path string) ([]Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("load recording %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("load recording %s: %w", path, err)
	}
	var frames []Frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("decode recording %s: %w", path, err)
	}
	return frames, nil
}

// Resolve returns path when it exists, otherwise its autosave companion.
func Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	auto := AutosavePath(path)
	if _, err := os.Stat(auto); err == nil {
		log.Printf("Recording: %s missing, using autosave %s", path, auto)
		return auto, nil
	}
	return "", fmt.Errorf("resolve %s: %w", path, ErrNotFound)
}

// LoadResolved loads path, falling back to its autosave companion.
func LoadResolved(path string) ([]Frame, string, error) {
	resolved, err := Resolve(path)
	if err != nil {
		return nil, "", err
	}
	frames, err := Load(resolved)
	if err != nil {
		return nil, resolved, err
	}
	return frames, resolved, nil
}

// RemoveAutosave deletes the autosave companion of path if present.
func RemoveAutosave(path string) error {
	err := os.Remove(AutosavePath(path))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove autosave: %w", err)
	}
	return nil
}
