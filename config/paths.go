// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelrec configuration and data files.

package config

import (
	"os"
	"path/filepath"

	"github.com/framegrace/texelrec/defaults"
)

const catalogName = "catalog.db"

// Root returns the texelrec directory under the user config dir.
func Root() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelrec"), nil
}

func systemConfigPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, defaults.ConfigName), nil
}

// CatalogPath returns the configured catalog database path, or the default
// location next to the config file.
func (c Config) CatalogPath() (string, error) {
	if p := c.GetString("catalog", "path", ""); p != "" {
		return p, nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, catalogName), nil
}
