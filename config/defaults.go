// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the texelrec config sections.

package config

func applyDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("render", Section{
		"width":      80,
		"height":     24,
		"font_size":  16,
		"dark_theme": true,
		"speed":      1.0,
		"intro":      true,
		"title":      "Terminal Recording",
		"outro":      "End of Recording",
	})
	cfg.RegisterDefaults("record", Section{
		"shell":            "",
		"autosave_seconds": 30,
		"output":           "demo.json",
	})
	cfg.RegisterDefaults("catalog", Section{
		"enabled": true,
		"path":    "",
	})
}
