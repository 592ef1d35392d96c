// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import "embed"

//go:embed texelrec.json
var fs embed.FS

// ConfigName is the file name of the user config.
const ConfigName = "texelrec.json"

// Config returns the embedded default config JSON.
func Config() ([]byte, error) {
	return fs.ReadFile(ConfigName)
}
