// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/recording/errors.go
// Summary: Sentinel errors for recording persistence.

package recording

import "errors"

var (
	// ErrNotFound is returned when neither a recording nor its autosave exists.
	ErrNotFound = errors.New("recording: not found")

	// ErrEmpty is returned by Save when there are no frames to write.
	ErrEmpty = errors.New("recording: no frames")
)
