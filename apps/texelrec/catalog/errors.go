// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/catalog/errors.go
// Summary: Sentinel errors for the recording catalog.

package catalog

import "errors"

// ErrNotFound is returned when no catalog entry matches a path.
var ErrNotFound = errors.New("catalog: recording not found")
