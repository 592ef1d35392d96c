// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/timeline/errors.go
// Summary: Sentinel errors for timeline assembly.

package timeline

import "errors"

// ErrNothingToRender is returned when a timeline has no records.
var ErrNothingToRender = errors.New("timeline: nothing to render")
