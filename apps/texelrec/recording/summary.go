// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/recording/summary.go
// Summary: Aggregate statistics for the info command and the catalog.

package recording

import "time"

// Stats describes a recording at a glance.
type Stats struct {
	Frames     int
	Bytes      int
	Duration   time.Duration
	LargestGap time.Duration
	// Gaps holds the milliseconds between consecutive frames.
	Gaps []float64
}

// Summary computes Stats for frames. A timestamp lower than its predecessor
// counts as a zero gap.
func Summary(frames []Frame) Stats {
	s := Stats{Frames: len(frames)}
	if len(frames) == 0 {
		return s
	}
	for i, f := range frames {
		s.Bytes += len(f.Content)
		if i == 0 {
			continue
		}
		var gap uint64
		if prev := frames[i-1].Timestamp; f.Timestamp > prev {
			gap = f.Timestamp - prev
		}
		s.Gaps = append(s.Gaps, float64(gap))
		if d := time.Duration(gap) * time.Millisecond; d > s.LargestGap {
			s.LargestGap = d
		}
	}
	s.Duration = time.Duration(frames[len(frames)-1].Timestamp) * time.Millisecond
	return s
}
