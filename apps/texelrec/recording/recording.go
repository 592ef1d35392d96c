// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/recording/recording.go
// Summary: In-memory timestamped capture of terminal output chunks.
// Usage: capture.Session appends PTY output; the renderer reads a Frames snapshot.
// Notes: Safe for concurrent use. Timestamps never decrease.

package recording

import (
	"sync"
	"time"
)

// Frame is one chunk of terminal output and the milliseconds since the
// recording started when it arrived.
type Frame struct {
	Content   string `json:"content"`
	Timestamp uint64 `json:"timestamp"`
}

// Recording accumulates frames as they arrive.
type Recording struct {
	mu     sync.Mutex
	start  time.Time
	now    func() time.Time
	frames []Frame
}

// Option configures a Recording.
type Option func(*Recording)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recording) {
		r.now = now
	}
}

// New starts a recording at the current time.
func New(opts ...Option) *Recording {
	r := &Recording{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.start = r.now()
	return r
}

// AddFrame appends content stamped with the elapsed time. Empty content is
// dropped and reported as false.
func (r *Recording) AddFrame(content string) bool {
	if content == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed := r.now().Sub(r.start)
	var ts uint64
	if elapsed > 0 {
		ts = uint64(elapsed / time.Millisecond)
	}
	if n := len(r.frames); n > 0 && ts < r.frames[n-1].Timestamp {
		ts = r.frames[n-1].Timestamp
	}
	r.frames = append(r.frames, Frame{Content: content, Timestamp: ts})
	return true
}

// Frames returns a copy of the frames recorded so far.
func (r *Recording) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Len returns the number of frames recorded so far.
func (r *Recording) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Start returns the wall-clock time the recording began.
func (r *Recording) Start() time.Time {
	return r.start
}
