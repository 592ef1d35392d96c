// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/timeline/enhance.go
// Summary: Title, prompt and closing frames wrapped around a recording.

package timeline

import (
	"fmt"

	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

const (
	DefaultTitle = "Terminal Recording"
	DefaultOutro = "End of Recording"

	promptAt     = 1000
	recordOffset = 1500
	outroDelay   = 1000
)

// Intro holds the text of the synthetic frames added by Enhance.
type Intro struct {
	Title string
	Outro string
}

// DefaultIntro returns the stock title and closing text.
func DefaultIntro() Intro {
	return Intro{Title: DefaultTitle, Outro: DefaultOutro}
}

// Enhance returns a new record list: a clear-screen title at 0ms, a prompt at
// 1000ms, every record shifted by 1500ms, and a closing line 1000ms after the
// last record. Empty title or outro text falls back to the defaults.
func Enhance(records []recording.Frame, intro Intro) []recording.Frame {
	if intro.Title == "" {
		intro.Title = DefaultTitle
	}
	if intro.Outro == "" {
		intro.Outro = DefaultOutro
	}

	out := make([]recording.Frame, 0, len(records)+3)
	out = append(out,
		recording.Frame{
			Content:   fmt.Sprintf("\x1b[H\x1b[2J\x1b[1;32m# %s\x1b[0m\n\n", intro.Title),
			Timestamp: 0,
		},
		recording.Frame{
			Content:   "\x1b[1;34m$ \x1b[0m",
			Timestamp: promptAt,
		},
	)
	for _, r := range records {
		out = append(out, recording.Frame{
			Content:   r.Content,
			Timestamp: r.Timestamp + recordOffset,
		})
	}
	last := out[len(out)-1].Timestamp
	out = append(out, recording.Frame{
		Content:   fmt.Sprintf("\n\n\x1b[1;32m# %s\x1b[0m\n", intro.Outro),
		Timestamp: last + outroDelay,
	})
	return out
}
