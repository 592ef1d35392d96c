// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/playback/preview.go
// Summary: Replays a recording through the virtual terminal into a tcell screen.
// Usage: The caller owns the screen: Init before Preview, Fini after.
// Notes: Shows exactly what the GIF export will rasterize, at terminal speed.

package playback

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelrec/apps/texelrec/parser"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

// Options controls a preview.
type Options struct {
	Width  int
	Height int
	Dark   bool
	Speed  float64
	// ExitAtEnd returns after the last frame instead of waiting for a key.
	ExitAtEnd bool
}

// Preview plays frames on screen until they run out, a quit key (q, Esc,
// Ctrl+C) is pressed, or ctx is done.
func Preview(ctx context.Context, screen tcell.Screen, frames []recording.Frame, opts Options) error {
	vt := parser.NewVTerm(opts.Width, opts.Height, parser.WithDarkTheme(opts.Dark))
	p := parser.NewParser(vt)

	events := make(chan tcell.Event, 10)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	screen.Clear()
	next := time.NewTimer(0)
	defer next.Stop()

	i := 0
	for {
		var tick <-chan time.Time
		if i < len(frames) {
			tick = next.C
		} else if opts.ExitAtEnd {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-tick:
			p.Process(frames[i].Content)
			Draw(screen, vt)
			if i+1 < len(frames) {
				next.Reset(Delay(frames[i].Timestamp, frames[i+1].Timestamp, opts.Speed))
			}
			i++
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Draw copies the grid of v onto screen with true-color styles and shows it.
func Draw(screen tcell.Screen, v *parser.VTerm) {
	cols, rows := v.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := v.Cell(x, y)
			screen.SetContent(x, y, c.Rune, nil, CellStyle(c))
		}
	}
	cx, cy := v.Cursor()
	screen.ShowCursor(cx, cy)
	screen.Show()
}

// CellStyle converts a cell's colors and attributes to a tcell style.
func CellStyle(c parser.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.FG.R), int32(c.FG.G), int32(c.FG.B))).
		Background(tcell.NewRGBColor(int32(c.BG.R), int32(c.BG.G), int32(c.BG.B))).
		Bold(c.Bold()).
		Italic(c.Italic()).
		Underline(c.Underline())
}
