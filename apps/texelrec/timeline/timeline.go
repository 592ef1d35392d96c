// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/timeline/timeline.go
// Summary: Drives the parser over recorded chunks and collects timed frames.
// Usage: RenderTimeline(frames, 80, 24, 16, true, 1.0) then Animation.Encode.
// Notes: One VTerm lives for the whole pass; the input is never mutated.

package timeline

import (
	"image"
	"log"
	"math"

	"github.com/framegrace/texelrec/apps/texelrec/parser"
	"github.com/framegrace/texelrec/apps/texelrec/raster"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

const (
	// FirstDelay is the delay of the first frame, in centiseconds.
	FirstDelay = 10
	MinDelay   = 2
	MaxDelay   = 500
)

// ProgressFunc is called after each frame is rasterized.
type ProgressFunc func(done, total int)

// Options controls one render pass.
type Options struct {
	Width    int
	Height   int
	FontSize int
	Dark     bool
	Speed    float64

	// Intro wraps the records with title frames when set.
	Intro    *Intro
	Progress ProgressFunc
}

// Frame is one rasterized image and how long it stays on screen.
type Frame struct {
	Image *image.RGBA
	// Delay is in centiseconds.
	Delay int
}

// Animation is the ordered output of a render pass.
type Animation struct {
	Width  int
	Height int
	Frames []Frame
}

// Delays returns the frame delays in order.
func (a *Animation) Delays() []int {
	out := make([]int, len(a.Frames))
	for i, f := range a.Frames {
		out[i] = f.Delay
	}
	return out
}

// RenderTimeline renders records with the stock intro and outro frames.
func RenderTimeline(records []recording.Frame, width, height, fontSize int, dark bool, speed float64) (*Animation, error) {
	intro := DefaultIntro()
	return Assemble(records, Options{
		Width:    width,
		Height:   height,
		FontSize: fontSize,
		Dark:     dark,
		Speed:    speed,
		Intro:    &intro,
	})
}

// RenderGridToImage rasterizes the current state of v.
func RenderGridToImage(v *parser.VTerm, fontSize int) *image.RGBA {
	return raster.RenderGrid(v, fontSize)
}

// Assemble feeds every record through one parser, rasterizing after each.
func Assemble(records []recording.Frame, opts Options) (*Animation, error) {
	if len(records) == 0 {
		return nil, ErrNothingToRender
	}
	if opts.Intro != nil {
		records = Enhance(records, *opts.Intro)
	}
	speed := normalizeSpeed(opts.Speed)

	vt := parser.NewVTerm(opts.Width, opts.Height, parser.WithDarkTheme(opts.Dark))
	p := parser.NewParser(vt)
	cols, rows := vt.Size()
	w, h := raster.ImageSize(cols, rows, opts.FontSize)
	log.Printf("Timeline: Rendering %d frames on a %dx%d grid (%dx%d px)", len(records), cols, rows, w, h)

	anim := &Animation{Width: w, Height: h, Frames: make([]Frame, 0, len(records))}
	for i, rec := range records {
		delay := FirstDelay
		if i > 0 {
			delay = FrameDelay(records[i-1].Timestamp, rec.Timestamp, speed)
		}
		p.Process(rec.Content)
		anim.Frames = append(anim.Frames, Frame{
			Image: raster.RenderGrid(vt, opts.FontSize),
			Delay: delay,
		})
		if opts.Progress != nil {
			opts.Progress(i+1, len(records))
		}
	}
	return anim, nil
}

// FrameDelay converts the gap between two timestamps to a clamped delay in
// centiseconds. A timestamp earlier than prev counts as no gap.
func FrameDelay(prev, cur uint64, speed float64) int {
	speed = normalizeSpeed(speed)
	var gap uint64
	if cur > prev {
		gap = cur - prev
	}
	cs := math.Round(float64(gap) / speed / 10)
	if math.IsNaN(cs) || cs < MinDelay {
		return MinDelay
	}
	if cs > MaxDelay {
		return MaxDelay
	}
	return int(cs)
}

func normalizeSpeed(speed float64) float64 {
	if math.IsNaN(speed) || speed <= 0 {
		return 1
	}
	return speed
}
