// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package timeline

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/framegrace/texelrec/apps/texelrec/parser"
	"github.com/framegrace/texelrec/apps/texelrec/recording"
)

func opts() Options {
	return Options{Width: 10, Height: 3, FontSize: 8, Dark: true, Speed: 1}
}

func TestTwoRecordDelays(t *testing.T) {
	anim, err := Assemble([]recording.Frame{{Content: "X", Timestamp: 0}, {Content: "Y", Timestamp: 250}}, opts())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if got := anim.Delays(); !reflect.DeepEqual(got, []int{10, 25}) {
		t.Fatalf("delays = %v, want [10 25]", got)
	}
	if anim.Width != 80 || anim.Height != 48 {
		t.Fatalf("size = %dx%d, want 80x48", anim.Width, anim.Height)
	}
	for i, f := range anim.Frames {
		if b := f.Image.Bounds(); b.Dx() != anim.Width || b.Dy() != anim.Height {
			t.Fatalf("frame %d bounds %v", i, b)
		}
	}
}

func TestEmptyInputFails(t *testing.T) {
	if _, err := Assemble(nil, opts()); !errors.Is(err, ErrNothingToRender) {
		t.Fatalf("Assemble(nil) err = %v", err)
	}
	if _, err := RenderTimeline(nil, 10, 3, 8, true, 1); !errors.Is(err, ErrNothingToRender) {
		t.Fatalf("RenderTimeline(nil) err = %v", err)
	}
}

func TestFrameDelay(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur uint64
		speed     float64
		want      int
	}{
		{"plain", 0, 250, 1, 25},
		{"rounds half up", 0, 125, 1, 13},
		{"rounds down", 0, 124, 1, 12},
		{"double speed", 0, 250, 2, 13},
		{"half speed", 0, 250, 0.5, 50},
		{"floor", 100, 101, 1, MinDelay},
		{"same timestamp", 100, 100, 1, MinDelay},
		{"backwards", 500, 100, 1, MinDelay},
		{"ceiling", 0, 60000, 1, MaxDelay},
		{"zero speed is normal", 0, 250, 0, 25},
		{"negative speed is normal", 0, 250, -3, 25},
		{"NaN speed is normal", 0, 250, math.NaN(), 25},
		{"infinite speed hits floor", 0, 250, math.Inf(1), MinDelay},
		{"huge gap", 0, math.MaxUint64, 1, MaxDelay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameDelay(tt.prev, tt.cur, tt.speed); got != tt.want {
				t.Fatalf("FrameDelay(%d, %d, %v) = %d, want %d", tt.prev, tt.cur, tt.speed, got, tt.want)
			}
		})
	}
}

func TestBackwardsTimestampClampsToFloor(t *testing.T) {
	anim, err := Assemble([]recording.Frame{
		{Content: "a", Timestamp: 0},
		{Content: "b", Timestamp: 900},
		{Content: "c", Timestamp: 300},
	}, opts())
	if err != nil {
		t.Fatal(err)
	}
	if got := anim.Delays(); !reflect.DeepEqual(got, []int{10, 90, 2}) {
		t.Fatalf("delays = %v", got)
	}
}

func TestGridPersistsAcrossRecords(t *testing.T) {
	records := []recording.Frame{{Content: "X", Timestamp: 0}, {Content: "Y", Timestamp: 10}}
	anim, err := Assemble(records, opts())
	if err != nil {
		t.Fatal(err)
	}

	v := parser.NewVTerm(10, 3)
	parser.NewParser(v).Process("XY")
	want := RenderGridToImage(v, 8)
	if !reflect.DeepEqual(anim.Frames[1].Image.Pix, want.Pix) {
		t.Fatal("second frame does not show both records")
	}
	if reflect.DeepEqual(anim.Frames[0].Image.Pix, anim.Frames[1].Image.Pix) {
		t.Fatal("frames share identical pixels")
	}
}

func TestAssembleDoesNotMutateInput(t *testing.T) {
	records := []recording.Frame{{Content: "a", Timestamp: 5}}
	intro := DefaultIntro()
	o := opts()
	o.Intro = &intro
	if _, err := Assemble(records, o); err != nil {
		t.Fatal(err)
	}
	if records[0].Timestamp != 5 || len(records) != 1 {
		t.Fatalf("input mutated: %+v", records)
	}
}

func TestProgress(t *testing.T) {
	var calls [][2]int
	o := opts()
	o.Progress = func(done, total int) { calls = append(calls, [2]int{done, total}) }
	if _, err := Assemble([]recording.Frame{{Content: "a"}, {Content: "b"}, {Content: "c"}}, o); err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("progress = %v, want %v", calls, want)
	}
}

func TestEnhance(t *testing.T) {
	records := []recording.Frame{{Content: "ls\r\n", Timestamp: 0}, {Content: "out", Timestamp: 700}}
	got := Enhance(records, DefaultIntro())
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	wantTS := []uint64{0, 1000, 1500, 2200, 3200}
	for i, f := range got {
		if f.Timestamp != wantTS[i] {
			t.Errorf("frame %d ts = %d, want %d", i, f.Timestamp, wantTS[i])
		}
	}
	if got[0].Content != "\x1b[H\x1b[2J\x1b[1;32m# Terminal Recording\x1b[0m\n\n" {
		t.Errorf("title = %q", got[0].Content)
	}
	if got[1].Content != "\x1b[1;34m$ \x1b[0m" {
		t.Errorf("prompt = %q", got[1].Content)
	}
	if got[2].Content != "ls\r\n" || got[3].Content != "out" {
		t.Errorf("records changed: %q %q", got[2].Content, got[3].Content)
	}
	if got[4].Content != "\n\n\x1b[1;32m# End of Recording\x1b[0m\n" {
		t.Errorf("outro = %q", got[4].Content)
	}
}

func TestEnhanceCustomText(t *testing.T) {
	got := Enhance(nil, Intro{Title: "Demo", Outro: "Bye"})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !strings.Contains(got[0].Content, "# Demo") || !strings.Contains(got[2].Content, "# Bye") {
		t.Fatalf("custom text missing: %q / %q", got[0].Content, got[2].Content)
	}
	if got[2].Timestamp != 2000 {
		t.Fatalf("outro ts = %d, want 2000", got[2].Timestamp)
	}
	if def := Enhance(nil, Intro{}); !strings.Contains(def[0].Content, DefaultTitle) {
		t.Fatalf("empty title did not fall back: %q", def[0].Content)
	}
}

func TestRenderTimelineDelays(t *testing.T) {
	anim, err := RenderTimeline([]recording.Frame{{Content: "x", Timestamp: 0}, {Content: "y", Timestamp: 400}}, 20, 4, 8, false, 1)
	if err != nil {
		t.Fatal(err)
	}
	// title, prompt, x, y, outro
	want := []int{10, 100, 50, 40, 100}
	if got := anim.Delays(); !reflect.DeepEqual(got, want) {
		t.Fatalf("delays = %v, want %v", got, want)
	}
	if bg := anim.Frames[0].Image.RGBAAt(0, 0); bg != parser.LightTheme.BG.RGBA() {
		t.Fatalf("light theme background = %v", bg)
	}
}
