// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"math"
	"math/rand"
	"testing"
)

func TestNewVTermBlankCells(t *testing.T) {
	for _, dark := range []bool{true, false} {
		v := NewVTerm(10, 4, WithDarkTheme(dark))
		theme := ThemeDefaults(dark)
		for y := 0; y < 4; y++ {
			for x := 0; x < 10; x++ {
				c := v.Cell(x, y)
				if c != (Cell{Rune: ' ', FG: theme.FG, BG: theme.BG}) {
					t.Fatalf("dark=%v cell (%d,%d) = %+v", dark, x, y, c)
				}
			}
		}
		assertInBounds(t, v)
	}
}

func TestNewVTermClampsSize(t *testing.T) {
	v := NewVTerm(0, -4)
	if w, h := v.Size(); w != 1 || h != 1 {
		t.Fatalf("size = %dx%d, want 1x1", w, h)
	}
	v.PlaceChar('x')
	assertInBounds(t, v)
}

func TestPlaceCharUsesActiveStyle(t *testing.T) {
	v := NewVTerm(8, 3)
	v.SetForeground(RGB{1, 2, 3})
	v.SetBackground(RGB{4, 5, 6})
	v.SetAttribute(AttrBold | AttrUnderline)
	v.SetCursorPos(1, 5)

	style := v.CurrentStyle()
	x, y := v.Cursor()
	v.PlaceChar('Q')

	got := v.Cell(x, y)
	want := Cell{Rune: 'Q', FG: style.FG, BG: style.BG, Attr: style.Attr}
	if got != want {
		t.Fatalf("cell = %+v, want %+v", got, want)
	}
	if !got.Bold() || got.Italic() || !got.Underline() {
		t.Fatalf("attr helpers disagree with %v", got.Attr)
	}
	if cx, cy := v.Cursor(); cx != 6 || cy != 1 {
		t.Fatalf("cursor = (%d,%d), want (6,1)", cx, cy)
	}
}

func TestWrapKeepsPreviousRow(t *testing.T) {
	h := NewTestHarness(5, 3)
	h.SendSeq("abcdefg")
	h.AssertLine(t, 0, "abcde")
	h.AssertLine(t, 1, "fg")
	h.AssertCursor(t, 2, 1)
}

func TestWrapOnLastRowScrolls(t *testing.T) {
	h := NewTestHarness(3, 2)
	h.SendSeq("abc")
	h.AssertCursor(t, 0, 1)
	h.SendSeq("def")
	// Filling the last row wraps past it, which scrolls once.
	h.AssertLine(t, 0, "def")
	h.AssertLine(t, 1, "")
	h.AssertCursor(t, 0, 1)
}

func TestLineFeedScrollsOnLastRow(t *testing.T) {
	const height = 4
	h := NewTestHarness(6, height)
	h.SendSeq("row0\nrow1\nrow2\nrow3")
	before := h.vterm.Grid()

	h.SendSeq("\x1b[32m\n")
	after := h.vterm.Grid()

	for y := 0; y < height-1; y++ {
		for x := range after[y] {
			if after[y][x] != before[y+1][x] {
				t.Fatalf("row %d after scroll differs from row %d before:\n%s", y, y+1, h.Dump())
			}
		}
	}
	style := h.vterm.CurrentStyle()
	for x, c := range after[height-1] {
		if c != blankCell(style.FG, style.BG) {
			t.Fatalf("last row cell %d = %+v, want blank in active colors", x, c)
		}
	}
	h.AssertCursor(t, 0, height-1)
}

func TestScrollUpUsesActiveColors(t *testing.T) {
	v := NewVTerm(4, 2)
	v.SetBackground(RGB{9, 9, 9})
	v.SetForeground(RGB{7, 7, 7})
	v.ScrollUp()
	for x := 0; x < 4; x++ {
		if c := v.Cell(x, 1); c.BG != (RGB{9, 9, 9}) || c.FG != (RGB{7, 7, 7}) {
			t.Fatalf("scrolled-in cell %d = %+v", x, c)
		}
		if c := v.Cell(x, 0); c.BG != DarkTheme.BG {
			t.Fatalf("surviving row cell %d lost its colors: %+v", x, c)
		}
	}
}

func TestControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		x, y  int
		check func(*testing.T, *TestHarness)
	}{
		{name: "carriage return", seq: "abc\rX", x: 1, y: 0, check: func(t *testing.T, h *TestHarness) {
			h.AssertLine(t, 0, "Xbc")
		}},
		{name: "newline resets column", seq: "abc\nd", x: 1, y: 1},
		{name: "backspace does not erase", seq: "ab\b", x: 1, y: 0, check: func(t *testing.T, h *TestHarness) {
			h.AssertLine(t, 0, "ab")
		}},
		{name: "backspace stops at column 0", seq: "\b\b\b", x: 0, y: 0},
		{name: "tab to column 8", seq: "a\t", x: 8, y: 0},
		{name: "tab from column 8 to 16", seq: "\t\t", x: 16, y: 0},
		{name: "tab past width wraps", seq: "\t\t\t", x: 0, y: 1},
		{name: "bell is dropped", seq: "a\ab", x: 2, y: 0, check: func(t *testing.T, h *TestHarness) {
			h.AssertLine(t, 0, "ab")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(20, 3)
			h.SendSeq(tt.seq)
			h.AssertCursor(t, tt.x, tt.y)
			if tt.check != nil {
				tt.check(t, h)
			}
		})
	}
}

func TestTabOnLastRowScrolls(t *testing.T) {
	h := NewTestHarness(10, 2)
	h.SendSeq("top\nbottom\t\t")
	h.AssertLine(t, 0, "bottom")
	h.AssertLine(t, 1, "")
	h.AssertCursor(t, 0, 1)
}

func TestCursorStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v := NewVTerm(7, 5)
	p := NewParser(v)
	ops := []func(){
		func() { v.PlaceChar('x') },
		func() { v.LineFeed() },
		func() { v.CarriageReturn() },
		func() { v.Backspace() },
		func() { v.Tab() },
		func() { v.ScrollUp() },
		func() { v.MoveCursor(rng.Intn(40)-20, rng.Intn(40)-20) },
		func() { v.SetCursorPos(rng.Intn(40)-20, rng.Intn(40)-20) },
		func() { v.ClearScreenMode(rng.Intn(5)) },
		func() { v.ClearLine(rng.Intn(4)) },
		func() { p.Process("\x1b[99A\x1b[99C") },
		func() { p.Process("\x1b[999;999H") },
		func() { p.Process("\x1b[0;0f\x1b[99D\x1b[99B") },
	}
	for i := 0; i < 5000; i++ {
		ops[rng.Intn(len(ops))]()
		assertInBounds(t, v)
	}
}

func TestHugeCursorCountsClamp(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		x, y int
	}{
		{"down and forward", "\x1b[3;3H\x1b[9223372036854775807B\x1b[9223372036854775807C", 9, 4},
		{"up and back", "\x1b[3;3H\x1b[9223372036854775807A\x1b[9223372036854775807D", 0, 0},
		{"beyond int range is 1", "\x1b[3;3H\x1b[99999999999999999999B", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHarness(10, 5)
			h.SendSeq(tt.seq)
			h.AssertCursor(t, tt.x, tt.y)
		})
	}

	v := NewVTerm(10, 5)
	v.SetCursorPos(2, 2)
	v.MoveCursor(math.MaxInt, math.MaxInt)
	if x, y := v.Cursor(); x != 9 || y != 4 {
		t.Fatalf("cursor = (%d,%d), want (9,4)", x, y)
	}
	v.MoveCursor(math.MinInt, math.MinInt)
	if x, y := v.Cursor(); x != 0 || y != 0 {
		t.Fatalf("cursor = (%d,%d), want (0,0)", x, y)
	}
}

func TestStringTrimsTrailingBlanks(t *testing.T) {
	h := NewTestHarness(6, 2)
	h.SendSeq("hi\n  yo")
	if got := h.vterm.String(); got != "hi\n  yo" {
		t.Fatalf("String() = %q", got)
	}
}

func TestGridIsACopy(t *testing.T) {
	v := NewVTerm(3, 1)
	g := v.Grid()
	g[0][0].Rune = 'Z'
	if v.Cell(0, 0).Rune != ' ' {
		t.Fatal("Grid() aliases the live cells")
	}
}
