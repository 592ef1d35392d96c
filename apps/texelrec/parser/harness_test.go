// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/harness_test.go
// Summary: Test harness for VTerm control sequence testing.
// Usage: Used by test files to send sequences and verify grid state.

package parser

import (
	"fmt"
	"strings"
	"testing"
)

// TestHarness provides utilities for testing VTerm control sequences.
type TestHarness struct {
	vterm  *VTerm
	parser *Parser
}

// NewTestHarness creates a new test harness with specified terminal size.
func NewTestHarness(width, height int, opts ...Option) *TestHarness {
	vterm := NewVTerm(width, height, opts...)
	return &TestHarness{
		vterm:  vterm,
		parser: NewParser(vterm),
	}
}

// SendSeq feeds a chunk through the parser.
func (h *TestHarness) SendSeq(seq string) {
	h.parser.Process(seq)
}

// GetCell returns the cell at the specified position.
func (h *TestHarness) GetCell(x, y int) Cell {
	return h.vterm.Cell(x, y)
}

// GetCursor returns the current cursor position (0-based).
func (h *TestHarness) GetCursor() (x, y int) {
	return h.vterm.Cursor()
}

// AssertCursor verifies the cursor position.
func (h *TestHarness) AssertCursor(t *testing.T, x, y int) {
	t.Helper()
	gx, gy := h.GetCursor()
	if gx != x || gy != y {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", gx, gy, x, y)
	}
}

// AssertRune verifies the rune at a position.
func (h *TestHarness) AssertRune(t *testing.T, x, y int, want rune) {
	t.Helper()
	if got := h.GetCell(x, y).Rune; got != want {
		t.Errorf("Cell[%d,%d] rune: expected %q, got %q", x, y, want, got)
	}
}

// AssertLine verifies the trimmed text of row y.
func (h *TestHarness) AssertLine(t *testing.T, y int, want string) {
	t.Helper()
	lines := strings.Split(h.vterm.String(), "\n")
	if y >= len(lines) {
		t.Fatalf("row %d out of range (%d rows)", y, len(lines))
	}
	if lines[y] != want {
		t.Errorf("row %d = %q, want %q", y, lines[y], want)
	}
}

// Dump returns a bordered view of the grid for failure messages.
func (h *TestHarness) Dump() string {
	var b strings.Builder
	w, _ := h.vterm.Size()
	x, y := h.GetCursor()
	fmt.Fprintf(&b, "cursor=(%d,%d)\n+%s+\n", x, y, strings.Repeat("-", w))
	for _, row := range h.vterm.Grid() {
		b.WriteByte('|')
		for _, c := range row {
			b.WriteRune(c.Rune)
		}
		b.WriteString("|\n")
	}
	fmt.Fprintf(&b, "+%s+", strings.Repeat("-", w))
	return b.String()
}

// assertInBounds fails when the cursor is outside the grid.
func assertInBounds(t *testing.T, v *VTerm) {
	t.Helper()
	x, y := v.Cursor()
	w, h := v.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		t.Fatalf("cursor (%d,%d) outside %dx%d grid", x, y, w, h)
	}
	for row, cells := range v.cells {
		if len(cells) != w {
			t.Fatalf("row %d has %d cells, want %d", row, len(cells), w)
		}
	}
}
