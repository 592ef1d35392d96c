// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/vterm_cursor.go
// Summary: Cursor positioning with clamping to the grid bounds.
// Usage: Part of VTerm terminal emulator.

package parser

// SetCursorPos moves the cursor to the 0-based position, clamping to valid bounds.
func (v *VTerm) SetCursorPos(y, x int) {
	v.cursorX = clamp(x, 0, v.width-1)
	v.cursorY = clamp(y, 0, v.height-1)
}

// MoveCursor moves the cursor relative to its position, clamping to the grid.
// Offsets are capped at the grid size first so huge counts cannot overflow.
func (v *VTerm) MoveCursor(dx, dy int) {
	dx = clamp(dx, -v.width, v.width)
	dy = clamp(dy, -v.height, v.height)
	v.SetCursorPos(v.cursorY+dy, v.cursorX+dx)
}

func (v *VTerm) MoveCursorUp(n int)       { v.MoveCursor(0, -n) }
func (v *VTerm) MoveCursorDown(n int)     { v.MoveCursor(0, n) }
func (v *VTerm) MoveCursorForward(n int)  { v.MoveCursor(n, 0) }
func (v *VTerm) MoveCursorBackward(n int) { v.MoveCursor(-n, 0) }

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
