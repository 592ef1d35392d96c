// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/vterm_erase.go
// Summary: Erase operations - screen and line erasing.
// Usage: Part of VTerm terminal emulator.

package parser

// Erase modes shared by ED (CSI J) and EL (CSI K).
const (
	EraseToEnd   = 0
	EraseToStart = 1
	EraseAll     = 2
	// EraseSaved is ED 3. Without scrollback it behaves like EraseAll.
	EraseSaved = 3
)

// ClearScreenMode handles ED (Erase in Display). Unknown modes do nothing.
func (v *VTerm) ClearScreenMode(mode int) {
	switch mode {
	case EraseToEnd:
		v.clearRange(v.cursorY, v.cursorX, v.width)
		for y := v.cursorY + 1; y < v.height; y++ {
			v.clearRange(y, 0, v.width)
		}
	case EraseToStart:
		for y := 0; y < v.cursorY; y++ {
			v.clearRange(y, 0, v.width)
		}
		v.clearRange(v.cursorY, 0, v.cursorX+1)
	case EraseAll, EraseSaved:
		for y := 0; y < v.height; y++ {
			v.clearRange(y, 0, v.width)
		}
	}
}

// ClearLine handles EL (Erase in Line). Unknown modes do nothing.
func (v *VTerm) ClearLine(mode int) {
	switch mode {
	case EraseToEnd:
		v.clearRange(v.cursorY, v.cursorX, v.width)
	case EraseToStart:
		v.clearRange(v.cursorY, 0, v.cursorX+1)
	case EraseAll:
		v.clearRange(v.cursorY, 0, v.width)
	}
}

// clearRange blanks columns [start, end) of row y with the active colors.
func (v *VTerm) clearRange(y, start, end int) {
	if y < 0 || y >= v.height {
		return
	}
	start = clamp(start, 0, v.width)
	end = clamp(end, 0, v.width)
	row := v.cells[y]
	for x := start; x < end; x++ {
		row[x] = blankCell(v.currentFG, v.currentBG)
	}
}
