// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/vterm.go
// Summary: Fixed-size virtual terminal grid with a cursor and an active pen.
// Usage: Driven by Parser; snapshotted by the rasterizer after every recorded chunk.
// Notes: The grid never resizes. Every row always holds exactly width cells.

package parser

import "strings"

// VTerm is a fixed-size character grid with a cursor and an active style.
type VTerm struct {
	width, height    int
	cursorX, cursorY int
	cells            [][]Cell
	theme            Theme
	currentFG        RGB
	currentBG        RGB
	currentAttr      Attribute

	// UnhandledSequence, when set, receives CSI sequences that were consumed
	// without effect (command letter plus raw parameters).
	UnhandledSequence func(command rune, params string)
}

// Option configures a VTerm at construction time.
type Option func(*VTerm)

// WithTheme sets the default colors used for blank cells and SGR 0.
func WithTheme(t Theme) Option {
	return func(v *VTerm) { v.theme = t }
}

// WithDarkTheme selects DarkTheme or LightTheme.
func WithDarkTheme(dark bool) Option {
	return WithTheme(ThemeDefaults(dark))
}

// WithUnhandledHandler installs a callback for ignored CSI sequences.
func WithUnhandledHandler(fn func(command rune, params string)) Option {
	return func(v *VTerm) { v.UnhandledSequence = fn }
}

// NewVTerm creates a width×height grid filled with blank cells in the theme
// colors. Dimensions below 1 are raised to 1.
func NewVTerm(width, height int, opts ...Option) *VTerm {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v := &VTerm{
		width:  width,
		height: height,
		theme:  DarkTheme,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.currentFG = v.theme.FG
	v.currentBG = v.theme.BG
	v.cells = make([][]Cell, height)
	for y := range v.cells {
		v.cells[y] = v.blankRow(v.theme.FG, v.theme.BG)
	}
	return v
}

func (v *VTerm) blankRow(fg, bg RGB) []Cell {
	row := make([]Cell, v.width)
	for x := range row {
		row[x] = blankCell(fg, bg)
	}
	return row
}

// Width returns the column count.
func (v *VTerm) Width() int { return v.width }

// Height returns the row count.
func (v *VTerm) Height() int { return v.height }

// Size returns the grid dimensions.
func (v *VTerm) Size() (width, height int) { return v.width, v.height }

// Theme returns the theme the grid was created with.
func (v *VTerm) Theme() Theme { return v.theme }

// Cursor returns the 0-based cursor position.
func (v *VTerm) Cursor() (x, y int) { return v.cursorX, v.cursorY }

// CurrentStyle returns the pen applied to the next written cell.
func (v *VTerm) CurrentStyle() Style {
	return Style{FG: v.currentFG, BG: v.currentBG, Attr: v.currentAttr}
}

// Cell returns the cell at (x, y). Out-of-range coordinates return a zero Cell.
func (v *VTerm) Cell(x, y int) Cell {
	if y < 0 || y >= v.height || x < 0 || x >= v.width {
		return Cell{}
	}
	return v.cells[y][x]
}

// Grid returns a deep copy of the visible cells.
func (v *VTerm) Grid() [][]Cell {
	grid := make([][]Cell, v.height)
	for y, row := range v.cells {
		grid[y] = make([]Cell, v.width)
		copy(grid[y], row)
	}
	return grid
}

// String renders the grid as plain text, one line per row, trailing blanks trimmed.
func (v *VTerm) String() string {
	var b strings.Builder
	for y, row := range v.cells {
		var line strings.Builder
		for _, c := range row {
			line.WriteRune(c.Rune)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if y < v.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PlaceChar writes r at the cursor with the active style and advances the
// cursor, wrapping to the next row past the last column.
func (v *VTerm) PlaceChar(r rune) {
	v.cells[v.cursorY][v.cursorX] = Cell{
		Rune: r,
		FG:   v.currentFG,
		BG:   v.currentBG,
		Attr: v.currentAttr,
	}
	v.cursorX++
	if v.cursorX >= v.width {
		v.LineFeed()
	}
}

// LineFeed moves to column 0 of the next row, scrolling on the last row.
func (v *VTerm) LineFeed() {
	v.cursorX = 0
	v.nextRow()
}

// nextRow advances the cursor one row. The grid scrolls only when the cursor
// would pass the last row; writes, line feeds and tabs all go through here.
func (v *VTerm) nextRow() {
	if v.cursorY+1 >= v.height {
		v.ScrollUp()
		v.cursorY = v.height - 1
		return
	}
	v.cursorY++
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (v *VTerm) CarriageReturn() {
	v.cursorX = 0
}

// Backspace moves the cursor one column left without erasing.
func (v *VTerm) Backspace() {
	if v.cursorX > 0 {
		v.cursorX--
	}
}

// Tab advances to the next multiple-of-8 column, wrapping to the next row
// when that column is off the grid.
func (v *VTerm) Tab() {
	next := (v.cursorX/8 + 1) * 8
	if next >= v.width {
		v.LineFeed()
		return
	}
	v.cursorX = next
}

// ScrollUp discards row 0, shifts every row up, and blanks the new last row
// with the active colors.
func (v *VTerm) ScrollUp() {
	copy(v.cells, v.cells[1:])
	v.cells[v.height-1] = v.blankRow(v.currentFG, v.currentBG)
}
