// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/cell.go
// Summary: Cell and attribute types for the virtual terminal grid.
// Usage: Produced by VTerm, consumed by the rasterizer and the preview player.

package parser

import "strings"

type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Cell represents a single character cell on the screen.
type Cell struct {
	Rune rune
	FG   RGB
	BG   RGB
	Attr Attribute
}

func (c Cell) Bold() bool      { return c.Attr&AttrBold != 0 }
func (c Cell) Italic() bool    { return c.Attr&AttrItalic != 0 }
func (c Cell) Underline() bool { return c.Attr&AttrUnderline != 0 }

// Style is the pen applied to newly written cells.
type Style struct {
	FG   RGB
	BG   RGB
	Attr Attribute
}

func blankCell(fg, bg RGB) Cell {
	return Cell{Rune: ' ', FG: fg, BG: bg}
}
