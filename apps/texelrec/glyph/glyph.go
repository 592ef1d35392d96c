// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/glyph/glyph.go
// Summary: Bitmap font lookup and integer upscaling for the rasterizer.
// Usage: raster.RenderGrid looks glyphs up per cell and scales them once per frame size.
// Notes: The table is parsed on first use and never mutated afterwards.

package glyph

import "sync"

// Height is the native row count of every glyph.
const Height = 7

// Bitmap is a monochrome glyph, indexed [row][column].
type Bitmap [][]bool

// Width returns the column count of the bitmap.
func (b Bitmap) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

var (
	tableOnce sync.Once
	table     map[rune]Bitmap
	fallback  Bitmap
)

func loadTable() {
	table = make(map[rune]Bitmap, len(glyphRows))
	for r, rows := range glyphRows {
		table[r] = parseRows(rows)
	}
	fallback = parseRows(fallbackRows)
}

func parseRows(rows [Height]string) Bitmap {
	b := make(Bitmap, Height)
	for y, row := range rows {
		b[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			b[y][x] = row[x] == '#'
		}
	}
	return b
}

// Lookup returns the glyph for r, or the boxed fallback glyph when r has none.
// The returned bitmap is shared; callers must not modify it.
func Lookup(r rune) Bitmap {
	tableOnce.Do(loadTable)
	if b, ok := table[r]; ok {
		return b
	}
	return fallback
}

// Has reports whether r has its own glyph.
func Has(r rune) bool {
	tableOnce.Do(loadTable)
	_, ok := table[r]
	return ok
}

// Fallback returns the glyph drawn for characters missing from the table.
func Fallback() Bitmap {
	tableOnce.Do(loadTable)
	return fallback
}

// Scale expands every pixel into a factor×factor block.
// A factor of 1 or less returns b itself.
func Scale(b Bitmap, factor int) Bitmap {
	if factor <= 1 {
		return b
	}
	scaled := make(Bitmap, 0, len(b)*factor)
	for _, row := range b {
		out := make([]bool, len(row)*factor)
		for x, lit := range row {
			for sx := 0; sx < factor; sx++ {
				out[x*factor+sx] = lit
			}
		}
		scaled = append(scaled, out)
		for sy := 1; sy < factor; sy++ {
			dup := make([]bool, len(out))
			copy(dup, out)
			scaled = append(scaled, dup)
		}
	}
	return scaled
}
