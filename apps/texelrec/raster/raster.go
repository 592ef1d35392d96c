// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/raster/raster.go
// Summary: Rasterizes a VTerm grid into an RGBA image with the bitmap font.
// Usage: timeline.Assemble calls RenderGrid once per recorded chunk.
// Notes: Each cell is fontSize wide and twice as tall. Glyph pixels that fall
// outside their cell are clipped.

package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/framegrace/texelrec/apps/texelrec/glyph"
	"github.com/framegrace/texelrec/apps/texelrec/parser"
)

// MinFontSize is the smallest usable font size.
const MinFontSize = 1

// CellSize returns the pixel size of one cell for fontSize.
func CellSize(fontSize int) (w, h int) {
	if fontSize < MinFontSize {
		fontSize = MinFontSize
	}
	return fontSize, fontSize * 2
}

// ImageSize returns the pixel size of a cols×rows grid.
func ImageSize(cols, rows, fontSize int) (w, h int) {
	cw, ch := CellSize(fontSize)
	return cols * cw, rows * ch
}

// ScaleFactor is the integer glyph magnification for fontSize.
func ScaleFactor(fontSize int) int {
	f := int(math.Round(float64(fontSize) / 8))
	if f < 1 {
		return 1
	}
	return f
}

// RenderGrid draws every cell of v into a freshly allocated image.
func RenderGrid(v *parser.VTerm, fontSize int) *image.RGBA {
	cols, rows := v.Size()
	cw, ch := CellSize(fontSize)
	img := image.NewRGBA(image.Rect(0, 0, cols*cw, rows*ch))
	factor := ScaleFactor(fontSize)

	// Scaled bitmaps are reused across the frame.
	scaled := make(map[rune]glyph.Bitmap)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := v.Cell(x, y)
			rect := image.Rect(x*cw, y*ch, (x+1)*cw, (y+1)*ch)
			draw.Draw(img, rect, &image.Uniform{cell.BG.RGBA()}, image.Point{}, draw.Src)

			if cell.Rune != ' ' && cell.Rune != 0 {
				b, ok := scaled[cell.Rune]
				if !ok {
					b = glyph.Scale(glyph.Lookup(cell.Rune), factor)
					scaled[cell.Rune] = b
				}
				paintGlyph(img, rect, b, cell.FG)
			}
			if cell.Underline() {
				paintUnderline(img, rect, cell.FG)
			}
		}
	}
	return img
}

// paintGlyph centers b in rect and sets its lit pixels to fg.
func paintGlyph(img *image.RGBA, rect image.Rectangle, b glyph.Bitmap, fg parser.RGB) {
	ox := rect.Min.X + floorDiv(rect.Dx()-b.Width(), 2)
	oy := rect.Min.Y + floorDiv(rect.Dy()-len(b), 2)
	c := fg.RGBA()
	for gy, row := range b {
		py := oy + gy
		if py < rect.Min.Y || py >= rect.Max.Y {
			continue
		}
		for gx, lit := range row {
			px := ox + gx
			if !lit || px < rect.Min.X || px >= rect.Max.X {
				continue
			}
			img.SetRGBA(px, py, c)
		}
	}
}

func paintUnderline(img *image.RGBA, rect image.Rectangle, fg parser.RGB) {
	y := rect.Max.Y - 2
	if y < rect.Min.Y {
		y = rect.Min.Y
	}
	c := fg.RGBA()
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, y, c)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
