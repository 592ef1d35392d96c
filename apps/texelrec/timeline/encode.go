// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/timeline/encode.go
// Summary: GIF output with a per-frame palette.
// Notes: Frames with more than 256 colors keep the most frequent ones and map
// the rest to the nearest palette entry in Lab space.

package timeline

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

const maxPaletteSize = 256

// Encode writes the animation as a looping GIF.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.Frames) == 0 {
		return ErrNothingToRender
	}
	g := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(a.Frames)),
		Delay:     make([]int, 0, len(a.Frames)),
		LoopCount: 0,
		Config: image.Config{
			Width:  a.Width,
			Height: a.Height,
		},
	}
	for _, f := range a.Frames {
		g.Image = append(g.Image, Paletted(f.Image))
		g.Delay = append(g.Delay, f.Delay)
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// Paletted converts img to a paletted image using its own colors.
func Paletted(img *image.RGBA) *image.Paletted {
	b := img.Bounds()
	counts := make(map[color.RGBA]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[img.RGBAAt(x, y)]++
		}
	}

	colors := make([]color.RGBA, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		ci, cj := counts[colors[i]], counts[colors[j]]
		if ci != cj {
			return ci > cj
		}
		return packRGB(colors[i]) < packRGB(colors[j])
	})
	if len(colors) > maxPaletteSize {
		colors = colors[:maxPaletteSize]
	}

	pal := make(color.Palette, len(colors))
	index := make(map[color.RGBA]uint8, len(counts))
	for i, c := range colors {
		pal[i] = c
		index[c] = uint8(i)
	}

	var near *nearest
	out := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			idx, ok := index[c]
			if !ok {
				if near == nil {
					near = newNearest(colors)
				}
				idx = near.index(c)
				index[c] = idx
			}
			out.SetColorIndex(x, y, idx)
		}
	}
	return out
}

func packRGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// nearest finds the perceptually closest palette entry.
type nearest struct {
	lab []colorful.Color
}

func newNearest(pal []color.RGBA) *nearest {
	n := &nearest{lab: make([]colorful.Color, len(pal))}
	for i, c := range pal {
		n.lab[i] = toColorful(c)
	}
	return n
}

func (n *nearest) index(c color.RGBA) uint8 {
	target := toColorful(c)
	best, bestDist := 0, -1.0
	for i, p := range n.lab {
		d := target.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
