// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/parser/color.go
// Summary: RGB color model for the virtual terminal: themes, 16-color and 256-color palettes.
// Usage: Resolved once at SGR time so cells always carry concrete RGB values.

package parser

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// RGBA converts c to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String returns the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Theme holds the default foreground and background colors.
type Theme struct {
	FG, BG RGB
}

var (
	DarkTheme  = Theme{FG: RGB{240, 240, 240}, BG: RGB{30, 30, 30}}
	LightTheme = Theme{FG: RGB{30, 30, 30}, BG: RGB{245, 245, 245}}
)

// ThemeDefaults returns the dark or light theme.
func ThemeDefaults(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// standardColors are the eight basic ANSI colors at normal intensity.
var standardColors = [8]RGB{
	{0, 0, 0},       // black
	{170, 0, 0},     // red
	{0, 170, 0},     // green
	{170, 85, 0},    // yellow
	{0, 0, 170},     // blue
	{170, 0, 170},   // magenta
	{0, 170, 170},   // cyan
	{170, 170, 170}, // white
}

// brightColors are the same hues at high intensity (SGR 90-97, 100-107).
var brightColors = [8]RGB{
	{85, 85, 85},
	{255, 85, 85},
	{85, 255, 85},
	{255, 255, 85},
	{85, 85, 255},
	{255, 85, 255},
	{85, 255, 255},
	{255, 255, 255},
}

// Standard returns basic color i (0-7). Out-of-range indices wrap.
func Standard(i int) RGB {
	return standardColors[((i%8)+8)%8]
}

// Bright returns bright color i (0-7). Out-of-range indices wrap.
func Bright(i int) RGB {
	return brightColors[((i%8)+8)%8]
}

// Palette256 resolves an xterm 256-color index.
func Palette256(n uint8) RGB {
	switch {
	case n < 8:
		return standardColors[n]
	case n < 16:
		return brightColors[n-8]
	case n < 232:
		idx := n - 16
		return RGB{
			R: cubeLevel(idx / 36 % 6),
			G: cubeLevel(idx / 6 % 6),
			B: cubeLevel(idx % 6),
		}
	default:
		v := (n-232)*10 + 8
		return RGB{v, v, v}
	}
}

func cubeLevel(level uint8) uint8 {
	if level == 0 {
		return 0
	}
	return level*40 + 55
}
