// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelrec/raster/thumbnail.go
// Summary: Poster image scaling for exported recordings.

package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// Thumbnail scales img to width pixels, keeping the aspect ratio.
// A width of 0 or one at least as wide as img returns img unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || width >= img.Bounds().Dx() {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

// WritePoster encodes the thumbnail of img as PNG.
func WritePoster(w io.Writer, img image.Image, width int) error {
	if err := png.Encode(w, Thumbnail(img, width)); err != nil {
		return fmt.Errorf("encode poster: %w", err)
	}
	return nil
}
