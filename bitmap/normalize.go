// seehuhn.de/go/stencil - turn photos into cuttable stencil outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bitmap prepares uploaded raster images for tracing.
//
// [Normalize] crops an image to the bounding box of its visible content
// and scales it down so that neither side exceeds a maximum dimension.
package bitmap

import (
	"errors"
	"image"
	"io"

	// image formats accepted for uploads
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned by Normalize if the image has no visible
// content.
var ErrEmptyImage = errors.New("image has no visible content")

// Limits for the longest side of a normalized image, in pixels.
const (
	// DefaultMaxDimension is used when no explicit bound is given.
	DefaultMaxDimension = 500

	// LegacyThumbnailDimension is the bound used by early versions of the
	// upload service.
	LegacyThumbnailDimension = 125
)

// LegacyMarkerDimension is the bound for a 20mm ball marker printed at
// 300dpi.
var LegacyMarkerDimension = PixelsFor(20, 300)

// PixelsFor converts a length in millimetres to pixels at the given
// resolution, rounding down.
func PixelsFor(mm, dpi float64) int {
	return int(mm * dpi / 25.4)
}

// Decode reads an image in any of the supported formats (PNG, JPEG, GIF,
// BMP, TIFF and WebP).  The format name is returned as well.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// ContentBounds returns the smallest rectangle containing all pixels of img
// which are not fully transparent.  The result is empty if there are no such
// pixels.
func ContentBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return b
	}

	xMin, yMin := b.Max.X, b.Max.Y
	xMax, yMax := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			xMin = min(xMin, x)
			xMax = max(xMax, x+1)
			yMin = min(yMin, y)
			yMax = max(yMax, y+1)
		}
	}
	if xMin >= xMax || yMin >= yMax {
		return image.Rectangle{}
	}
	return image.Rect(xMin, yMin, xMax, yMax)
}

// Normalize crops img to its visible content and, if either side of the
// result is longer than maxDim pixels, scales it down preserving the aspect
// ratio.  The longer side of a scaled image is exactly maxDim.
// If maxDim is not positive, DefaultMaxDimension is used.
//
// The returned image has its origin at (0, 0).
func Normalize(img image.Image, maxDim int) (image.Image, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	content := ContentBounds(img)
	if content.Empty() {
		return nil, ErrEmptyImage
	}

	w, h := content.Dx(), content.Dy()
	newW, newH := w, h
	if w > maxDim || h > maxDim {
		if w > h {
			newW = maxDim
			newH = int(float64(h) * float64(maxDim) / float64(w))
		} else {
			newH = maxDim
			newW = int(float64(w) * float64(maxDim) / float64(h))
		}
		newW = max(newW, 1)
		newH = max(newH, 1)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	if newW == w && newH == h {
		draw.Draw(dst, dst.Bounds(), img, content.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, content, draw.Src, nil)
	}
	return dst, nil
}
