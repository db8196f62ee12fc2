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

// Package preview renders stencil documents to bitmaps, for showing the
// result of a conversion before it is cut.
package preview

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/stencil/svgdoc"
)

// Options control the rendering.
type Options struct {
	// Scale is the number of pixels per canvas unit.  Zero means 1.
	Scale float64

	// EvenOdd selects the even-odd fill rule instead of nonzero.
	EvenOdd bool
}

// Render draws the document on a white background, using the nonzero fill
// rule.  The image has the size of the canvas, multiplied by scale.
func Render(doc *svgdoc.Document, scale float64) *image.NRGBA {
	return RenderOptions(doc, &Options{Scale: scale})
}

// RenderOptions draws the document on a white background.
//
// Paths are drawn in document order, each with its fill colour and
// transform.  Paths with fill "none" and paths which cannot be parsed are
// skipped.
func RenderOptions(doc *svgdoc.Document, opt *Options) *image.NRGBA {
	scale := 1.0
	evenOdd := false
	if opt != nil {
		if opt.Scale > 0 {
			scale = opt.Scale
		}
		evenOdd = opt.EvenOdd
	}

	w, h := doc.CanvasSize()
	pw := max(int(math.Ceil(w*scale)), 1)
	ph := max(int(math.Ceil(h*scale)), 1)
	img := image.NewNRGBA(image.Rect(0, 0, pw, ph))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	s := newScanner(pw, ph)
	s.evenOdd = evenOdd
	toPixels := matrix.Matrix{scale, 0, 0, scale, 0, 0}
	for _, p := range doc.Paths {
		col, ok := svgdoc.ParseFill(p.Fill)
		if !ok {
			continue
		}
		data, err := p.Data()
		if err != nil {
			continue
		}
		r, g, b := col.RGB255()
		paint := [3]float32{float32(r), float32(g), float32(b)}

		s.ctm = svgdoc.Mul(toPixels, p.CTM())
		s.fill(data, func(y, x0 int, coverage []float32) {
			row := img.Pix[y*img.Stride+4*x0:]
			for i, c := range coverage {
				px := row[4*i : 4*i+3]
				for j := range px {
					v := float32(px[j])*(1-c) + paint[j]*c
					px[j] = uint8(v + 0.5)
				}
			}
		})
	}
	return img
}
