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

package trace

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/dennwc/gotrace"

	"seehuhn.de/go/stencil/svgdoc"
)

// DefaultThreshold is the luminance below which an opaque pixel counts as
// ink.
const DefaultThreshold = 128

// Potrace traces black-and-white bitmaps using the potrace algorithm.
// The zero value is ready to use.
type Potrace struct {
	// Threshold is the luminance (0-255) below which an opaque pixel is
	// treated as ink.  Zero selects DefaultThreshold.
	Threshold uint8

	// Params are the potrace parameters.  Nil selects gotrace.Defaults.
	Params *gotrace.Params
}

var _ Tracer = (*Potrace)(nil)

// Trace implements the Tracer interface.
func (pt *Potrace) Trace(ctx context.Context, img image.Image) (*svgdoc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	threshold := pt.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	bm := gotrace.NewBitmapFromImage(img, func(_, _ int, cl color.Color) bool {
		return isInk(cl, threshold)
	})

	paths, err := gotrace.Trace(bm, pt.Params)
	if err != nil {
		return nil, fmt.Errorf("potrace: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	doc := &svgdoc.Document{
		Width:  float64(b.Dx()),
		Height: float64(b.Dy()),
	}

	for _, d := range regions(paths) {
		doc.Paths = append(doc.Paths, &svgdoc.Path{D: d})
	}

	if len(doc.Paths) == 0 {
		return nil, ErrNoPaths
	}
	return doc, nil
}

// isHole reports whether a potrace sign marks a hole.  Signs are either
// ±1 or the characters '+' and '-', as in the C library.
func isHole(sign int) bool {
	return sign < 0 || sign == '-'
}

// regions converts potrace output into SVG path data, one string per
// region.  Potrace reports holes as paths with negative sign, and a hole
// is appended to the preceding positive path, so that every region
// becomes one path with one closure per boundary.
func regions(paths []gotrace.Path) []string {
	var res []string
	var cur *strings.Builder
	flush := func() {
		if cur != nil && cur.Len() > 0 {
			res = append(res, cur.String())
		}
		cur = nil
	}
	for _, p := range flatten(paths) {
		if len(p.Curve) == 0 {
			continue
		}
		if !isHole(p.Sign) || cur == nil {
			flush()
			cur = &strings.Builder{}
		} else {
			cur.WriteByte(' ')
		}
		writeCurve(cur, p.Curve)
	}
	flush()
	return res
}

// flatten returns the paths in drawing order, every hole directly after
// its outer boundary.  A list which already contains holes is used as
// it is.  Otherwise the Childs tree is walked depth-first, parents
// before children.
func flatten(paths []gotrace.Path) []gotrace.Path {
	for _, p := range paths {
		if isHole(p.Sign) {
			return paths
		}
	}
	var res []gotrace.Path
	var walk func([]gotrace.Path)
	walk = func(pp []gotrace.Path) {
		for _, p := range pp {
			res = append(res, p)
			walk(p.Childs)
		}
	}
	walk(paths)
	return res
}

// writeCurve appends one closed potrace curve as SVG path data.
// The curve starts at the end point of its last segment.
func writeCurve(b *strings.Builder, curve []gotrace.Segment) {
	last := curve[len(curve)-1].Pnt[2]
	b.WriteString("M")
	writePoint(b, last)
	for _, seg := range curve {
		switch seg.Type {
		case gotrace.TypeCorner:
			b.WriteString(" L")
			writePoint(b, seg.Pnt[1])
			b.WriteString(" L")
			writePoint(b, seg.Pnt[2])
		default:
			b.WriteString(" C")
			writePoint(b, seg.Pnt[0])
			b.WriteByte(' ')
			writePoint(b, seg.Pnt[1])
			b.WriteByte(' ')
			writePoint(b, seg.Pnt[2])
		}
	}
	b.WriteString(" Z")
}

func writePoint(b *strings.Builder, p gotrace.Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', 3, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', 3, 64))
}

// isInk reports whether a pixel is opaque and darker than the threshold.
func isInk(cl color.Color, threshold uint8) bool {
	nc := color.NRGBAModel.Convert(cl).(color.NRGBA)
	if nc.A < 128 {
		return false
	}
	gray := color.GrayModel.Convert(color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: 255}).(color.Gray)
	return gray.Y < threshold
}
