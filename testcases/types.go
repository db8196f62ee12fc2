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

// Package testcases holds traced stencil documents for testing the
// conversion pipeline.  Each case is a document as a tracer would return
// it, together with the print type to apply and the expected shape of the
// result.
package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stencil/svgdoc"
)

// TestCase defines a single conversion test.
type TestCase struct {
	Name   string       // lowercase a-z and _ only
	Paths  []*path.Data // the traced paths, in tracer order
	Width  int          // canvas width
	Height int          // canvas height

	PrintType string // "solid", "text" or "custom"
	Repair    string // "bridge" or "flag", used with "custom"

	// WantClosures lists the closure count of every output path.
	WantClosures []int
}

// Document returns a fresh document holding the paths of the test case.
func (tc *TestCase) Document() *svgdoc.Document {
	doc := &svgdoc.Document{
		Width:  float64(tc.Width),
		Height: float64(tc.Height),
	}
	for _, p := range tc.Paths {
		doc.Paths = append(doc.Paths, &svgdoc.Path{D: svgdoc.FormatData(p)})
	}
	return doc
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
