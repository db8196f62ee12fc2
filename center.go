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

package stencil

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stencil/svgdoc"
)

// Center moves the paths of a document so that their combined bounding
// box is centred on the canvas.  The move is stored as the transform of
// every path, replacing any previous transform; the path data is not
// changed.
//
// The bounding box is computed from the untransformed path data, so
// calling Center again gives the same offset.  Paths which cannot be
// parsed do not contribute to the box.  If there is no usable path, the
// document is left unchanged and ok is false.
func Center(doc *svgdoc.Document) (offset vec.Vec2, ok bool) {
	var bbox rect.Rect
	for _, p := range doc.Paths {
		b, err := p.Bounds()
		if err != nil {
			continue
		}
		if !ok {
			bbox = b
			ok = true
			continue
		}
		bbox.LLx = min(bbox.LLx, b.LLx)
		bbox.LLy = min(bbox.LLy, b.LLy)
		bbox.URx = max(bbox.URx, b.URx)
		bbox.URy = max(bbox.URy, b.URy)
	}
	if !ok {
		return vec.Vec2{}, false
	}

	w, h := doc.CanvasSize()
	offset = vec.Vec2{
		X: w/2 - (bbox.LLx+bbox.URx)/2,
		Y: h/2 - (bbox.LLy+bbox.URy)/2,
	}
	for _, p := range doc.Paths {
		p.Transform = svgdoc.Translate(offset.X, offset.Y)
	}
	return offset, true
}
