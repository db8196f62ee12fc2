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

// Package proof writes stencil documents as single-page PDF files, for
// printing a paper proof before the stencil is cut.
package proof

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stencil/svgdoc"
)

// Write creates a PDF file with one page showing the document.
//
// One canvas unit becomes one PDF point.  Each path is filled with the
// grey of the same lightness as its fill colour.  Paths with fill "none"
// and paths which cannot be parsed are left out.
func Write(filename string, doc *svgdoc.Document) error {
	w, h := doc.CanvasSize()
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// SVG has the origin at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	for _, p := range doc.Paths {
		fill, ok := svgdoc.ParseFill(p.Fill)
		if !ok {
			continue
		}
		data, err := p.Data()
		if err != nil {
			continue
		}
		if len(data.Cmds) == 0 {
			continue
		}

		l, _, _ := fill.Lab()
		page.SetFillColor(color.DeviceGray(min(max(l, 0), 1)))

		ctm := p.CTM()
		for cmd, pts := range data.Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				q := svgdoc.Apply(ctm, pts[0])
				page.MoveTo(q.X, q.Y)
			case path.CmdLineTo:
				q := svgdoc.Apply(ctm, pts[0])
				page.LineTo(q.X, q.Y)
			case path.CmdCubeTo:
				a := svgdoc.Apply(ctm, pts[0])
				b := svgdoc.Apply(ctm, pts[1])
				c := svgdoc.Apply(ctm, pts[2])
				page.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}
