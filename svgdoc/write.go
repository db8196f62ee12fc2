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

package svgdoc

import (
	"bufio"
	"encoding/xml"
	"io"
)

// Write serialises the document as a standalone SVG file.
//
// The root element declares the canvas as width, height and viewBox.
// Every path becomes a <path> element with its data, its fill (if set)
// and its transform (if any).
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, xml.Header); err != nil {
		return err
	}

	width, height := doc.CanvasSize()
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace},
			{Name: xml.Name{Local: "width"}, Value: formatNumber(width)},
			{Name: xml.Name{Local: "height"}, Value: formatNumber(height)},
			{Name: xml.Name{Local: "viewBox"}, Value: "0 0 " + formatNumber(width) + " " + formatNumber(height)},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	for _, p := range doc.Paths {
		el := xml.StartElement{
			Name: xml.Name{Local: "path"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "d"}, Value: p.D}},
		}
		if p.Fill != "" {
			el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "fill"}, Value: p.Fill})
		}
		if p.HasTransform() {
			el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "transform"}, Value: FormatTransform(p.Transform)})
		}
		if err := enc.EncodeToken(el); err != nil {
			return err
		}
		if err := enc.EncodeToken(el.End()); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if _, err := io.WriteString(bw, "\n"); err != nil {
		return err
	}
	return bw.Flush()
}
