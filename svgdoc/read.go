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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Read parses an SVG document.
//
// Only <path> elements contribute geometry.  Fill colours and transforms of
// enclosing <g> elements are inherited by the paths they contain.  The
// canvas size is taken from the width and height attributes of the root
// element (unit suffixes are ignored), falling back to the viewBox.
func Read(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}

	fillStack := []string{""}
	transformStack := []matrix.Matrix{matrix.Identity}
	seenRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "svg":
				if seenRoot {
					continue
				}
				seenRoot = true
				readCanvas(doc, t.Attr)

			case "g":
				fill := fillStack[len(fillStack)-1]
				if f := fillOf(t.Attr); f != "" {
					fill = f
				}
				fillStack = append(fillStack, fill)

				parent := transformStack[len(transformStack)-1]
				m, err := ParseTransform(attr(t.Attr, "transform"))
				if err != nil {
					return nil, err
				}
				transformStack = append(transformStack, Mul(parent, m))

			case "path":
				d := strings.TrimSpace(attr(t.Attr, "d"))
				if d == "" {
					continue
				}
				fill := fillOf(t.Attr)
				if fill == "" {
					fill = fillStack[len(fillStack)-1]
				}
				m, err := ParseTransform(attr(t.Attr, "transform"))
				if err != nil {
					return nil, err
				}
				p := &Path{
					D:    d,
					Fill: fill,
				}
				if ctm := Mul(transformStack[len(transformStack)-1], m); ctm != matrix.Identity {
					p.Transform = ctm
				}
				doc.Paths = append(doc.Paths, p)
			}

		case xml.EndElement:
			if t.Name.Local == "g" {
				if len(fillStack) > 1 {
					fillStack = fillStack[:len(fillStack)-1]
				}
				if len(transformStack) > 1 {
					transformStack = transformStack[:len(transformStack)-1]
				}
			}
		}
	}

	if !seenRoot {
		return nil, errors.New("no <svg> element found")
	}
	return doc, nil
}

func readCanvas(doc *Document, attrs []xml.Attr) {
	doc.Width = parseLength(attr(attrs, "width"))
	doc.Height = parseLength(attr(attrs, "height"))
	if doc.Width > 0 && doc.Height > 0 {
		return
	}

	// viewBox = "minX minY width height"
	parts := strings.Fields(strings.ReplaceAll(attr(attrs, "viewBox"), ",", " "))
	if len(parts) != 4 {
		return
	}
	if doc.Width <= 0 {
		doc.Width, _ = strconv.ParseFloat(parts[2], 64)
	}
	if doc.Height <= 0 {
		doc.Height, _ = strconv.ParseFloat(parts[3], 64)
	}
}

// parseLength reads the numeric part of a length like "120pt".
// Percentages and unparsable values give 0.
func parseLength(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		return 0
	}
	end := len(s)
	for end > 0 && (s[end-1] < '0' || s[end-1] > '9') && s[end-1] != '.' {
		end--
	}
	x, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || x < 0 {
		return 0
	}
	return x
}

func attr(attrs []xml.Attr, name string) string {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// fillOf extracts the fill colour from a fill attribute or a style
// attribute like "fill:#000000;stroke:none".  The fill attribute wins.
func fillOf(attrs []xml.Attr) string {
	if f := strings.TrimSpace(attr(attrs, "fill")); f != "" {
		return f
	}
	for _, part := range strings.Split(attr(attrs, "style"), ";") {
		key, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "fill") {
			return strings.TrimSpace(val)
		}
	}
	return ""
}
