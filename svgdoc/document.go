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

// Package svgdoc holds the in-memory vector document that flows through the
// stencil pipeline, together with its SVG serialisation.
//
// A [Document] is a canvas size plus an ordered list of [Path] values.
// Each path keeps its geometry as the original SVG path data string, so
// that stages which do not touch a path leave it byte-for-byte unchanged.
// The geometry is parsed into a [path.Data] on demand.
package svgdoc

import (
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// DefaultCanvasSize is used for the canvas width or height when a document
// does not declare one.
const DefaultCanvasSize = 500

// Document is a vector drawing: a canvas and a list of paths in drawing
// order. The first path is drawn first.
type Document struct {
	Width  float64 // canvas width, 0 if unspecified
	Height float64 // canvas height, 0 if unspecified
	Paths  []*Path
}

// CanvasSize returns the canvas dimensions, substituting
// DefaultCanvasSize for undeclared values.
func (doc *Document) CanvasSize() (w, h float64) {
	w, h = doc.Width, doc.Height
	if w <= 0 {
		w = DefaultCanvasSize
	}
	if h <= 0 {
		h = DefaultCanvasSize
	}
	return w, h
}

// Clone returns a deep copy of the document.
func (doc *Document) Clone() *Document {
	res := &Document{
		Width:  doc.Width,
		Height: doc.Height,
		Paths:  make([]*Path, len(doc.Paths)),
	}
	for i, p := range doc.Paths {
		q := *p
		res.Paths[i] = &q
	}
	return res
}

// Path is one drawable contour, possibly made of several closed sub-loops.
type Path struct {
	// D is the SVG path data.
	D string

	// Fill is the fill colour as written in the SVG fill attribute.
	// The empty string means that no fill is set.
	Fill string

	// Transform maps path coordinates to canvas coordinates.
	// The zero value means no transformation.
	Transform matrix.Matrix

	// Problematic is set by the pipeline for paths which are likely not
	// printable.  It is not written to SVG.
	Problematic bool
}

// Closures returns the number of closure markers in the path data.
func (p *Path) Closures() int {
	return strings.Count(p.D, "Z") + strings.Count(p.D, "z")
}

// Data parses the path data.
func (p *Path) Data() (*path.Data, error) {
	return ParseData(p.D)
}

// Bounds returns the bounding box of the untransformed path geometry.
// The box is recomputed from the path data on every call.
func (p *Path) Bounds() (rect.Rect, error) {
	data, err := ParseData(p.D)
	if err != nil {
		return rect.Rect{}, err
	}
	bbox, ok := DataBounds(data)
	if !ok {
		return rect.Rect{}, &SyntaxError{Msg: "path has no geometry"}
	}
	return bbox, nil
}

// HasTransform reports whether the path carries a non-identity transform.
func (p *Path) HasTransform() bool {
	return p.Transform != (matrix.Matrix{}) && p.Transform != matrix.Identity
}

// CTM returns the transformation matrix of the path, mapping the zero value
// to the identity.
func (p *Path) CTM() matrix.Matrix {
	if p.Transform == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return p.Transform
}
