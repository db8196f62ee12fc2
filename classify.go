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

	"seehuhn.de/go/stencil/svgdoc"
)

// PathReport describes the printability of one path.
type PathReport struct {
	// Closures is the number of closure markers in the path data.
	Closures int

	// Problematic is true if the path has more than one closure.  Such
	// paths usually contain islands which would fall out of a stencil.
	Problematic bool

	// Bounds is the bounding box of the path.  It is only valid if Err is
	// nil.
	Bounds rect.Rect

	// Err is a *MalformedPathError if the path data could not be parsed.
	Err error
}

// Report is the result of Classify.
type Report struct {
	Paths []PathReport

	// Outline is the index of the path which represents the outer
	// boundary of the traced shape.
	Outline int

	// Decisive is true if the bounding box of the outline contains the
	// boxes of all other paths.  Otherwise the outline was chosen by
	// document order only.
	Decisive bool
}

// Problematic returns the indices of all problematic paths.
func (r *Report) Problematic() []int {
	var res []int
	for i, pr := range r.Paths {
		if pr.Problematic {
			res = append(res, i)
		}
	}
	return res
}

// Classify inspects the paths of a document.  The document is not
// modified.
//
// The outline is the first well-formed path whose bounding box is not
// properly contained in the bounding box of another well-formed path.
// The choice is decisive if the box of the outline contains the boxes of
// all other well-formed paths.  Otherwise, and also if no path can be
// parsed, the first path is used and Report.Decisive is false.
func Classify(doc *svgdoc.Document) *Report {
	rep := &Report{
		Paths: make([]PathReport, len(doc.Paths)),
	}

	for i, p := range doc.Paths {
		pr := &rep.Paths[i]
		pr.Closures = p.Closures()
		pr.Problematic = pr.Closures > 1

		bbox, err := p.Bounds()
		if err != nil {
			pr.Err = &MalformedPathError{Index: i, Err: err}
			continue
		}
		pr.Bounds = bbox
	}

	rep.Outline = -1
candidates:
	for i := range rep.Paths {
		if rep.Paths[i].Err != nil {
			continue
		}
		for j := range rep.Paths {
			if j == i || rep.Paths[j].Err != nil {
				continue
			}
			if properlyContains(rep.Paths[j].Bounds, rep.Paths[i].Bounds) {
				continue candidates
			}
		}
		rep.Outline = i
		break
	}

	if rep.Outline < 0 {
		rep.Outline = 0
		return rep
	}

	rep.Decisive = true
	outer := rep.Paths[rep.Outline].Bounds
	for j, pr := range rep.Paths {
		if j == rep.Outline || pr.Err != nil {
			continue
		}
		if !contains(outer, pr.Bounds) {
			rep.Decisive = false
			break
		}
	}
	if !rep.Decisive {
		rep.Outline = 0
	}
	return rep
}

// contains reports whether b lies inside a.  Touching edges are allowed.
func contains(a, b rect.Rect) bool {
	return a.LLx <= b.LLx && a.LLy <= b.LLy && a.URx >= b.URx && a.URy >= b.URy
}

// properlyContains reports whether b lies inside a and the two boxes
// differ.
func properlyContains(a, b rect.Rect) bool {
	return contains(a, b) && a != b
}
