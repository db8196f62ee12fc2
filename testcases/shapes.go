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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// rectangle builds a rectangle, counter-clockwise on screen unless
// reverse is set.
func rectangle(x1, y1, x2, y2 float64, reverse bool) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x1, y1))
	if reverse {
		p = p.LineTo(pt(x1, y2)).LineTo(pt(x2, y2)).LineTo(pt(x2, y1))
	} else {
		p = p.LineTo(pt(x2, y1)).LineTo(pt(x2, y2)).LineTo(pt(x1, y2))
	}
	return p.Close()
}

// circle builds a circle from four cubic Bézier curves, starting at the
// top.
func circle(cx, cy, r float64, reverse bool) *path.Data {
	k := r * kappa
	s := 1.0
	if reverse {
		s = -1
	}
	q := func(x, y float64) vec.Vec2 { return pt(cx+s*x, cy+y) }
	return (&path.Data{}).
		MoveTo(q(0, -r)).
		CubeTo(q(k, -r), q(r, -k), q(r, 0)).
		CubeTo(q(r, k), q(k, r), q(0, r)).
		CubeTo(q(-k, r), q(-r, k), q(-r, 0)).
		CubeTo(q(-r, -k), q(-k, -r), q(0, -r)).
		Close()
}

// star builds a five-pointed star outline (not self-intersecting).
func star(cx, cy, outer, inner float64) *path.Data {
	p := &path.Data{}
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// join concatenates paths into one path with several subpaths, the way
// a tracer reports a region together with its holes.
func join(parts ...*path.Data) *path.Data {
	res := &path.Data{}
	for _, p := range parts {
		res.Cmds = append(res.Cmds, p.Cmds...)
		res.Coords = append(res.Coords, p.Coords...)
	}
	return res
}
