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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DataBounds returns the exact bounding box of a path.  Curve segments
// contribute their extreme points, not their control points.
// The second return value is false if the path has no coordinates.
func DataBounds(d *path.Data) (rect.Rect, bool) {
	bb := boxBuilder{}
	var cur vec.Vec2
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			cur = d.Coords[k]
			bb.add(cur)
			k++
		case path.CmdQuadTo:
			p1, p2 := d.Coords[k], d.Coords[k+1]
			bb.add(p2)
			for _, t := range quadExtrema(cur, p1, p2) {
				bb.add(quadAt(cur, p1, p2, t))
			}
			cur = p2
			k += 2
		case path.CmdCubeTo:
			p1, p2, p3 := d.Coords[k], d.Coords[k+1], d.Coords[k+2]
			bb.add(p3)
			for _, t := range cubicExtrema(cur, p1, p2, p3) {
				bb.add(cubicAt(cur, p1, p2, p3, t))
			}
			cur = p3
			k += 3
		}
	}
	return bb.box, bb.started
}

// TransformBox returns the bounding box of the image of b under m.
func TransformBox(b rect.Rect, m matrix.Matrix) rect.Rect {
	bb := boxBuilder{}
	for _, p := range []vec.Vec2{
		{X: b.LLx, Y: b.LLy}, {X: b.URx, Y: b.LLy},
		{X: b.URx, Y: b.URy}, {X: b.LLx, Y: b.URy},
	} {
		bb.add(vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		})
	}
	return bb.box
}

type boxBuilder struct {
	box     rect.Rect
	started bool
}

func (bb *boxBuilder) add(p vec.Vec2) {
	if !bb.started {
		bb.box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
		bb.started = true
		return
	}
	bb.box.LLx = min(bb.box.LLx, p.X)
	bb.box.LLy = min(bb.box.LLy, p.Y)
	bb.box.URx = max(bb.box.URx, p.X)
	bb.box.URy = max(bb.box.URy, p.Y)
}

// quadExtrema returns the parameters in (0, 1) where a coordinate of the
// quadratic Bézier curve has a zero derivative.
func quadExtrema(p0, p1, p2 vec.Vec2) []float64 {
	var ts []float64
	for _, c := range [][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := c[0] - 2*c[1] + c[2]
		if den == 0 {
			continue
		}
		t := (c[0] - c[1]) / den
		if t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// cubicExtrema returns the parameters in (0, 1) where a coordinate of the
// cubic Bézier curve has a zero derivative.
func cubicExtrema(p0, p1, p2, p3 vec.Vec2) []float64 {
	var ts []float64
	for _, c := range [][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// B'(t)/3 = a t² + b t + c
		a := -c[0] + 3*c[1] - 3*c[2] + c[3]
		b := 2 * (c[0] - 2*c[1] + c[2])
		cc := c[1] - c[0]
		for _, t := range solveQuadratic(a, b, cc) {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func solveQuadratic(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	return p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
}

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}
