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

package preview

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Tolerances for the scanner.
const (
	// defaultFlatness is the maximal distance, in pixels, between a curve
	// and the polygon which replaces it.
	defaultFlatness = 0.25

	// flatEdge is the vertical extent below which an edge is treated as
	// horizontal.  Horizontal edges do not change the coverage.
	flatEdge = 1e-10
)

// edge is a line segment in pixel coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// scanner computes anti-aliased coverage values for filled paths.
//
// For every pixel of a scan line two values are accumulated: cover is the
// signed height of the edge pieces inside the pixel column, and area is
// the part of cover which lies to the right of the edge inside the pixel.
// Summing cover from the left and adding area gives the signed area of the
// path inside each pixel.
//
// A scanner is reused for all paths of an image; its buffers only grow.
type scanner struct {
	ctm           matrix.Matrix // path coordinates to pixels
	width, height int
	flatness      float64
	evenOdd       bool

	edges  []edge
	active []int
	cover  []float32
	area   []float32
	splits []float64

	bboxSet                bool
	xMin, xMax, yMin, yMax float64
}

func newScanner(width, height int) *scanner {
	return &scanner{
		ctm:      matrix.Identity,
		width:    width,
		height:   height,
		flatness: defaultFlatness,
	}
}

// fill computes the coverage of the path and calls emit once for every
// scan line with non-zero coverage.  The coverage slice starts at pixel
// x0 and is only valid during the call.
func (s *scanner) fill(d *path.Data, emit func(y, x0 int, coverage []float32)) {
	if !s.collect(d) {
		return
	}

	x0 := max(int(math.Floor(s.xMin)), 0)
	x1 := min(int(math.Floor(s.xMax))+1, s.width)
	y0 := max(int(math.Floor(s.yMin)), 0)
	y1 := min(int(math.Floor(s.yMax))+1, s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	n := x1 - x0
	s.cover = slices.Grow(s.cover[:0], n)[:n]
	s.area = slices.Grow(s.area[:0], n)[:n]

	slices.SortFunc(s.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})
	s.active = s.active[:0]
	next := 0

	for y := y0; y < y1; y++ {
		for next < len(s.edges) && s.edges[next].top() < float64(y+1) {
			s.active = append(s.active, next)
			next++
		}
		k := 0
		for _, i := range s.active {
			if s.edges[i].bottom() > float64(y) {
				s.active[k] = i
				k++
			}
		}
		s.active = s.active[:k]
		if k == 0 {
			continue
		}

		clear(s.cover)
		clear(s.area)
		for _, i := range s.active {
			s.accumulate(&s.edges[i], y, x0)
		}
		integrate(s.cover, s.area, s.evenOdd)

		if cov, offs := trimZeros(s.cover); cov != nil {
			emit(y, x0+offs, cov)
		}
	}
}

// collect converts the path into a list of edges in pixel coordinates.
// Open subpaths are closed implicitly.  The return value is false if the
// path has no area.
func (s *scanner) collect(d *path.Data) bool {
	s.edges = s.edges[:0]
	s.bboxSet = false

	var cur, start vec.Vec2
	closeSubpath := func() {
		if cur != start {
			s.addEdge(cur, start)
		}
		cur = start
	}
	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			cur = d.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			s.addEdge(cur, d.Coords[k])
			cur = d.Coords[k]
			k++
		case path.CmdQuadTo:
			s.flattenQuad(cur, d.Coords[k], d.Coords[k+1])
			cur = d.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			s.flattenCubic(cur, d.Coords[k], d.Coords[k+1], d.Coords[k+2])
			cur = d.Coords[k+2]
			k += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
	return len(s.edges) > 0
}

// addEdge adds the segment from a to b, given in path coordinates.
func (s *scanner) addEdge(a, b vec.Vec2) {
	m := s.ctm
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	if math.Abs(y1-y0) < flatEdge {
		return
	}
	s.edges = append(s.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / (y1 - y0),
	})

	if !s.bboxSet {
		s.xMin, s.xMax = min(x0, x1), max(x0, x1)
		s.yMin, s.yMax = min(y0, y1), max(y0, y1)
		s.bboxSet = true
		return
	}
	s.xMin = min(s.xMin, x0, x1)
	s.xMax = max(s.xMax, x0, x1)
	s.yMin = min(s.yMin, y0, y1)
	s.yMax = max(s.yMax, y0, y1)
}

// pixelLength returns the length of v, given in path coordinates, after
// mapping it to pixels.
func (s *scanner) pixelLength(v vec.Vec2) float64 {
	m := s.ctm
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

func (s *scanner) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := s.pixelLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > s.flatness {
		n = int(math.Ceil(math.Sqrt(dev / s.flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
		s.addEdge(prev, pt)
		prev = pt
	}
}

func (s *scanner) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	// Wang's formula
	dev := max(
		s.pixelLength(p0.Sub(p1.Mul(2)).Add(p2)),
		s.pixelLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if nf := math.Sqrt(3 * dev / (4 * s.flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		pt := p0.Mul(u * u * u).
			Add(p1.Mul(3 * u * u * t)).
			Add(p2.Mul(3 * u * t * t)).
			Add(p3.Mul(t * t * t))
		s.addEdge(prev, pt)
		prev = pt
	}
}

// accumulate adds the part of e inside scan line y to the cover and area
// buffers, which start at pixel x0.  Contributions left of x0 are
// collected in the first pixel.
func (s *scanner) accumulate(e *edge, y, x0 int) {
	top := max(float64(y), e.top())
	bot := min(float64(y+1), e.bottom())
	if bot <= top {
		return
	}
	dir := float32(1)
	if e.y1 < e.y0 {
		dir = -1
	}

	// split the edge where it crosses a pixel boundary
	xa := e.x0 + e.dxdy*(top-e.y0)
	xb := e.x0 + e.dxdy*(bot-e.y0)
	s.splits = append(s.splits[:0], top, bot)
	for x := math.Floor(min(xa, xb)) + 1; x <= max(xa, xb); x++ {
		yx := e.y0 + (x-e.x0)/e.dxdy
		if yx > top && yx < bot {
			s.splits = append(s.splits, yx)
		}
	}
	slices.Sort(s.splits)

	for i := 1; i < len(s.splits); i++ {
		ya, yb := s.splits[i-1], s.splits[i]
		if yb <= ya {
			continue
		}
		c := dir * float32(yb-ya)
		xm := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
		px := math.Floor(xm)
		idx := int(px) - x0
		switch {
		case idx < 0:
			s.cover[0] += c
			s.area[0] += c
		case idx < len(s.cover):
			s.cover[idx] += c
			s.area[idx] += c * float32(1-(xm-px))
		}
	}
}

// integrate turns accumulated cover and area values into coverage, in
// place.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		if evenOdd {
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		} else if v > 1 {
			v = 1
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage values from both ends.
// It returns nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}
