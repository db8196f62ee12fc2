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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stencil/svgdoc"
)

// Bridge joins the sub-contours of a path into a single contour, so that
// islands of material are held in place when the stencil is cut.
//
// A horizontal scan line through the middle of the bounding box is
// intersected with all segments of the path.  The segments ending on or
// above the scan line (smaller y) are followed by straight bridges between
// consecutive pairs of crossing points; the remaining segments come after
// these.  An odd crossing point left at the end is ignored.  Gaps between
// consecutive segments are joined with straight lines and the result is
// closed once, so the new path has exactly one closure.
//
// Paths with at most one closure are left unchanged.  If the scan line
// meets the path in fewer than two points, the path is left unchanged and
// ErrInsufficientCrossings is returned.  If the path data cannot be parsed,
// the *svgdoc.SyntaxError is returned.
func Bridge(p *svgdoc.Path) error {
	if p.Closures() <= 1 {
		return nil
	}

	data, err := p.Data()
	if err != nil {
		return err
	}
	bbox, ok := svgdoc.DataBounds(data)
	if !ok {
		return &svgdoc.SyntaxError{Msg: "path has no geometry"}
	}
	midY := (bbox.LLy + bbox.URy) / 2

	segs := segments(data)
	crossings := scanCrossings(segs, midY)
	if len(crossings) < 2 {
		return ErrInsufficientCrossings
	}

	var below, above []segment
	for _, s := range segs {
		if s.end().Y <= midY {
			below = append(below, s)
		} else {
			above = append(above, s)
		}
	}
	for i := 0; i+1 < len(crossings); i += 2 {
		below = append(below, segment{
			cmd:   path.CmdLineTo,
			start: crossings[i],
			pts:   []vec.Vec2{crossings[i+1]},
		})
	}

	p.D = svgdoc.FormatData(joinSegments(append(below, above...)))
	return nil
}

// segment is one piece of a path between two points.
type segment struct {
	cmd   path.Command // CmdLineTo, CmdQuadTo or CmdCubeTo
	start vec.Vec2
	pts   []vec.Vec2 // control points, followed by the end point
}

func (s segment) end() vec.Vec2 {
	return s.pts[len(s.pts)-1]
}

// segments splits a path into its segments.  A closepath contributes a
// straight segment back to the start of the subpath, unless the subpath
// already ends there.
func segments(d *path.Data) []segment {
	var res []segment
	var cur, start vec.Vec2
	k := 0
	for _, cmd := range d.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo:
			cur = d.Coords[k]
			start = cur
			k++
			continue
		case path.CmdClose:
			if cur != start {
				res = append(res, segment{cmd: path.CmdLineTo, start: cur, pts: []vec.Vec2{start}})
			}
			cur = start
			continue
		case path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		s := segment{cmd: cmd, start: cur, pts: d.Coords[k : k+n]}
		res = append(res, s)
		cur = s.end()
		k += n
	}
	return res
}

// scanCrossings returns the points where the horizontal line y = midY
// meets the chords of the segments, sorted by x.  The chord of a segment
// joins its start and end point.  Horizontal chords do not contribute.
func scanCrossings(segs []segment, midY float64) []vec.Vec2 {
	var res []vec.Vec2
	for _, s := range segs {
		a, b := s.start, s.end()
		if a.Y == b.Y {
			continue
		}
		if (a.Y <= midY && midY <= b.Y) || (b.Y <= midY && midY <= a.Y) {
			t := (midY - a.Y) / (b.Y - a.Y)
			res = append(res, vec.Vec2{X: a.X + t*(b.X-a.X), Y: midY})
		}
	}
	slices.SortStableFunc(res, func(p, q vec.Vec2) int {
		return cmp.Compare(p.X, q.X)
	})
	return res
}

// joinSegments concatenates segments into one closed contour.  Where a
// segment does not start at the end of its predecessor, a straight line
// is inserted.
func joinSegments(segs []segment) *path.Data {
	res := &path.Data{}
	if len(segs) == 0 {
		return res
	}

	res.Cmds = append(res.Cmds, path.CmdMoveTo)
	res.Coords = append(res.Coords, segs[0].start)
	cur := segs[0].start
	for _, s := range segs {
		if s.start != cur {
			res.Cmds = append(res.Cmds, path.CmdLineTo)
			res.Coords = append(res.Coords, s.start)
		}
		res.Cmds = append(res.Cmds, s.cmd)
		res.Coords = append(res.Coords, s.pts...)
		cur = s.end()
	}
	res.Cmds = append(res.Cmds, path.CmdClose)
	return res
}
