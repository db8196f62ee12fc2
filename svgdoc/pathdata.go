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
	"fmt"
	"math"
	stdstrconv "strconv"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SyntaxError describes a problem with SVG path data.
type SyntaxError struct {
	Offset int // byte offset into the path data
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path data: %s at offset %d", e.Msg, e.Offset)
}

// ParseData parses SVG path data into a path.
//
// All SVG path commands except elliptical arcs are supported.  Relative
// commands are converted to absolute coordinates and horizontal/vertical
// lines become general line segments.  A drawing command following a
// closepath starts a new subpath at the start point of the closed one.
func ParseData(d string) (*path.Data, error) {
	sc := &dataScanner{buf: []byte(d)}
	res := &path.Data{}

	var cur, start, ctrl vec.Vec2
	var cmd, prev byte
	open := false // a subpath has been started and not closed

	// ensureOpen inserts the implicit moveto after a closepath
	ensureOpen := func() {
		if !open {
			appendCmd(res, path.CmdMoveTo, cur)
			start = cur
			open = true
		}
	}

	for {
		c, ok := sc.command()
		if !ok {
			if sc.done() {
				break
			}
			switch cmd {
			case 0:
				return nil, sc.fail("path data must start with a command")
			case 'Z', 'z':
				return nil, sc.fail("unexpected number after closepath")
			}
			// implicit repetition of the previous command
			c = cmd
		}

		rel := c >= 'a' && c <= 'z'
		var base vec.Vec2
		if rel {
			base = cur
		}

		switch c {
		case 'M', 'm':
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			cur = base.Add(p)
			start = cur
			appendCmd(res, path.CmdMoveTo, cur)
			open = true
			// further coordinate pairs are treated as lineto
			if c == 'M' {
				c = 'L'
			} else {
				c = 'l'
			}

		case 'L', 'l':
			p, err := sc.point()
			if err != nil {
				return nil, err
			}
			ensureOpen()
			cur = base.Add(p)
			appendCmd(res, path.CmdLineTo, cur)

		case 'H', 'h':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			ensureOpen()
			cur = vec.Vec2{X: base.X + x, Y: cur.Y}
			appendCmd(res, path.CmdLineTo, cur)

		case 'V', 'v':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			ensureOpen()
			cur = vec.Vec2{X: cur.X, Y: base.Y + y}
			appendCmd(res, path.CmdLineTo, cur)

		case 'C', 'c', 'S', 's':
			var p1 vec.Vec2
			if c == 'C' || c == 'c' {
				q, err := sc.point()
				if err != nil {
					return nil, err
				}
				p1 = base.Add(q)
			} else if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				p1 = cur.Mul(2).Sub(ctrl)
			} else {
				p1 = cur
			}
			q2, err := sc.point()
			if err != nil {
				return nil, err
			}
			q3, err := sc.point()
			if err != nil {
				return nil, err
			}
			ensureOpen()
			p2, p3 := base.Add(q2), base.Add(q3)
			appendCmd(res, path.CmdCubeTo, p1, p2, p3)
			ctrl, cur = p2, p3

		case 'Q', 'q', 'T', 't':
			var p1 vec.Vec2
			if c == 'Q' || c == 'q' {
				q, err := sc.point()
				if err != nil {
					return nil, err
				}
				p1 = base.Add(q)
			} else if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				p1 = cur.Mul(2).Sub(ctrl)
			} else {
				p1 = cur
			}
			q2, err := sc.point()
			if err != nil {
				return nil, err
			}
			ensureOpen()
			p2 := base.Add(q2)
			appendCmd(res, path.CmdQuadTo, p1, p2)
			ctrl, cur = p1, p2

		case 'Z', 'z':
			if open {
				res.Cmds = append(res.Cmds, path.CmdClose)
				open = false
			}
			cur = start

		case 'A', 'a':
			return nil, sc.fail("arc commands are not supported")

		default:
			return nil, sc.fail(fmt.Sprintf("unknown command %q", c))
		}

		cmd, prev = c, c
	}

	return res, nil
}

func appendCmd(d *path.Data, cmd path.Command, pts ...vec.Vec2) {
	d.Cmds = append(d.Cmds, cmd)
	d.Coords = append(d.Coords, pts...)
}

// dataScanner splits SVG path data into commands and numbers.
type dataScanner struct {
	buf []byte
	pos int
}

func (sc *dataScanner) skipSeparators() {
	for sc.pos < len(sc.buf) {
		switch sc.buf[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *dataScanner) done() bool {
	sc.skipSeparators()
	return sc.pos >= len(sc.buf)
}

// command consumes a command letter, if one is next.
func (sc *dataScanner) command() (byte, bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.buf) {
		return 0, false
	}
	c := sc.buf[sc.pos]
	if (c >= 'A' && c <= 'Z' && c != 'E') || (c >= 'a' && c <= 'z' && c != 'e') {
		sc.pos++
		return c, true
	}
	return 0, false
}

func (sc *dataScanner) number() (float64, error) {
	sc.skipSeparators()
	if sc.pos >= len(sc.buf) {
		return 0, sc.fail("unexpected end of path data")
	}
	x, n := strconv.ParseFloat(sc.buf[sc.pos:])
	if n == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, sc.fail("invalid number")
	}
	sc.pos += n
	return x, nil
}

func (sc *dataScanner) point() (vec.Vec2, error) {
	x, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := sc.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func (sc *dataScanner) fail(msg string) error {
	return &SyntaxError{Offset: sc.pos, Msg: msg}
}

// FormatData converts a path to SVG path data, using absolute commands.
// Coordinates are rounded to three decimal places.
func FormatData(d *path.Data) string {
	var b strings.Builder
	k := 0
	for _, cmd := range d.Cmds {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
			writePoints(&b, d.Coords[k:k+1])
			k++
		case path.CmdLineTo:
			b.WriteByte('L')
			writePoints(&b, d.Coords[k:k+1])
			k++
		case path.CmdQuadTo:
			b.WriteByte('Q')
			writePoints(&b, d.Coords[k:k+2])
			k += 2
		case path.CmdCubeTo:
			b.WriteByte('C')
			writePoints(&b, d.Coords[k:k+3])
			k += 3
		case path.CmdClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoints(b *strings.Builder, pts []vec.Vec2) {
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(p.Y))
	}
}

func formatNumber(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return stdstrconv.FormatFloat(x, 'f', -1, 64)
}
