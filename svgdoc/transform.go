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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Translate returns the matrix of a translation by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

// Mul returns the transformation which first applies b, then a.
// This is the composition rule for nested SVG transform attributes.
func Mul(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// ParseTransform parses an SVG transform attribute.  The functions
// matrix, translate and scale are supported; a list of functions is
// composed from left to right.  The empty string gives the identity.
func ParseTransform(s string) (matrix.Matrix, error) {
	res := matrix.Identity
	s = strings.TrimSpace(s)
	for s != "" {
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open < 0 || end < open {
			return matrix.Identity, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(s[:open])
		args, err := parseArgs(s[open+1 : end])
		if err != nil {
			return matrix.Identity, fmt.Errorf("transform %s: %w", name, err)
		}

		var m matrix.Matrix
		switch {
		case name == "matrix" && len(args) == 6:
			copy(m[:], args)
		case name == "translate" && len(args) == 1:
			m = Translate(args[0], 0)
		case name == "translate" && len(args) == 2:
			m = Translate(args[0], args[1])
		case name == "scale" && len(args) == 1:
			m = matrix.Matrix{args[0], 0, 0, args[0], 0, 0}
		case name == "scale" && len(args) == 2:
			m = matrix.Matrix{args[0], 0, 0, args[1], 0, 0}
		default:
			return matrix.Identity, fmt.Errorf("unsupported transform %s with %d arguments", name, len(args))
		}
		res = Mul(res, m)

		s = strings.TrimLeft(s[end+1:], " \t\r\n,")
	}
	return res, nil
}

func parseArgs(s string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	res := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// FormatTransform writes m as an SVG transform attribute value.
// Pure translations use the translate form.
func FormatTransform(m matrix.Matrix) string {
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 {
		return "translate(" + formatNumber(m[4]) + " " + formatNumber(m[5]) + ")"
	}
	parts := make([]string, len(m))
	for i, x := range m {
		parts[i] = formatNumber(x)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

// Apply maps a point through the transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Bake applies the transform of the path to its path data and clears the
// transform.  Paths without a transform are left unchanged.
func (p *Path) Bake() error {
	if !p.HasTransform() {
		p.Transform = matrix.Matrix{}
		return nil
	}
	data, err := p.Data()
	if err != nil {
		return err
	}
	m := p.Transform
	for i, c := range data.Coords {
		data.Coords[i] = Apply(m, c)
	}
	p.D = FormatData(data)
	p.Transform = matrix.Matrix{}
	return nil
}
