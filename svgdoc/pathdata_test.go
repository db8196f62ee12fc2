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
	"errors"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestParseData(t *testing.T) {
	type testCase struct {
		name   string
		d      string
		cmds   []path.Command
		coords []vec.Vec2
	}
	cases := []testCase{
		{
			name:   "triangle",
			d:      "M 0 0 L 10 0 L 10 10 Z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		},
		{
			name:   "relative_and_implicit",
			d:      "m1,1 2,0 0,2z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}},
		},
		{
			name:   "horizontal_vertical",
			d:      "M5 5H10V8h-5v-3Z",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose},
			coords: []vec.Vec2{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 8}, {X: 5, Y: 8}, {X: 5, Y: 5}},
		},
		{
			name:   "packed_numbers",
			d:      "M.5.5L-1-2",
			cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
			coords: []vec.Vec2{{X: 0.5, Y: 0.5}, {X: -1, Y: -2}},
		},
		{
			name: "smooth_cubic",
			d:    "M0 0C0 1 1 2 2 2S4 3 4 4",
			cmds: []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo},
			coords: []vec.Vec2{
				{X: 0, Y: 0},
				{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2},
				{X: 3, Y: 2}, {X: 4, Y: 3}, {X: 4, Y: 4},
			},
		},
		{
			name: "smooth_quadratic",
			d:    "M0 0Q1 1 2 0T4 0",
			cmds: []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdQuadTo},
			coords: []vec.Vec2{
				{X: 0, Y: 0},
				{X: 1, Y: 1}, {X: 2, Y: 0},
				{X: 3, Y: -1}, {X: 4, Y: 0},
			},
		},
		{
			name: "two_subpaths_implicit_move",
			d:    "M0 0L1 0L1 1ZL0 1Z",
			cmds: []path.Command{
				path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
				path.CmdMoveTo, path.CmdLineTo, path.CmdClose,
			},
			coords: []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: 1}},
		},
		{
			name:   "exponent",
			d:      "M1e1 2E-1",
			cmds:   []path.Command{path.CmdMoveTo},
			coords: []vec.Vec2{{X: 10, Y: 0.2}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := ParseData(tc.d)
			if err != nil {
				t.Fatalf("ParseData(%q): %v", tc.d, err)
			}
			if !slices.Equal(data.Cmds, tc.cmds) {
				t.Errorf("commands: got %v, want %v", data.Cmds, tc.cmds)
			}
			if len(data.Coords) != len(tc.coords) {
				t.Fatalf("coordinates: got %v, want %v", data.Coords, tc.coords)
			}
			for i := range tc.coords {
				if !closeTo(data.Coords[i], tc.coords[i]) {
					t.Errorf("coordinate %d: got %v, want %v", i, data.Coords[i], tc.coords[i])
				}
			}
		})
	}
}

func TestParseDataErrors(t *testing.T) {
	for _, d := range []string{
		"10 10",
		"M 10",
		"M 0 0 A 5 5 0 0 1 10 10",
		"M 0 0 L x y",
		"M 0 0 Z 5",
	} {
		_, err := ParseData(d)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("ParseData(%q): got %v, want *SyntaxError", d, err)
		}
	}
}

func TestFormatDataRoundTrip(t *testing.T) {
	in := "M0 0C0 1 1 2 2 2Q3 3 4 2L4.1234 0Z"
	data, err := ParseData(in)
	if err != nil {
		t.Fatal(err)
	}
	out := FormatData(data)
	want := "M0,0 C0,1 1,2 2,2 Q3,3 4,2 L4.123,0 Z"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	again, err := ParseData(out)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.Cmds, data.Cmds) {
		t.Errorf("commands changed: %v -> %v", data.Cmds, again.Cmds)
	}
}

func TestClosures(t *testing.T) {
	cases := map[string]int{
		"":                            0,
		"M0 0L1 0L1 1":                0,
		"M0 0L1 0L1 1Z":               1,
		"M0 0L4 0L4 4Z M1 1L2 1L2 2z": 2,
	}
	for d, want := range cases {
		p := &Path{D: d}
		if got := p.Closures(); got != want {
			t.Errorf("Closures(%q) = %d, want %d", d, got, want)
		}
	}
}

func TestBounds(t *testing.T) {
	// The control points lie far outside the curve; the box must only
	// cover the curve itself.  The cubic peaks at y = 0.75*10.
	p := &Path{D: "M0 0C0 10 10 10 10 0Z"}
	bbox, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if bbox.LLx != 0 || bbox.URx != 10 || bbox.LLy != 0 || math.Abs(bbox.URy-7.5) > 1e-9 {
		t.Errorf("unexpected box %v", bbox)
	}

	if _, err := (&Path{D: "Z"}).Bounds(); err == nil {
		t.Error("expected an error for a path without geometry")
	}
}

func closeTo(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
